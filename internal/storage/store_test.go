package storage_test

import (
	"testing"

	"hearth/internal/models"
	"hearth/internal/storage"
	"hearth/internal/testutil"
)

func TestLoadEmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(db)

	snap, err := store.Load()
	testutil.AssertNoError(t, err)

	if snap.Members == nil || len(snap.Members) != 0 {
		t.Errorf("expected empty member slice, got %v", snap.Members)
	}
	if snap.Categories == nil || snap.Transactions == nil || snap.Debts == nil || snap.Incomes == nil {
		t.Error("expected all collections empty, not nil")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(db)

	snap := &storage.Snapshot{
		Members: []models.Member{{ID: "m1", Name: "Alice"}},
		Categories: []models.Category{
			{ID: "c1", Name: "Groceries", Budget: 500, Type: models.CategoryTypeExpense, MemberIDs: []string{"m1"}, IsHousehold: true},
		},
		Transactions: []models.Transaction{
			{ID: "t1", CategoryID: "c1", Amount: 42.5, MemberIDs: []string{"m1"}, Date: "2024-03-15", Month: "2024-03"},
		},
		Debts: []models.Debt{
			{ID: "d1", Name: "Visa", Balance: 1200, Payment: 100, Type: models.DebtTypeCreditCard, MemberIDs: []string{"m1"}},
		},
		Incomes: []models.MonthlyIncome{
			{ID: "i1", MemberID: "m1", Month: "2024-03", Amount: 3000},
		},
	}

	testutil.AssertNoError(t, store.Save(snap))

	loaded, err := store.Load()
	testutil.AssertNoError(t, err)

	if len(loaded.Members) != 1 || loaded.Members[0].Name != "Alice" {
		t.Errorf("unexpected members after round trip: %v", loaded.Members)
	}
	if len(loaded.Categories) != 1 || !loaded.Categories[0].IsHousehold {
		t.Errorf("unexpected categories after round trip: %v", loaded.Categories)
	}
	if len(loaded.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(loaded.Transactions))
	}
	testutil.AssertAmount(t, 42.5, loaded.Transactions[0].Amount)
	if len(loaded.Debts) != 1 || loaded.Debts[0].Type != models.DebtTypeCreditCard {
		t.Errorf("unexpected debts after round trip: %v", loaded.Debts)
	}
	if len(loaded.Incomes) != 1 {
		t.Errorf("expected 1 income record, got %d", len(loaded.Incomes))
	}
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(db)

	first := &storage.Snapshot{Members: []models.Member{{ID: "m1", Name: "Alice"}, {ID: "m2", Name: "Ben"}}}
	testutil.AssertNoError(t, store.Save(first))

	second := &storage.Snapshot{Members: []models.Member{{ID: "m1", Name: "Alice"}}}
	testutil.AssertNoError(t, store.Save(second))

	loaded, err := store.Load()
	testutil.AssertNoError(t, err)
	if len(loaded.Members) != 1 {
		t.Errorf("expected the second snapshot to replace the first, got %d members", len(loaded.Members))
	}
}

func TestLoadMalformedValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(db)

	entry := storage.Entry{Key: storage.KeyMembers, Value: "{not json"}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("failed to seed malformed entry: %v", err)
	}

	snap, err := store.Load()
	testutil.AssertNoError(t, err)
	if len(snap.Members) != 0 {
		t.Errorf("expected malformed value to load as empty, got %v", snap.Members)
	}
}

func TestLoadNullValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(db)

	entry := storage.Entry{Key: storage.KeyDebts, Value: "null"}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("failed to seed null entry: %v", err)
	}

	snap, err := store.Load()
	testutil.AssertNoError(t, err)
	if snap.Debts == nil || len(snap.Debts) != 0 {
		t.Errorf("expected null value to load as empty slice, got %v", snap.Debts)
	}
}
