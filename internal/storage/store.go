// Package storage persists the household ledger as five JSON-serialized
// collections in a key-value table, mirroring the original fixed-key layout.
package storage

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "hearth/internal/errors"
	"hearth/internal/logger"
	"hearth/internal/models"
)

// Snapshot holds the five persisted collections as one unit. The domain store
// loads a snapshot at startup and writes the full snapshot back after every
// mutation.
type Snapshot struct {
	Members      []models.Member
	Categories   []models.Category
	Transactions []models.Transaction
	Debts        []models.Debt
	Incomes      []models.MonthlyIncome
}

// Store reads and writes snapshots against the key-value table.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store over an open database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load reads all five collections. A missing key or malformed JSON yields an
// empty collection (logged, never fatal); only a database failure is returned
// as an error.
func (s *Store) Load() (*Snapshot, error) {
	snap := &Snapshot{}

	var err error
	if snap.Members, err = loadCollection[models.Member](s.db, KeyMembers); err != nil {
		return nil, err
	}
	if snap.Categories, err = loadCollection[models.Category](s.db, KeyCategories); err != nil {
		return nil, err
	}
	if snap.Transactions, err = loadCollection[models.Transaction](s.db, KeyTransactions); err != nil {
		return nil, err
	}
	if snap.Debts, err = loadCollection[models.Debt](s.db, KeyDebts); err != nil {
		return nil, err
	}
	if snap.Incomes, err = loadCollection[models.MonthlyIncome](s.db, KeyIncomes); err != nil {
		return nil, err
	}

	return snap, nil
}

// Save writes all five collections in one transaction, upserting each key.
func (s *Store) Save(snap *Snapshot) error {
	entries := make([]Entry, 0, 5)

	pairs := []struct {
		key   string
		value interface{}
	}{
		{KeyMembers, snap.Members},
		{KeyCategories, snap.Categories},
		{KeyTransactions, snap.Transactions},
		{KeyDebts, snap.Debts},
		{KeyIncomes, snap.Incomes},
	}

	for _, p := range pairs {
		data, err := json.Marshal(p.value)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		entries = append(entries, Entry{Key: p.key, Value: string(data)})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&entries).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// loadCollection reads one key and unmarshals its JSON array value. Missing
// key or malformed JSON falls back to an empty slice.
func loadCollection[T any](db *gorm.DB, key string) ([]T, error) {
	var entry Entry
	if err := db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []T{}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var out []T
	if err := json.Unmarshal([]byte(entry.Value), &out); err != nil {
		logger.Get().Warnw("malformed stored collection, starting empty",
			"key", key,
			"error", err.Error(),
		)
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
