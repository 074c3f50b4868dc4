package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"hearth/internal/models"
	"hearth/internal/services"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestMember adds a member with a unique name.
func CreateTestMember(t *testing.T, ledger services.LedgerServicer) *models.Member {
	t.Helper()
	return CreateTestMemberWithName(t, ledger, fmt.Sprintf("Member %d", nextID()))
}

// CreateTestMemberWithName adds a member with the given name.
func CreateTestMemberWithName(t *testing.T, ledger services.LedgerServicer, name string) *models.Member {
	t.Helper()

	member, err := ledger.AddMember(name)
	if err != nil {
		t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

// CreateTestCategory adds an expense category assigned to the given members.
func CreateTestCategory(t *testing.T, ledger services.LedgerServicer, budget float64, memberIDs ...string) *models.Category {
	t.Helper()

	category, err := ledger.AddCategory(services.CategoryInput{
		Name:      fmt.Sprintf("Category %d", nextID()),
		Budget:    budget,
		Type:      models.CategoryTypeExpense,
		MemberIDs: memberIDs,
	})
	if err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction records spending for the given members on a date.
func CreateTestTransaction(t *testing.T, ledger services.LedgerServicer, categoryID string, amount float64, date string, memberIDs ...string) *models.Transaction {
	t.Helper()

	transaction, err := ledger.AddTransaction(services.TransactionInput{
		CategoryID:  categoryID,
		Amount:      amount,
		Description: fmt.Sprintf("Transaction %d", nextID()),
		MemberIDs:   memberIDs,
		Date:        date,
	})
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestDebt adds a credit-card debt assigned to the given members.
func CreateTestDebt(t *testing.T, ledger services.LedgerServicer, balance, payment float64, memberIDs ...string) *models.Debt {
	t.Helper()

	debt, err := ledger.AddDebt(services.DebtInput{
		Name:      fmt.Sprintf("Debt %d", nextID()),
		Balance:   balance,
		Payment:   payment,
		Type:      models.DebtTypeCreditCard,
		MemberIDs: memberIDs,
	})
	if err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}
