package services

import (
	"hearth/internal/models"
	"hearth/internal/report"
)

// CategoryInput holds the caller-supplied fields for creating or updating a
// category. IsHousehold is not accepted: it is recomputed from MemberIDs and
// the current member list at write time.
type CategoryInput struct {
	Name      string
	Budget    float64
	Type      models.CategoryType
	MemberIDs []string
}

// TransactionInput holds the caller-supplied fields for a new transaction.
type TransactionInput struct {
	CategoryID      string
	Amount          float64
	Description     string
	MemberIDs       []string
	IsFromJointCard bool
	Date            string // YYYY-MM-DD
}

// DebtInput holds the caller-supplied fields for a new debt.
type DebtInput struct {
	Name      string
	Balance   float64
	Payment   float64
	MemberIDs []string
	Type      models.DebtType
}

// LedgerServicer is the single owner of the five household collections. All
// mutation goes through it; accessors return copies so callers cannot modify
// the collections directly. Every successful mutation is followed by a
// best-effort full-snapshot persist.
type LedgerServicer interface {
	// Members
	AddMember(name string) (*models.Member, error)
	DeleteMember(id string) error
	Members() []models.Member
	MemberName(id string) string

	// Monthly incomes
	UpsertIncome(memberID, month string, amount float64) (*models.MonthlyIncome, error)
	Incomes() []models.MonthlyIncome
	MemberIncome(memberID, month string) float64

	// Categories
	AddCategory(in CategoryInput) (*models.Category, error)
	UpdateCategory(id string, in CategoryInput) (*models.Category, error)
	DeleteCategory(id string) error
	Categories() []models.Category
	CategoriesForMember(memberID string) []models.Category
	CategoryName(id string) string

	// Transactions
	AddTransaction(in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(id string) error
	Transactions() []models.Transaction
	MonthTransactions(month string) []models.Transaction

	// Debts
	AddDebt(in DebtInput) (*models.Debt, error)
	DeleteDebt(id string) error
	Debts() []models.Debt
	ToggleDebtPayment(debtID, month string) (bool, error)
	IsDebtPaid(debtID, month string) bool

	// Derived views
	MonthSummary(month string) report.Summary
	MemberSummary(memberID, month string) (*report.MemberRow, error)
}
