package services

import (
	"sync"

	"hearth/internal/logger"
	"hearth/internal/models"
	"hearth/internal/report"
	"hearth/internal/storage"
)

// ledgerService owns the five in-memory collections and serializes all
// mutation behind a mutex. User actions are short and synchronous; the lock
// preserves the one-writer-at-a-time model under concurrent HTTP handlers.
type ledgerService struct {
	mu    sync.RWMutex
	store *storage.Store

	members      []models.Member
	categories   []models.Category
	transactions []models.Transaction
	debts        []models.Debt
	incomes      []models.MonthlyIncome
}

// NewLedgerService loads the persisted snapshot and returns the domain store.
// Missing or malformed persisted collections start empty; only a database
// failure is returned.
func NewLedgerService(store *storage.Store) (LedgerServicer, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &ledgerService{
		store:        store,
		members:      snap.Members,
		categories:   snap.Categories,
		transactions: snap.Transactions,
		debts:        snap.Debts,
		incomes:      snap.Incomes,
	}, nil
}

// persist writes the full snapshot. Best-effort: a save failure is logged and
// never surfaced to the caller, so the in-memory mutation stands either way.
// Callers must hold s.mu.
func (s *ledgerService) persist() {
	snap := &storage.Snapshot{
		Members:      s.members,
		Categories:   s.categories,
		Transactions: s.transactions,
		Debts:        s.debts,
		Incomes:      s.incomes,
	}
	if err := s.store.Save(snap); err != nil {
		logger.Get().Errorw("failed to persist ledger snapshot", "error", err.Error())
	}
}

// Members returns a copy of the member list.
func (s *ledgerService) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Member(nil), s.members...)
}

// Categories returns a copy of the category list.
func (s *ledgerService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// Transactions returns a copy of the transaction list.
func (s *ledgerService) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// Debts returns a copy of the debt list.
func (s *ledgerService) Debts() []models.Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Debt(nil), s.debts...)
}

// Incomes returns a copy of the monthly income list.
func (s *ledgerService) Incomes() []models.MonthlyIncome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MonthlyIncome(nil), s.incomes...)
}

// MonthTransactions returns the month's transactions.
func (s *ledgerService) MonthTransactions(month string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.MonthTransactions(s.transactions, month)
}

// MonthSummary builds the derived view for one month.
func (s *ledgerService) MonthSummary(month string) report.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.BuildSummary(s.members, s.categories, s.transactions, s.debts, s.incomes, month)
}
