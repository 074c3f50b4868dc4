package services

import (
	"time"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/uuid"
)

// AddTransaction records spending against a category. A joint-card
// transaction is attributed to every member current at creation time;
// otherwise the caller's member set is used. IsJoint and Month are derived
// here, never accepted from the caller.
func (s *ledgerService) AddTransaction(in TransactionInput) (*models.Transaction, error) {
	if in.CategoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category id is required")
	}
	if in.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.categoryExists(in.CategoryID) {
		return nil, apperrors.ErrCategoryNotFound
	}

	memberIDs := append([]string(nil), in.MemberIDs...)
	if in.IsFromJointCard {
		memberIDs = s.allMemberIDs()
	}
	if len(memberIDs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one member is required")
	}

	transaction := models.Transaction{
		ID:              uuid.New(),
		CategoryID:      in.CategoryID,
		Amount:          in.Amount,
		Description:     in.Description,
		MemberIDs:       memberIDs,
		IsJoint:         len(memberIDs) > 1,
		IsFromJointCard: in.IsFromJointCard,
		Date:            in.Date,
		Month:           in.Date[:7],
	}
	s.transactions = append(s.transactions, transaction)
	s.persist()
	return &transaction, nil
}

// DeleteTransaction removes a transaction unconditionally.
func (s *ledgerService) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
	s.persist()
	return nil
}

// categoryExists reports whether a category id is current. Callers must hold s.mu.
func (s *ledgerService) categoryExists(id string) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
