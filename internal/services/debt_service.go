package services

import (
	"strings"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/report"
	"hearth/internal/uuid"
)

// AddDebt records a shared obligation with a fixed monthly payment.
func (s *ledgerService) AddDebt(in DebtInput) (*models.Debt, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "debt name is required")
	}
	if in.Balance < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance must not be negative")
	}
	if in.Payment <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly payment must be positive")
	}
	if len(in.MemberIDs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one member is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	debt := models.Debt{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(in.Name),
		Balance:   in.Balance,
		Payment:   in.Payment,
		Type:      debtTypeOrDefault(in.Type),
		MemberIDs: append([]string(nil), in.MemberIDs...),
		IsJoint:   len(in.MemberIDs) > 1,
	}
	s.debts = append(s.debts, debt)
	s.persist()
	return &debt, nil
}

// DeleteDebt removes a debt and cascades to every transaction referencing it,
// including payment records from past months.
func (s *ledgerService) DeleteDebt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keptDebts := s.debts[:0]
	for _, d := range s.debts {
		if d.ID != id {
			keptDebts = append(keptDebts, d)
		}
	}
	s.debts = keptDebts

	keptTx := s.transactions[:0]
	for _, t := range s.transactions {
		if t.DebtID != id {
			keptTx = append(keptTx, t)
		}
	}
	s.transactions = keptTx

	s.persist()
	return nil
}

// ToggleDebtPayment flips a debt's paid status for a month. Paying creates
// one synthetic transaction dated the first of the month; unpaying deletes
// it. Returns the resulting paid status.
func (s *ledgerService) ToggleDebtPayment(debtID, month string) (bool, error) {
	if month == "" {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var debt *models.Debt
	for i := range s.debts {
		if s.debts[i].ID == debtID {
			debt = &s.debts[i]
			break
		}
	}
	if debt == nil {
		return false, apperrors.ErrDebtNotFound
	}

	for i, t := range s.transactions {
		if t.DebtID == debtID && t.Month == month {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persist()
			return false, nil
		}
	}

	payment := models.Transaction{
		ID:            uuid.New(),
		DebtID:        debtID,
		Amount:        debt.Payment,
		Description:   debt.Name + " payment",
		MemberIDs:     append([]string(nil), debt.MemberIDs...),
		IsJoint:       debt.IsJoint,
		Date:          month + "-01",
		Month:         month,
		IsDebtPayment: true,
	}
	s.transactions = append(s.transactions, payment)
	s.persist()
	return true, nil
}

// IsDebtPaid reports whether a payment transaction exists for (debt, month).
func (s *ledgerService) IsDebtPaid(debtID, month string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.IsDebtPaid(s.transactions, debtID, month)
}

func debtTypeOrDefault(t models.DebtType) models.DebtType {
	if t == "" {
		return models.DebtTypeCreditCard
	}
	return t
}
