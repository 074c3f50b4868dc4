package services

import (
	"strings"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/report"
	"hearth/internal/uuid"
)

// AddMember appends a new household member.
func (s *ledgerService) AddMember(name string) (*models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "member name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member := models.Member{ID: uuid.New(), Name: name}
	s.members = append(s.members, member)
	s.persist()
	return &member, nil
}

// DeleteMember removes a member. No cascade: categories, debts, and
// transactions keep any reference to the deleted id, resolved to a
// placeholder at display time.
func (s *ledgerService) DeleteMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.members[:0]
	for _, m := range s.members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.members = kept
	s.persist()
	return nil
}

// MemberName resolves a member id to its name, or "Unknown" for a dangling id.
func (s *ledgerService) MemberName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.ID == id {
			return m.Name
		}
	}
	return "Unknown"
}

// UpsertIncome records a member's income for a month, replacing the amount if
// a record for (member, month) already exists.
func (s *ledgerService) UpsertIncome(memberID, month string, amount float64) (*models.MonthlyIncome, error) {
	if memberID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "member id is required")
	}
	if month == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.memberExists(memberID) {
		return nil, apperrors.ErrMemberNotFound
	}

	for i := range s.incomes {
		if s.incomes[i].MemberID == memberID && s.incomes[i].Month == month {
			s.incomes[i].Amount = amount
			income := s.incomes[i]
			s.persist()
			return &income, nil
		}
	}

	income := models.MonthlyIncome{
		ID:       uuid.New(),
		MemberID: memberID,
		Month:    month,
		Amount:   amount,
	}
	s.incomes = append(s.incomes, income)
	s.persist()
	return &income, nil
}

// MemberIncome returns the member's recorded income for the month, or 0.
func (s *ledgerService) MemberIncome(memberID, month string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.MemberIncome(s.incomes, memberID, month)
}

// MemberSummary returns one member's row of the month summary.
func (s *ledgerService) MemberSummary(memberID, month string) (*report.MemberRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.ID == memberID {
			income := report.MemberIncome(s.incomes, memberID, month)
			spending := report.MemberTotalSpending(s.transactions, month, memberID)
			return &report.MemberRow{
				MemberID:  m.ID,
				Name:      m.Name,
				Income:    income,
				Budget:    report.MemberTotalBudget(s.categories, s.debts, memberID),
				Spending:  spending,
				Remaining: income - spending,
			}, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}

// memberExists reports whether a member id is current. Callers must hold s.mu.
func (s *ledgerService) memberExists(id string) bool {
	for _, m := range s.members {
		if m.ID == id {
			return true
		}
	}
	return false
}

// allMemberIDs returns the ids of every current member. Callers must hold s.mu.
func (s *ledgerService) allMemberIDs() []string {
	ids := make([]string, len(s.members))
	for i, m := range s.members {
		ids[i] = m.ID
	}
	return ids
}
