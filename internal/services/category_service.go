package services

import (
	"strings"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/report"
	"hearth/internal/uuid"
)

// AddCategory creates a new spending category. IsHousehold is computed from
// the assigned members against the current member list; an empty assignment
// means the whole household.
func (s *ledgerService) AddCategory(in CategoryInput) (*models.Category, error) {
	if err := validateCategoryInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category := models.Category{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Budget:      in.Budget,
		Type:        categoryTypeOrDefault(in.Type),
		MemberIDs:   append([]string(nil), in.MemberIDs...),
		IsHousehold: s.coversHousehold(in.MemberIDs),
	}
	s.categories = append(s.categories, category)
	s.persist()
	return &category, nil
}

// UpdateCategory replaces a category's mutable fields in place, preserving its
// id. IsHousehold is recomputed against the member list as of this write; it
// is not retroactively updated when members later change.
func (s *ledgerService) UpdateCategory(id string, in CategoryInput) (*models.Category, error) {
	if err := validateCategoryInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		s.categories[i].Name = strings.TrimSpace(in.Name)
		s.categories[i].Budget = in.Budget
		s.categories[i].Type = categoryTypeOrDefault(in.Type)
		s.categories[i].MemberIDs = append([]string(nil), in.MemberIDs...)
		s.categories[i].IsHousehold = s.coversHousehold(in.MemberIDs)
		category := s.categories[i]
		s.persist()
		return &category, nil
	}
	return nil, apperrors.ErrCategoryNotFound
}

// DeleteCategory removes a category. Transactions referencing it keep their
// dangling category id and resolve to "Unknown" at display time.
func (s *ledgerService) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.persist()
	return nil
}

// CategoriesForMember returns household categories plus those assigned to the
// member, used to restrict category choices when recording spending for one
// member.
func (s *ledgerService) CategoriesForMember(memberID string) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.CategoriesForMember(s.categories, memberID)
}

// CategoryName resolves a category id to its name, or "Unknown" for a
// dangling id.
func (s *ledgerService) CategoryName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown"
}

// coversHousehold reports whether an assignment set means "whole household":
// empty, or containing every current member. Callers must hold s.mu.
func (s *ledgerService) coversHousehold(memberIDs []string) bool {
	if len(memberIDs) == 0 {
		return true
	}
	assigned := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		assigned[id] = true
	}
	for _, m := range s.members {
		if !assigned[m.ID] {
			return false
		}
	}
	return len(s.members) > 0
}

func validateCategoryInput(in CategoryInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if in.Budget <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category budget must be positive")
	}
	return nil
}

func categoryTypeOrDefault(t models.CategoryType) models.CategoryType {
	if t == "" {
		return models.CategoryTypeExpense
	}
	return t
}
