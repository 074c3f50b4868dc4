package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is a spending category with a monthly budget. A category assigned
// to multiple members has its budget split equally among them for per-member
// views; the split is derived at query time, never stored.
type Category struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Budget float64      `json:"budget"`
	Type   CategoryType `json:"type"`

	// MemberIDs lists the members the category applies to. Empty means the
	// whole household.
	MemberIDs []string `json:"member_ids"`

	// IsHousehold is recomputed from MemberIDs whenever the category is
	// written: true when MemberIDs is empty or covers every current member.
	// A later change to the member list does not retroactively update it.
	IsHousehold bool `json:"is_household"`
}

// HasMember reports whether the category is assigned to the given member.
func (c *Category) HasMember(memberID string) bool {
	for _, id := range c.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}
