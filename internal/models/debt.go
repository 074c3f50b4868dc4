package models

// DebtType represents the kind of debt obligation
type DebtType string

const (
	DebtTypeCreditCard DebtType = "credit-card"
	DebtTypeLoan       DebtType = "loan"
	DebtTypeOther      DebtType = "other"
)

// Debt is a shared obligation with a fixed monthly payment. Whether it is paid
// for a given month is an existence check against the transactions collection,
// not a stored flag.
type Debt struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Balance float64  `json:"balance"`
	Payment float64  `json:"payment"` // monthly amount
	Type    DebtType `json:"type"`

	MemberIDs []string `json:"member_ids"`
	IsJoint   bool     `json:"is_joint"`
}

// HasMember reports whether the debt is assigned to the given member.
func (d *Debt) HasMember(memberID string) bool {
	for _, id := range d.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}
