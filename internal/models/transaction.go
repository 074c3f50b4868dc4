package models

// Transaction is a single expense, attributed to one or more members. Shared
// transactions are split equally among MemberIDs at aggregation time; no
// per-member amounts are stored.
type Transaction struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id,omitempty"` // empty for debt payments
	DebtID      string  `json:"debt_id,omitempty"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`

	MemberIDs []string `json:"member_ids"`

	// IsJoint is derived from len(MemberIDs) > 1 when the transaction is
	// created.
	IsJoint bool `json:"is_joint"`

	// IsFromJointCard marks a transaction made with the shared card; such a
	// transaction is attributed to every member current at creation time.
	IsFromJointCard bool `json:"is_from_joint_card"`

	Date  string `json:"date"`  // YYYY-MM-DD
	Month string `json:"month"` // YYYY-MM, derived from Date

	// IsDebtPayment marks the synthetic transaction recorded when a debt's
	// monthly payment is toggled on. Its existence for (DebtID, Month) is the
	// sole evidence the debt is paid that month.
	IsDebtPayment bool `json:"is_debt_payment"`
}

// HasMember reports whether the transaction is attributed to the given member.
func (t *Transaction) HasMember(memberID string) bool {
	for _, id := range t.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}
