package models

// MonthlyIncome records one member's income for one month. At most one record
// exists per (member, month) pair, enforced by upsert-on-write.
type MonthlyIncome struct {
	ID       string  `json:"id"`
	MemberID string  `json:"member_id"`
	Month    string  `json:"month"` // YYYY-MM
	Amount   float64 `json:"amount"`
}
