package storage

import "time"

// Entry is one row of the key-value store: a fixed string key mapping to a
// JSON-serialized collection.
type Entry struct {
	Key       string    `gorm:"column:key;primaryKey" json:"key"`
	Value     string    `gorm:"column:value;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the GORM table name.
func (Entry) TableName() string { return "store_entries" }

// Fixed store keys, one per persisted collection.
const (
	KeyMembers      = "budget-members"
	KeyCategories   = "budget-categories"
	KeyTransactions = "budget-transactions"
	KeyDebts        = "budget-debts"
	KeyIncomes      = "budget-incomes"
)
