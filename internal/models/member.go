package models

// Member is a person in the household. Deleting a member does not cascade:
// categories, debts, and transactions may keep dangling member ids, which are
// resolved to a placeholder label at display time.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
