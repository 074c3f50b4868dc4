package report

import "hearth/internal/models"

// CategoryRow is one category's spend-vs-budget line in a month summary.
type CategoryRow struct {
	CategoryID  string      `json:"category_id"`
	Name        string      `json:"name"`
	Budget      float64     `json:"budget"`
	Spent       float64     `json:"spent"`
	Remaining   float64     `json:"remaining"`
	Performance Performance `json:"performance"`
}

// MemberRow is one member's financial position in a month summary.
type MemberRow struct {
	MemberID  string  `json:"member_id"`
	Name      string  `json:"name"`
	Income    float64 `json:"income"`
	Budget    float64 `json:"budget"`
	Spending  float64 `json:"spending"`
	Remaining float64 `json:"remaining"` // income minus spending
}

// MemberCategoryRow is one category's line in a member summary: the member's
// equal share of that category's month spending.
type MemberCategoryRow struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
}

// Summary is the full derived view for one month.
type Summary struct {
	Month         string        `json:"month"`
	TotalIncome   float64       `json:"total_income"`
	TotalBudget   float64       `json:"total_budget"`
	TotalSpending float64       `json:"total_spending"`
	Categories    []CategoryRow `json:"categories"`
	Members       []MemberRow   `json:"members"`
}

// MemberCategoryBreakdown lists the categories available to a member with
// the member's share of each one's month spending. Household categories are
// included even when the member has recorded nothing against them.
func MemberCategoryBreakdown(categories []models.Category, transactions []models.Transaction, memberID, month string) []MemberCategoryRow {
	available := CategoriesForMember(categories, memberID)
	rows := make([]MemberCategoryRow, 0, len(available))
	for i := range available {
		cat := &available[i]
		rows = append(rows, MemberCategoryRow{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Budget:     cat.Budget,
			Spent:      MemberCategorySpending(transactions, cat.ID, month, memberID),
		})
	}
	return rows
}

// BuildSummary assembles the month view from the raw collections.
func BuildSummary(
	members []models.Member,
	categories []models.Category,
	transactions []models.Transaction,
	debts []models.Debt,
	incomes []models.MonthlyIncome,
	month string,
) Summary {
	summary := Summary{
		Month:         month,
		TotalIncome:   TotalIncome(incomes, month),
		TotalBudget:   TotalBudget(categories, debts),
		TotalSpending: TotalSpending(transactions, month),
		Categories:    make([]CategoryRow, 0, len(categories)),
		Members:       make([]MemberRow, 0, len(members)),
	}

	for i := range categories {
		cat := &categories[i]
		spent := CategorySpending(transactions, cat.ID, month)
		summary.Categories = append(summary.Categories, CategoryRow{
			CategoryID:  cat.ID,
			Name:        cat.Name,
			Budget:      cat.Budget,
			Spent:       spent,
			Remaining:   cat.Budget - spent,
			Performance: Perform(spent, cat.Budget),
		})
	}

	for i := range members {
		m := &members[i]
		income := MemberIncome(incomes, m.ID, month)
		spending := MemberTotalSpending(transactions, month, m.ID)
		summary.Members = append(summary.Members, MemberRow{
			MemberID:  m.ID,
			Name:      m.Name,
			Income:    income,
			Budget:    MemberTotalBudget(categories, debts, m.ID),
			Spending:  spending,
			Remaining: income - spending,
		})
	}

	return summary
}
