// Package report computes derived financial views over the ledger
// collections. Every function is pure: it takes the collections as arguments,
// mutates nothing, and is recomputed on each call.
package report

import "hearth/internal/models"

// Performance status thresholds use strict comparisons: spending exactly 80%
// of budget is still "good", exactly 100% is "warning".
const (
	StatusGood    = "good"
	StatusWarning = "warning"
	StatusOver    = "over"
)

// Performance is spending measured against a budgeted amount.
type Performance struct {
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

// Share returns one assignee's equal share of an amount split n ways.
// Division is real-valued; rounding happens only at display time.
func Share(amount float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return amount / float64(n)
}

// TotalIncome sums all member incomes recorded for the month.
func TotalIncome(incomes []models.MonthlyIncome, month string) float64 {
	var total float64
	for _, income := range incomes {
		if income.Month == month {
			total += income.Amount
		}
	}
	return total
}

// MemberIncome returns one member's recorded income for the month, or 0.
func MemberIncome(incomes []models.MonthlyIncome, memberID, month string) float64 {
	for _, income := range incomes {
		if income.MemberID == memberID && income.Month == month {
			return income.Amount
		}
	}
	return 0
}

// TotalBudget sums every category budget plus every debt's monthly payment.
// Categories and debts are not month-scoped, so no month filter applies.
func TotalBudget(categories []models.Category, debts []models.Debt) float64 {
	var total float64
	for _, cat := range categories {
		total += cat.Budget
	}
	return total + TotalDebtPayments(debts)
}

// TotalDebtPayments sums the scheduled monthly payment across all debts.
func TotalDebtPayments(debts []models.Debt) float64 {
	var total float64
	for _, debt := range debts {
		total += debt.Payment
	}
	return total
}

// MonthTransactions filters transactions to the given month.
func MonthTransactions(transactions []models.Transaction, month string) []models.Transaction {
	var out []models.Transaction
	for _, t := range transactions {
		if t.Month == month {
			out = append(out, t)
		}
	}
	return out
}

// TotalSpending sums all transaction amounts for the month.
func TotalSpending(transactions []models.Transaction, month string) float64 {
	var total float64
	for _, t := range transactions {
		if t.Month == month {
			total += t.Amount
		}
	}
	return total
}

// CategorySpending sums full transaction amounts for a category in a month.
func CategorySpending(transactions []models.Transaction, categoryID, month string) float64 {
	var total float64
	for _, t := range transactions {
		if t.Month == month && t.CategoryID == categoryID {
			total += t.Amount
		}
	}
	return total
}

// MemberCategorySpending sums one member's share of a category's transactions
// in a month. Each transaction's amount is split equally among its own
// assignees before summing.
func MemberCategorySpending(transactions []models.Transaction, categoryID, month, memberID string) float64 {
	var total float64
	for _, t := range transactions {
		if t.Month == month && t.CategoryID == categoryID && t.HasMember(memberID) {
			total += Share(t.Amount, len(t.MemberIDs))
		}
	}
	return total
}

// MemberTotalBudget sums the member's equal share of each assigned category
// budget and each assigned debt's monthly payment.
func MemberTotalBudget(categories []models.Category, debts []models.Debt, memberID string) float64 {
	var total float64
	for i := range categories {
		if categories[i].HasMember(memberID) {
			total += Share(categories[i].Budget, len(categories[i].MemberIDs))
		}
	}
	for i := range debts {
		if debts[i].HasMember(memberID) {
			total += Share(debts[i].Payment, len(debts[i].MemberIDs))
		}
	}
	return total
}

// MemberTotalSpending sums the member's equal share of each month transaction
// they are attributed on.
func MemberTotalSpending(transactions []models.Transaction, month, memberID string) float64 {
	var total float64
	for i := range transactions {
		t := &transactions[i]
		if t.Month == month && t.HasMember(memberID) {
			total += Share(t.Amount, len(t.MemberIDs))
		}
	}
	return total
}

// IsDebtPaid reports whether a payment transaction exists for the debt in the
// month. The transaction's existence is the only record of payment.
func IsDebtPaid(transactions []models.Transaction, debtID, month string) bool {
	for _, t := range transactions {
		if t.DebtID == debtID && t.Month == month {
			return true
		}
	}
	return false
}

// CategoriesForMember returns categories available to a member: household
// categories plus categories the member is assigned to.
func CategoriesForMember(categories []models.Category, memberID string) []models.Category {
	var out []models.Category
	for i := range categories {
		if categories[i].IsHousehold || categories[i].HasMember(memberID) {
			out = append(out, categories[i])
		}
	}
	return out
}

// Perform measures spent against budgeted. A budget of zero or less reports
// 0% and "good" rather than dividing by zero.
func Perform(spent, budgeted float64) Performance {
	if budgeted <= 0 {
		return Performance{Percentage: 0, Status: StatusGood}
	}

	percentage := spent / budgeted * 100
	status := StatusGood
	switch {
	case percentage > 100:
		status = StatusOver
	case percentage > 80:
		status = StatusWarning
	}
	return Performance{Percentage: percentage, Status: status}
}
