package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/azizulsheikh/studio/internal/models"
)

// RecentTransactionCount is how many payments the dashboard lists.
const RecentTransactionCount = 5

// SortPaymentsNewestFirst orders payments by timestamp descending in place.
// Equal timestamps keep their relative order.
func SortPaymentsNewestFirst(payments []models.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Timestamp.After(payments[j].Timestamp)
	})
}

// SortExpensesNewestFirst orders expenses by date descending in place.
func SortExpensesNewestFirst(expenses []models.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
}

// Dashboard computes fund-wide totals. The input slices are not modified.
func Dashboard(members []models.Member, payments []models.Payment, expenses []models.Expense) models.Dashboard {
	d := models.Dashboard{
		TotalPayments: decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalMembers:  len(members),
	}

	for _, p := range payments {
		if p.Status == models.StatusCompleted {
			d.TotalPayments = d.TotalPayments.Add(p.Amount)
			d.TotalTransactions++
		}
	}
	for _, e := range expenses {
		d.TotalExpenses = d.TotalExpenses.Add(e.Amount)
	}
	d.Balance = d.TotalPayments.Sub(d.TotalExpenses)

	sorted := make([]models.Payment, len(payments))
	copy(sorted, payments)
	SortPaymentsNewestFirst(sorted)
	if len(sorted) > RecentTransactionCount {
		sorted = sorted[:RecentTransactionCount]
	}
	d.RecentTransactions = sorted

	return d
}
