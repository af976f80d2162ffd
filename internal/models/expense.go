package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents one outgoing cost of the fund.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// ExpenseFields holds the caller-editable fields of an expense.
// A zero Date means "now" on create and "unchanged" on update.
type ExpenseFields struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date,omitzero"`
}
