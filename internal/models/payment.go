package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was made.
// Values match the strings already present in the payments data file.
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "Credit Card"
	MethodPayPal       PaymentMethod = "PayPal"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodPayPal, MethodBankTransfer:
		return true
	}
	return false
}

// PaymentStatus is the processing state of a payment.
type PaymentStatus string

const (
	StatusCompleted PaymentStatus = "Completed"
	StatusPending   PaymentStatus = "Pending"
	StatusFailed    PaymentStatus = "Failed"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusFailed:
		return true
	}
	return false
}

// Payment represents one recorded contribution attributed to a member.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `json:"id"`

	// MemberID references the paying Member.
	MemberID string `json:"memberId"`

	// Amount is strictly positive, in the fund's single currency.
	Amount decimal.Decimal `json:"amount"`

	// Timestamp is when the payment was recorded or last edited.
	Timestamp time.Time `json:"timestamp"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`

	// Description is an optional free-text note.
	Description string `json:"description,omitempty"`

	Status PaymentStatus `json:"status"`
}

// PaymentFields holds the caller-editable fields of a payment.
type PaymentFields struct {
	MemberID      string          `json:"memberId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Description   string          `json:"description,omitempty"`
	Status        PaymentStatus   `json:"status"`
}
