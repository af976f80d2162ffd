package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MemberPaymentSummary describes one member's payment activity for list views.
// It is recomputed on every read and never persisted.
type MemberPaymentSummary struct {
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`

	// TotalCompletedAmount sums only payments with status Completed.
	TotalCompletedAmount decimal.Decimal `json:"totalCompletedAmount"`

	// PaymentCount is the number of payments of any status.
	PaymentCount int `json:"paymentCount"`

	// LatestPayment is the member's most recent payment, nil if they have none.
	LatestPayment *Payment `json:"latestPayment"`

	// The Last* fields mirror LatestPayment and are zero when it is nil.
	LastMethod      PaymentMethod `json:"lastMethod,omitempty"`
	LastStatus      PaymentStatus `json:"lastStatus,omitempty"`
	LastPaymentDate time.Time     `json:"lastPaymentDate,omitzero"`
}

// Dashboard holds fund-wide totals for the admin overview.
type Dashboard struct {
	// TotalPayments is the sum of completed payment amounts.
	TotalPayments decimal.Decimal `json:"totalPayments"`

	// TotalExpenses is the sum of all expense amounts.
	TotalExpenses decimal.Decimal `json:"totalExpenses"`

	// Balance is TotalPayments minus TotalExpenses.
	Balance decimal.Decimal `json:"balance"`

	TotalMembers int `json:"totalMembers"`

	// TotalTransactions counts completed payments.
	TotalTransactions int `json:"totalTransactions"`

	// RecentTransactions are the newest payments, most recent first.
	RecentTransactions []Payment `json:"recentTransactions"`
}

// RiskTier is a discrete fraud risk label derived from rank position only.
type RiskTier string

const (
	RiskHigh   RiskTier = "High"
	RiskMedium RiskTier = "Medium"
	RiskLow    RiskTier = "Low"
)

// PrioritizedPayment is a payment placed in fraud-review order.
type PrioritizedPayment struct {
	Payment

	// Rank is the 0-based position in the returned order (0 = highest risk).
	Rank int `json:"rank"`

	Tier RiskTier `json:"riskLevel"`
}
