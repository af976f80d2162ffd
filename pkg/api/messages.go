package api

import (
	"time"

	"github.com/azizulsheikh/studio/internal/audit"
	"github.com/azizulsheikh/studio/internal/models"
)

// Members

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []models.Member `json:"members"`
}

type GetMemberRequest struct {
	ID string `json:"id"`
}

type GetMemberResponse struct {
	Member *models.Member `json:"member"`
}

type CreateMemberRequest struct {
	models.MemberFields
}

type CreateMemberResponse struct {
	Member *models.Member `json:"member"`
}

type UpdateMemberRequest struct {
	ID string `json:"id"`
	models.MemberFields
}

type UpdateMemberResponse struct {
	Member *models.Member `json:"member"`
}

type DeleteMemberRequest struct {
	ID string `json:"id"`
}

type DeleteMemberResponse struct {
	// PaymentsRemoved counts the member's payments deleted with them.
	PaymentsRemoved int `json:"paymentsRemoved"`
}

// Payments

type ListPaymentsRequest struct{}

type ListPaymentsResponse struct {
	Payments []models.Payment `json:"payments"`
}

type GetPaymentRequest struct {
	ID string `json:"id"`
}

type GetPaymentResponse struct {
	Payment *models.Payment `json:"payment"`
}

type ListPaymentsByMemberRequest struct {
	MemberID string `json:"memberId"`
}

type ListPaymentsByMemberResponse struct {
	Payments []models.Payment `json:"payments"`
}

type CreatePaymentRequest struct {
	models.PaymentFields
}

type CreatePaymentResponse struct {
	Payment *models.Payment `json:"payment"`
}

type UpdatePaymentRequest struct {
	ID string `json:"id"`
	models.PaymentFields
}

type UpdatePaymentResponse struct {
	Payment *models.Payment `json:"payment"`
}

type DeletePaymentRequest struct {
	ID string `json:"id"`
}

type DeletePaymentResponse struct{}

// Expenses

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

type GetExpenseRequest struct {
	ID string `json:"id"`
}

type GetExpenseResponse struct {
	Expense *models.Expense `json:"expense"`
}

type CreateExpenseRequest struct {
	models.ExpenseFields
}

type CreateExpenseResponse struct {
	Expense *models.Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	ID string `json:"id"`
	models.ExpenseFields
}

type UpdateExpenseResponse struct {
	Expense *models.Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

// Reports

type ListMemberSummariesRequest struct{}

type ListMemberSummariesResponse struct {
	Summaries []models.MemberPaymentSummary `json:"summaries"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Dashboard *models.Dashboard `json:"dashboard"`

	// Currency is the code every amount is denominated in.
	Currency string `json:"currency"`

	// Display strings for the three headline totals, e.g. "BDT 1,250.00".
	FormattedTotalPayments string `json:"formattedTotalPayments"`
	FormattedTotalExpenses string `json:"formattedTotalExpenses"`
	FormattedBalance       string `json:"formattedBalance"`
}

type PrioritizePaymentsRequest struct {
	// Payments to order. Empty means every stored payment.
	Payments []models.Payment `json:"payments"`
}

type PrioritizePaymentsResponse struct {
	Payments []models.PrioritizedPayment `json:"payments"`

	// Prioritized is false when the oracle could not be used and Payments
	// are in their original order.
	Prioritized bool   `json:"prioritized"`
	Warning     string `json:"warning,omitempty"`
}

// Auth

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type GetSessionRequest struct{}

type GetSessionResponse struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}

// Audit

type ListEventsRequest struct {
	// Type filters by event type, e.g. "payment.deleted". Empty means all.
	Type string `json:"type,omitempty"`

	// Limit caps the number of events returned. Zero means the server default.
	Limit int `json:"limit,omitempty"`
}

type ListEventsResponse struct {
	Events []audit.Event `json:"events"`
}
