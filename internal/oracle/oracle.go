// Package oracle talks to the hosted language model that orders payments by
// assumed fraud risk. The model is a black box: records go in, the same
// records come back in some order. Nothing here scores or ranks anything.
package oracle

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotConfigured is returned when no model credentials are available.
var ErrNotConfigured = errors.New("fraud prioritization oracle is not configured")

// PaymentRecord is the subset of a payment sent to the oracle.
type PaymentRecord struct {
	ID            string          `json:"id"`
	MemberID      string          `json:"memberId"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     string          `json:"timestamp"`
	PaymentMethod string          `json:"paymentMethod"`
}

// Oracle reorders payment records from highest to lowest assumed fraud risk.
// Implementations may fail, return a different number of records, or return
// a different order for identical input; callers must validate the result.
type Oracle interface {
	Prioritize(ctx context.Context, records []PaymentRecord) ([]PaymentRecord, error)
}

// Func adapts an ordinary function to the Oracle interface.
type Func func(ctx context.Context, records []PaymentRecord) ([]PaymentRecord, error)

// Prioritize calls f.
func (f Func) Prioritize(ctx context.Context, records []PaymentRecord) ([]PaymentRecord, error) {
	return f(ctx, records)
}

// Unconfigured is an Oracle that always fails with ErrNotConfigured.
var Unconfigured Oracle = Func(func(context.Context, []PaymentRecord) ([]PaymentRecord, error) {
	return nil, ErrNotConfigured
})
