// Package prioritize orders payments for fraud review by delegating to an
// external oracle, and derives rank-based risk tiers from the order it returns.
//
// The oracle's answer is never trusted blindly: it is checked to be a
// permutation of the input, and any failure falls back to the input order
// with the result flagged as unprioritized.
package prioritize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/azizulsheikh/studio/internal/calculator"
	"github.com/azizulsheikh/studio/internal/metrics"
	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/oracle"
)

// DefaultTimeout bounds a single oracle call.
const DefaultTimeout = 20 * time.Second

// ErrInvalidShape means the oracle's output was not a reordering of the input.
var ErrInvalidShape = errors.New("oracle returned an invalid ordering")

// Result is a fraud-review ordering of payments.
type Result struct {
	// Payments are in review order with rank and tier filled in.
	Payments []models.PrioritizedPayment

	// Prioritized is false when the oracle could not be used and Payments
	// are in the caller's original order.
	Prioritized bool

	// Warning explains why the result is unprioritized. Empty otherwise.
	Warning string
}

// Delegate forwards payment lists to an oracle.
type Delegate struct {
	oracle  oracle.Oracle
	timeout time.Duration
	metrics *metrics.Metrics
}

// New creates a Delegate. A nil oracle behaves as unconfigured; a
// non-positive timeout uses DefaultTimeout.
func New(o oracle.Oracle, timeout time.Duration, m *metrics.Metrics) *Delegate {
	if o == nil {
		o = oracle.Unconfigured
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Delegate{oracle: o, timeout: timeout, metrics: m}
}

// Prioritize asks the oracle to order payments from highest to lowest
// assumed fraud risk. It never fails: on any oracle problem the input order
// is returned unmodified with Prioritized=false and a Warning.
func (d *Delegate) Prioritize(ctx context.Context, payments []models.Payment) Result {
	if len(payments) == 0 {
		d.metrics.OracleCall(metrics.OutcomeEmpty, 0)
		return Result{Payments: []models.PrioritizedPayment{}, Prioritized: true}
	}

	records := make([]oracle.PaymentRecord, len(payments))
	for i, p := range payments {
		records[i] = toRecord(p)
	}

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	returned, err := d.oracle.Prioritize(callCtx, records)
	elapsed := time.Since(start)

	var ordered []models.Payment
	if err == nil {
		ordered, err = reorder(payments, returned)
	}
	if err != nil {
		outcome := classify(err)
		d.metrics.OracleCall(outcome, elapsed)
		slog.Warn("Fraud prioritization fell back to input order",
			"outcome", outcome,
			"payments_count", len(payments),
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return Result{
			Payments:    rank(payments),
			Prioritized: false,
			Warning:     fallbackWarning(outcome),
		}
	}

	d.metrics.OracleCall(metrics.OutcomePrioritized, elapsed)
	slog.Info("Fraud prioritization complete",
		"payments_count", len(payments),
		"duration_ms", elapsed.Milliseconds(),
	)
	return Result{Payments: rank(ordered), Prioritized: true}
}

// reorder maps the oracle's records back onto the caller's payments by ID.
// Unknown IDs and repeats are ignored and entries beyond the input length are
// dropped; the remainder must name every input payment exactly once.
// The caller's own records are returned, so amounts or other fields the
// oracle echoed back are never used.
func reorder(input []models.Payment, returned []oracle.PaymentRecord) ([]models.Payment, error) {
	positions := make(map[string][]int, len(input))
	for i, p := range input {
		positions[p.ID] = append(positions[p.ID], i)
	}

	ordered := make([]models.Payment, 0, len(input))
	for _, r := range returned {
		if len(ordered) == len(input) {
			break
		}
		queue := positions[r.ID]
		if len(queue) == 0 {
			continue
		}
		ordered = append(ordered, input[queue[0]])
		positions[r.ID] = queue[1:]
	}

	if len(ordered) != len(input) {
		return nil, fmt.Errorf("%w: %d of %d payments returned", ErrInvalidShape, len(ordered), len(input))
	}
	return ordered, nil
}

// rank attaches the 0-based rank and tier to each payment in order.
func rank(payments []models.Payment) []models.PrioritizedPayment {
	out := make([]models.PrioritizedPayment, len(payments))
	for i, p := range payments {
		out[i] = models.PrioritizedPayment{
			Payment: p,
			Rank:    i,
			Tier:    calculator.RiskTier(i, len(payments)),
		}
	}
	return out
}

func toRecord(p models.Payment) oracle.PaymentRecord {
	return oracle.PaymentRecord{
		ID:            p.ID,
		MemberID:      p.MemberID,
		Amount:        p.Amount,
		Timestamp:     p.Timestamp.UTC().Format(time.RFC3339),
		PaymentMethod: string(p.PaymentMethod),
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, oracle.ErrNotConfigured):
		return metrics.OutcomeNotConfigured
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeTimeout
	case errors.Is(err, ErrInvalidShape):
		return metrics.OutcomeInvalidShape
	default:
		return metrics.OutcomeError
	}
}

func fallbackWarning(outcome string) string {
	switch outcome {
	case metrics.OutcomeNotConfigured:
		return "Fraud prioritization is not configured; payments are shown in their original order."
	case metrics.OutcomeTimeout:
		return "Fraud prioritization timed out; payments are shown in their original order."
	case metrics.OutcomeInvalidShape:
		return "Fraud prioritization returned an unusable result; payments are shown in their original order."
	default:
		return "Fraud prioritization is unavailable; payments are shown in their original order."
	}
}
