package fund

import (
	"context"
	"log/slog"

	"github.com/azizulsheikh/studio/internal/calculator"
	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/prioritize"
)

// MemberSummaries computes one payment summary row per member from the
// current snapshot. Orphaned payments are logged and skipped.
func (s *Service) MemberSummaries(ctx context.Context) ([]models.MemberPaymentSummary, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	summaries, warnings := calculator.SummarizeMembers(members, payments)
	for _, w := range warnings {
		slog.Warn("Payment references a missing member; skipped in summary",
			"payment_id", w.PaymentID,
			"member_id", w.MemberID,
		)
	}
	s.metrics.IntegrityWarnings(len(warnings))

	return summaries, nil
}

// Dashboard computes fund-wide totals from the current snapshot.
func (s *Service) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	d := calculator.Dashboard(members, payments, expenses)
	return &d, nil
}

// PrioritizePayments orders payments for fraud review. An empty list means
// every stored payment, newest first. Oracle failures never surface as
// errors; they come back as an unprioritized Result with a warning.
func (s *Service) PrioritizePayments(ctx context.Context, payments []models.Payment) (prioritize.Result, error) {
	if len(payments) == 0 {
		var err error
		payments, err = s.ListPayments(ctx)
		if err != nil {
			return prioritize.Result{}, err
		}
	}
	return s.delegate.Prioritize(ctx, payments), nil
}
