package fund

import (
	"context"
	"errors"
	"log/slog"

	"github.com/azizulsheikh/studio/internal/audit"
	"github.com/azizulsheikh/studio/internal/calculator"
	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/storage"
)

// ListPayments returns all payments, newest first.
func (s *Service) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	calculator.SortPaymentsNewestFirst(payments)
	return payments, nil
}

// GetPayment returns a payment or an error wrapping storage.ErrNotFound.
func (s *Service) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.store.GetPayment(ctx, id)
}

// ListPaymentsByMember returns one member's payments, newest first.
// An unknown member is reported as not found.
func (s *Service) ListPaymentsByMember(ctx context.Context, memberID string) ([]models.Payment, error) {
	if _, err := s.store.GetMember(ctx, memberID); err != nil {
		return nil, err
	}

	payments, err := s.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Payment, 0)
	for _, p := range payments {
		if p.MemberID == memberID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// CreatePayment validates fields, checks the member exists and stores a new
// payment stamped now.
func (s *Service) CreatePayment(ctx context.Context, fields models.PaymentFields) (*models.Payment, error) {
	if err := s.validatePayment(ctx, &fields); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:            s.newID(),
		MemberID:      fields.MemberID,
		Amount:        fields.Amount,
		Timestamp:     s.now(),
		PaymentMethod: fields.PaymentMethod,
		Description:   fields.Description,
		Status:        fields.Status,
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		return nil, memberReferenceError(err)
	}

	s.record(ctx, "payments", "create", audit.PaymentCreated, payment)
	slog.Info("Payment created",
		"payment_id", payment.ID,
		"member_id", payment.MemberID,
		"amount", payment.Amount.String(),
		"status", payment.Status,
	)
	return payment, nil
}

// UpdatePayment replaces a payment's editable fields. The timestamp is
// refreshed to the time of the edit.
func (s *Service) UpdatePayment(ctx context.Context, id string, fields models.PaymentFields) (*models.Payment, error) {
	if err := s.validatePayment(ctx, &fields); err != nil {
		return nil, err
	}

	existing, err := s.store.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.MemberID = fields.MemberID
	updated.Amount = fields.Amount
	updated.PaymentMethod = fields.PaymentMethod
	updated.Description = fields.Description
	updated.Status = fields.Status
	updated.Timestamp = s.now()

	if err := s.store.UpdatePayment(ctx, &updated); err != nil {
		return nil, memberReferenceError(err)
	}

	s.record(ctx, "payments", "update", audit.PaymentUpdated, &updated)
	slog.Info("Payment updated", "payment_id", id, "status", updated.Status)
	return &updated, nil
}

// DeletePayment removes a payment.
func (s *Service) DeletePayment(ctx context.Context, id string) error {
	if err := s.store.DeletePayment(ctx, id); err != nil {
		return err
	}

	s.record(ctx, "payments", "delete", audit.PaymentDeleted, map[string]string{"id": id})
	slog.Info("Payment deleted", "payment_id", id)
	return nil
}

// validatePayment runs field validation, then checks the member reference.
func (s *Service) validatePayment(ctx context.Context, fields *models.PaymentFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}
	_, err := s.store.GetMember(ctx, fields.MemberID)
	if errors.Is(err, storage.ErrNotFound) {
		return errMemberMissing()
	}
	return err
}

// memberReferenceError reports a member deleted after validatePayment ran
// the same way validatePayment would have.
func memberReferenceError(err error) error {
	if errors.Is(err, storage.ErrMemberMissing) {
		return errMemberMissing()
	}
	return err
}

func errMemberMissing() error {
	return models.NewValidationError("memberId", "Selected member does not exist.")
}
