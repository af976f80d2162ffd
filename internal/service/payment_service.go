package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/azizulsheikh/studio/internal/fund"
	"github.com/azizulsheikh/studio/pkg/api"
)

// PaymentService implements the Connect PaymentService.
type PaymentService struct {
	fund *fund.Service
}

var _ api.PaymentServiceHandler = (*PaymentService)(nil)

// NewPaymentService creates a new PaymentService backed by the fund service.
func NewPaymentService(f *fund.Service) *PaymentService {
	return &PaymentService{fund: f}
}

// ListPayments returns every payment, newest first.
func (s *PaymentService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	slog.Info("ListPayments request received")

	payments, err := s.fund.ListPayments(ctx)
	if err != nil {
		return nil, toConnectError("ListPayments", err)
	}

	slog.Info("ListPayments successful", "count", len(payments))
	return connect.NewResponse(&api.ListPaymentsResponse{Payments: payments}), nil
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, req *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error) {
	slog.Info("GetPayment request received", "payment_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	payment, err := s.fund.GetPayment(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("GetPayment", err)
	}

	return connect.NewResponse(&api.GetPaymentResponse{Payment: payment}), nil
}

// ListPaymentsByMember returns one member's payments, newest first.
func (s *PaymentService) ListPaymentsByMember(ctx context.Context, req *connect.Request[api.ListPaymentsByMemberRequest]) (*connect.Response[api.ListPaymentsByMemberResponse], error) {
	slog.Info("ListPaymentsByMember request received", "member_id", req.Msg.MemberID)
	if err := requireID("memberId", req.Msg.MemberID); err != nil {
		return nil, err
	}

	payments, err := s.fund.ListPaymentsByMember(ctx, req.Msg.MemberID)
	if err != nil {
		return nil, toConnectError("ListPaymentsByMember", err)
	}

	slog.Info("ListPaymentsByMember successful", "member_id", req.Msg.MemberID, "count", len(payments))
	return connect.NewResponse(&api.ListPaymentsByMemberResponse{Payments: payments}), nil
}

// CreatePayment records a payment.
func (s *PaymentService) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	slog.Info("CreatePayment request received",
		"member_id", req.Msg.MemberID,
		"status", req.Msg.Status,
	)

	payment, err := s.fund.CreatePayment(ctx, req.Msg.PaymentFields)
	if err != nil {
		return nil, toConnectError("CreatePayment", err)
	}

	return connect.NewResponse(&api.CreatePaymentResponse{Payment: payment}), nil
}

// UpdatePayment edits a payment.
func (s *PaymentService) UpdatePayment(ctx context.Context, req *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.UpdatePaymentResponse], error) {
	slog.Info("UpdatePayment request received", "payment_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	payment, err := s.fund.UpdatePayment(ctx, req.Msg.ID, req.Msg.PaymentFields)
	if err != nil {
		return nil, toConnectError("UpdatePayment", err)
	}

	return connect.NewResponse(&api.UpdatePaymentResponse{Payment: payment}), nil
}

// DeletePayment removes a payment.
func (s *PaymentService) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	slog.Info("DeletePayment request received", "payment_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	if err := s.fund.DeletePayment(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeletePayment", err)
	}

	return connect.NewResponse(&api.DeletePaymentResponse{}), nil
}
