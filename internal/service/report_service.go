package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/azizulsheikh/studio/internal/fund"
	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/pkg/api"
)

// ReportService implements the Connect ReportService.
type ReportService struct {
	fund     *fund.Service
	currency string
}

var _ api.ReportServiceHandler = (*ReportService)(nil)

// NewReportService creates a new ReportService. Amounts are labelled with
// currency, or models.DefaultCurrency when empty.
func NewReportService(f *fund.Service, currency string) *ReportService {
	if currency == "" {
		currency = models.DefaultCurrency
	}
	return &ReportService{fund: f, currency: currency}
}

// ListMemberSummaries returns one payment summary row per member.
func (s *ReportService) ListMemberSummaries(ctx context.Context, req *connect.Request[api.ListMemberSummariesRequest]) (*connect.Response[api.ListMemberSummariesResponse], error) {
	slog.Info("ListMemberSummaries request received")

	summaries, err := s.fund.MemberSummaries(ctx)
	if err != nil {
		return nil, toConnectError("ListMemberSummaries", err)
	}

	slog.Info("ListMemberSummaries successful", "count", len(summaries))
	return connect.NewResponse(&api.ListMemberSummariesResponse{Summaries: summaries}), nil
}

// GetDashboard returns fund-wide totals.
func (s *ReportService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	slog.Info("GetDashboard request received")

	d, err := s.fund.Dashboard(ctx)
	if err != nil {
		return nil, toConnectError("GetDashboard", err)
	}

	slog.Info("GetDashboard successful",
		"total_members", d.TotalMembers,
		"total_transactions", d.TotalTransactions,
		"balance", d.Balance.String(),
	)

	return connect.NewResponse(&api.GetDashboardResponse{
		Dashboard:              d,
		Currency:               s.currency,
		FormattedTotalPayments: models.FormatAmount(d.TotalPayments, s.currency),
		FormattedTotalExpenses: models.FormatAmount(d.TotalExpenses, s.currency),
		FormattedBalance:       models.FormatAmount(d.Balance, s.currency),
	}), nil
}

// PrioritizePayments orders payments for fraud review. Oracle failures are
// reported in the response, not as RPC errors.
func (s *ReportService) PrioritizePayments(ctx context.Context, req *connect.Request[api.PrioritizePaymentsRequest]) (*connect.Response[api.PrioritizePaymentsResponse], error) {
	slog.Info("PrioritizePayments request received", "count", len(req.Msg.Payments))

	result, err := s.fund.PrioritizePayments(ctx, req.Msg.Payments)
	if err != nil {
		return nil, toConnectError("PrioritizePayments", err)
	}

	slog.Info("PrioritizePayments complete",
		"count", len(result.Payments),
		"prioritized", result.Prioritized,
	)

	return connect.NewResponse(&api.PrioritizePaymentsResponse{
		Payments:    result.Payments,
		Prioritized: result.Prioritized,
		Warning:     result.Warning,
	}), nil
}
