package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// ReportServiceHandler is the server side of ReportService.
//
// ReportService serves computed views: member summaries, the dashboard and
// fraud-review ordering.
type ReportServiceHandler interface {
	ListMemberSummaries(context.Context, *connect.Request[ListMemberSummariesRequest]) (*connect.Response[ListMemberSummariesResponse], error)
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
	PrioritizePayments(context.Context, *connect.Request[PrioritizePaymentsRequest]) (*connect.Response[PrioritizePaymentsResponse], error)
}

// NewReportServiceHandler builds an HTTP handler for every ReportService procedure and
// returns the path prefix to mount it on.
func NewReportServiceHandler(svc ReportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(ReportServiceListMemberSummariesProcedure, connect.NewUnaryHandler(ReportServiceListMemberSummariesProcedure, svc.ListMemberSummaries, handlerOptions(opts, readOnly)...))
	mux.Handle(ReportServiceGetDashboardProcedure, connect.NewUnaryHandler(ReportServiceGetDashboardProcedure, svc.GetDashboard, handlerOptions(opts, readOnly)...))
	mux.Handle(ReportServicePrioritizePaymentsProcedure, connect.NewUnaryHandler(ReportServicePrioritizePaymentsProcedure, svc.PrioritizePayments, handlerOptions(opts)...))
	return "/" + ReportServiceName + "/", mux
}

// ReportServiceClient is a client for ReportService.
type ReportServiceClient interface {
	ListMemberSummaries(context.Context, *connect.Request[ListMemberSummariesRequest]) (*connect.Response[ListMemberSummariesResponse], error)
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
	PrioritizePayments(context.Context, *connect.Request[PrioritizePaymentsRequest]) (*connect.Response[PrioritizePaymentsResponse], error)
}

type reportServiceClient struct {
	listMemberSummaries *connect.Client[ListMemberSummariesRequest, ListMemberSummariesResponse]
	getDashboard        *connect.Client[GetDashboardRequest, GetDashboardResponse]
	prioritizePayments  *connect.Client[PrioritizePaymentsRequest, PrioritizePaymentsResponse]
}

// NewReportServiceClient returns a client for the ReportService served at baseURL.
func NewReportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReportServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &reportServiceClient{
		listMemberSummaries: connect.NewClient[ListMemberSummariesRequest, ListMemberSummariesResponse](httpClient, baseURL+ReportServiceListMemberSummariesProcedure, clientOptions(opts, readOnly)...),
		getDashboard:        connect.NewClient[GetDashboardRequest, GetDashboardResponse](httpClient, baseURL+ReportServiceGetDashboardProcedure, clientOptions(opts, readOnly)...),
		prioritizePayments:  connect.NewClient[PrioritizePaymentsRequest, PrioritizePaymentsResponse](httpClient, baseURL+ReportServicePrioritizePaymentsProcedure, clientOptions(opts)...),
	}
}

func (c *reportServiceClient) ListMemberSummaries(ctx context.Context, req *connect.Request[ListMemberSummariesRequest]) (*connect.Response[ListMemberSummariesResponse], error) {
	return c.listMemberSummaries.CallUnary(ctx, req)
}

func (c *reportServiceClient) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *reportServiceClient) PrioritizePayments(ctx context.Context, req *connect.Request[PrioritizePaymentsRequest]) (*connect.Response[PrioritizePaymentsResponse], error) {
	return c.prioritizePayments.CallUnary(ctx, req)
}
