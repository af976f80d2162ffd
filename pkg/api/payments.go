package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// PaymentServiceHandler is the server side of PaymentService.
//
// PaymentService manages recorded payments.
type PaymentServiceHandler interface {
	ListPayments(context.Context, *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error)
	GetPayment(context.Context, *connect.Request[GetPaymentRequest]) (*connect.Response[GetPaymentResponse], error)
	ListPaymentsByMember(context.Context, *connect.Request[ListPaymentsByMemberRequest]) (*connect.Response[ListPaymentsByMemberResponse], error)
	CreatePayment(context.Context, *connect.Request[CreatePaymentRequest]) (*connect.Response[CreatePaymentResponse], error)
	UpdatePayment(context.Context, *connect.Request[UpdatePaymentRequest]) (*connect.Response[UpdatePaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[DeletePaymentRequest]) (*connect.Response[DeletePaymentResponse], error)
}

// NewPaymentServiceHandler builds an HTTP handler for every PaymentService procedure and
// returns the path prefix to mount it on.
func NewPaymentServiceHandler(svc PaymentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(PaymentServiceListPaymentsProcedure, connect.NewUnaryHandler(PaymentServiceListPaymentsProcedure, svc.ListPayments, handlerOptions(opts, readOnly)...))
	mux.Handle(PaymentServiceGetPaymentProcedure, connect.NewUnaryHandler(PaymentServiceGetPaymentProcedure, svc.GetPayment, handlerOptions(opts, readOnly)...))
	mux.Handle(PaymentServiceListPaymentsByMemberProcedure, connect.NewUnaryHandler(PaymentServiceListPaymentsByMemberProcedure, svc.ListPaymentsByMember, handlerOptions(opts, readOnly)...))
	mux.Handle(PaymentServiceCreatePaymentProcedure, connect.NewUnaryHandler(PaymentServiceCreatePaymentProcedure, svc.CreatePayment, handlerOptions(opts)...))
	mux.Handle(PaymentServiceUpdatePaymentProcedure, connect.NewUnaryHandler(PaymentServiceUpdatePaymentProcedure, svc.UpdatePayment, handlerOptions(opts)...))
	mux.Handle(PaymentServiceDeletePaymentProcedure, connect.NewUnaryHandler(PaymentServiceDeletePaymentProcedure, svc.DeletePayment, handlerOptions(opts)...))
	return "/" + PaymentServiceName + "/", mux
}

// PaymentServiceClient is a client for PaymentService.
type PaymentServiceClient interface {
	ListPayments(context.Context, *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error)
	GetPayment(context.Context, *connect.Request[GetPaymentRequest]) (*connect.Response[GetPaymentResponse], error)
	ListPaymentsByMember(context.Context, *connect.Request[ListPaymentsByMemberRequest]) (*connect.Response[ListPaymentsByMemberResponse], error)
	CreatePayment(context.Context, *connect.Request[CreatePaymentRequest]) (*connect.Response[CreatePaymentResponse], error)
	UpdatePayment(context.Context, *connect.Request[UpdatePaymentRequest]) (*connect.Response[UpdatePaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[DeletePaymentRequest]) (*connect.Response[DeletePaymentResponse], error)
}

type paymentServiceClient struct {
	listPayments         *connect.Client[ListPaymentsRequest, ListPaymentsResponse]
	getPayment           *connect.Client[GetPaymentRequest, GetPaymentResponse]
	listPaymentsByMember *connect.Client[ListPaymentsByMemberRequest, ListPaymentsByMemberResponse]
	createPayment        *connect.Client[CreatePaymentRequest, CreatePaymentResponse]
	updatePayment        *connect.Client[UpdatePaymentRequest, UpdatePaymentResponse]
	deletePayment        *connect.Client[DeletePaymentRequest, DeletePaymentResponse]
}

// NewPaymentServiceClient returns a client for the PaymentService served at baseURL.
func NewPaymentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PaymentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &paymentServiceClient{
		listPayments:         connect.NewClient[ListPaymentsRequest, ListPaymentsResponse](httpClient, baseURL+PaymentServiceListPaymentsProcedure, clientOptions(opts, readOnly)...),
		getPayment:           connect.NewClient[GetPaymentRequest, GetPaymentResponse](httpClient, baseURL+PaymentServiceGetPaymentProcedure, clientOptions(opts, readOnly)...),
		listPaymentsByMember: connect.NewClient[ListPaymentsByMemberRequest, ListPaymentsByMemberResponse](httpClient, baseURL+PaymentServiceListPaymentsByMemberProcedure, clientOptions(opts, readOnly)...),
		createPayment:        connect.NewClient[CreatePaymentRequest, CreatePaymentResponse](httpClient, baseURL+PaymentServiceCreatePaymentProcedure, clientOptions(opts)...),
		updatePayment:        connect.NewClient[UpdatePaymentRequest, UpdatePaymentResponse](httpClient, baseURL+PaymentServiceUpdatePaymentProcedure, clientOptions(opts)...),
		deletePayment:        connect.NewClient[DeletePaymentRequest, DeletePaymentResponse](httpClient, baseURL+PaymentServiceDeletePaymentProcedure, clientOptions(opts)...),
	}
}

func (c *paymentServiceClient) ListPayments(ctx context.Context, req *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *paymentServiceClient) GetPayment(ctx context.Context, req *connect.Request[GetPaymentRequest]) (*connect.Response[GetPaymentResponse], error) {
	return c.getPayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) ListPaymentsByMember(ctx context.Context, req *connect.Request[ListPaymentsByMemberRequest]) (*connect.Response[ListPaymentsByMemberResponse], error) {
	return c.listPaymentsByMember.CallUnary(ctx, req)
}

func (c *paymentServiceClient) CreatePayment(ctx context.Context, req *connect.Request[CreatePaymentRequest]) (*connect.Response[CreatePaymentResponse], error) {
	return c.createPayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) UpdatePayment(ctx context.Context, req *connect.Request[UpdatePaymentRequest]) (*connect.Response[UpdatePaymentResponse], error) {
	return c.updatePayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) DeletePayment(ctx context.Context, req *connect.Request[DeletePaymentRequest]) (*connect.Response[DeletePaymentResponse], error) {
	return c.deletePayment.CallUnary(ctx, req)
}
