package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// AuditServiceHandler is the server side of AuditService.
//
// AuditService exposes the mutation audit trail.
type AuditServiceHandler interface {
	ListEvents(context.Context, *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error)
}

// NewAuditServiceHandler builds an HTTP handler for every AuditService procedure and
// returns the path prefix to mount it on.
func NewAuditServiceHandler(svc AuditServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(AuditServiceListEventsProcedure, connect.NewUnaryHandler(AuditServiceListEventsProcedure, svc.ListEvents, handlerOptions(opts, readOnly)...))
	return "/" + AuditServiceName + "/", mux
}

// AuditServiceClient is a client for AuditService.
type AuditServiceClient interface {
	ListEvents(context.Context, *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error)
}

type auditServiceClient struct {
	listEvents *connect.Client[ListEventsRequest, ListEventsResponse]
}

// NewAuditServiceClient returns a client for the AuditService served at baseURL.
func NewAuditServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuditServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &auditServiceClient{
		listEvents: connect.NewClient[ListEventsRequest, ListEventsResponse](httpClient, baseURL+AuditServiceListEventsProcedure, clientOptions(opts, readOnly)...),
	}
}

func (c *auditServiceClient) ListEvents(ctx context.Context, req *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}
