package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// AuthServiceHandler is the server side of AuthService.
//
// AuthService issues admin session tokens.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	GetSession(context.Context, *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for every AuthService procedure and
// returns the path prefix to mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, handlerOptions(opts)...))
	mux.Handle(AuthServiceGetSessionProcedure, connect.NewUnaryHandler(AuthServiceGetSessionProcedure, svc.GetSession, handlerOptions(opts, readOnly)...))
	return "/" + AuthServiceName + "/", mux
}

// AuthServiceClient is a client for AuthService.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	GetSession(context.Context, *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error)
}

type authServiceClient struct {
	login      *connect.Client[LoginRequest, LoginResponse]
	getSession *connect.Client[GetSessionRequest, GetSessionResponse]
}

// NewAuthServiceClient returns a client for the AuthService served at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &authServiceClient{
		login:      connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, clientOptions(opts)...),
		getSession: connect.NewClient[GetSessionRequest, GetSessionResponse](httpClient, baseURL+AuthServiceGetSessionProcedure, clientOptions(opts, readOnly)...),
	}
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}
