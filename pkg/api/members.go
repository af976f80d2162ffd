package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// MemberServiceHandler is the server side of MemberService.
//
// MemberService manages fund members.
type MemberServiceHandler interface {
	ListMembers(context.Context, *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error)
	GetMember(context.Context, *connect.Request[GetMemberRequest]) (*connect.Response[GetMemberResponse], error)
	CreateMember(context.Context, *connect.Request[CreateMemberRequest]) (*connect.Response[CreateMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[DeleteMemberRequest]) (*connect.Response[DeleteMemberResponse], error)
}

// NewMemberServiceHandler builds an HTTP handler for every MemberService procedure and
// returns the path prefix to mount it on.
func NewMemberServiceHandler(svc MemberServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(MemberServiceListMembersProcedure, connect.NewUnaryHandler(MemberServiceListMembersProcedure, svc.ListMembers, handlerOptions(opts, readOnly)...))
	mux.Handle(MemberServiceGetMemberProcedure, connect.NewUnaryHandler(MemberServiceGetMemberProcedure, svc.GetMember, handlerOptions(opts, readOnly)...))
	mux.Handle(MemberServiceCreateMemberProcedure, connect.NewUnaryHandler(MemberServiceCreateMemberProcedure, svc.CreateMember, handlerOptions(opts)...))
	mux.Handle(MemberServiceUpdateMemberProcedure, connect.NewUnaryHandler(MemberServiceUpdateMemberProcedure, svc.UpdateMember, handlerOptions(opts)...))
	mux.Handle(MemberServiceDeleteMemberProcedure, connect.NewUnaryHandler(MemberServiceDeleteMemberProcedure, svc.DeleteMember, handlerOptions(opts)...))
	return "/" + MemberServiceName + "/", mux
}

// MemberServiceClient is a client for MemberService.
type MemberServiceClient interface {
	ListMembers(context.Context, *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error)
	GetMember(context.Context, *connect.Request[GetMemberRequest]) (*connect.Response[GetMemberResponse], error)
	CreateMember(context.Context, *connect.Request[CreateMemberRequest]) (*connect.Response[CreateMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[DeleteMemberRequest]) (*connect.Response[DeleteMemberResponse], error)
}

type memberServiceClient struct {
	listMembers  *connect.Client[ListMembersRequest, ListMembersResponse]
	getMember    *connect.Client[GetMemberRequest, GetMemberResponse]
	createMember *connect.Client[CreateMemberRequest, CreateMemberResponse]
	updateMember *connect.Client[UpdateMemberRequest, UpdateMemberResponse]
	deleteMember *connect.Client[DeleteMemberRequest, DeleteMemberResponse]
}

// NewMemberServiceClient returns a client for the MemberService served at baseURL.
func NewMemberServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MemberServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &memberServiceClient{
		listMembers:  connect.NewClient[ListMembersRequest, ListMembersResponse](httpClient, baseURL+MemberServiceListMembersProcedure, clientOptions(opts, readOnly)...),
		getMember:    connect.NewClient[GetMemberRequest, GetMemberResponse](httpClient, baseURL+MemberServiceGetMemberProcedure, clientOptions(opts, readOnly)...),
		createMember: connect.NewClient[CreateMemberRequest, CreateMemberResponse](httpClient, baseURL+MemberServiceCreateMemberProcedure, clientOptions(opts)...),
		updateMember: connect.NewClient[UpdateMemberRequest, UpdateMemberResponse](httpClient, baseURL+MemberServiceUpdateMemberProcedure, clientOptions(opts)...),
		deleteMember: connect.NewClient[DeleteMemberRequest, DeleteMemberResponse](httpClient, baseURL+MemberServiceDeleteMemberProcedure, clientOptions(opts)...),
	}
}

func (c *memberServiceClient) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *memberServiceClient) GetMember(ctx context.Context, req *connect.Request[GetMemberRequest]) (*connect.Response[GetMemberResponse], error) {
	return c.getMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) CreateMember(ctx context.Context, req *connect.Request[CreateMemberRequest]) (*connect.Response[CreateMemberResponse], error) {
	return c.createMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) UpdateMember(ctx context.Context, req *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) DeleteMember(ctx context.Context, req *connect.Request[DeleteMemberRequest]) (*connect.Response[DeleteMemberResponse], error) {
	return c.deleteMember.CallUnary(ctx, req)
}
