package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/azizulsheikh/studio/internal/fund"
	"github.com/azizulsheikh/studio/pkg/api"
)

// MemberService implements the Connect MemberService.
type MemberService struct {
	fund *fund.Service
}

var _ api.MemberServiceHandler = (*MemberService)(nil)

// NewMemberService creates a new MemberService backed by the fund service.
func NewMemberService(f *fund.Service) *MemberService {
	return &MemberService{fund: f}
}

// ListMembers returns every member.
func (s *MemberService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	slog.Info("ListMembers request received")

	members, err := s.fund.ListMembers(ctx)
	if err != nil {
		return nil, toConnectError("ListMembers", err)
	}

	slog.Info("ListMembers successful", "count", len(members))
	return connect.NewResponse(&api.ListMembersResponse{Members: members}), nil
}

// GetMember retrieves a member by ID.
func (s *MemberService) GetMember(ctx context.Context, req *connect.Request[api.GetMemberRequest]) (*connect.Response[api.GetMemberResponse], error) {
	slog.Info("GetMember request received", "member_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	member, err := s.fund.GetMember(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("GetMember", err)
	}

	return connect.NewResponse(&api.GetMemberResponse{Member: member}), nil
}

// CreateMember adds a member.
func (s *MemberService) CreateMember(ctx context.Context, req *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error) {
	slog.Info("CreateMember request received", "role", req.Msg.Role)

	member, err := s.fund.CreateMember(ctx, req.Msg.MemberFields)
	if err != nil {
		return nil, toConnectError("CreateMember", err)
	}

	return connect.NewResponse(&api.CreateMemberResponse{Member: member}), nil
}

// UpdateMember edits a member's fields.
func (s *MemberService) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	slog.Info("UpdateMember request received", "member_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	member, err := s.fund.UpdateMember(ctx, req.Msg.ID, req.Msg.MemberFields)
	if err != nil {
		return nil, toConnectError("UpdateMember", err)
	}

	return connect.NewResponse(&api.UpdateMemberResponse{Member: member}), nil
}

// DeleteMember removes a member and all of their payments.
func (s *MemberService) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	slog.Info("DeleteMember request received", "member_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	removed, err := s.fund.DeleteMember(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("DeleteMember", err)
	}

	return connect.NewResponse(&api.DeleteMemberResponse{PaymentsRemoved: removed}), nil
}
