package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/azizulsheikh/studio/internal/audit"
	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/pkg/api"
)

// AuditService implements the Connect AuditService.
type AuditService struct {
	events audit.Logger
}

var _ api.AuditServiceHandler = (*AuditService)(nil)

// NewAuditService creates a new AuditService reading from events.
func NewAuditService(events audit.Logger) *AuditService {
	return &AuditService{events: events}
}

// ListEvents returns recorded mutation events, newest first.
func (s *AuditService) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	slog.Info("ListEvents request received", "type", req.Msg.Type, "limit", req.Msg.Limit)

	if req.Msg.Limit < 0 {
		return nil, toConnectError("ListEvents", models.NewValidationError("limit", "Limit must not be negative."))
	}

	events, err := s.events.ListEvents(ctx, audit.Filter{Type: req.Msg.Type, Limit: req.Msg.Limit})
	if err != nil {
		return nil, toConnectError("ListEvents", err)
	}

	slog.Info("ListEvents successful", "count", len(events))
	return connect.NewResponse(&api.ListEventsResponse{Events: events}), nil
}
