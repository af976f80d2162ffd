package fund

import (
	"context"
	"log/slog"

	"github.com/azizulsheikh/studio/internal/audit"
	"github.com/azizulsheikh/studio/internal/models"
)

// ListMembers returns all members in stored order.
func (s *Service) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.store.ListMembers(ctx)
}

// GetMember returns a member or an error wrapping storage.ErrNotFound.
func (s *Service) GetMember(ctx context.Context, id string) (*models.Member, error) {
	return s.store.GetMember(ctx, id)
}

// CreateMember validates fields and stores a new member joined now.
func (s *Service) CreateMember(ctx context.Context, fields models.MemberFields) (*models.Member, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	member := &models.Member{
		ID:       s.newID(),
		Name:     fields.Name,
		Email:    fields.Email,
		Role:     fields.Role,
		JoinDate: s.now(),
		ImageURL: fields.ImageURL,
	}
	if err := s.store.CreateMember(ctx, member); err != nil {
		return nil, err
	}

	s.record(ctx, "members", "create", audit.MemberCreated, member)
	slog.Info("Member created", "member_id", member.ID, "role", member.Role)
	return member, nil
}

// UpdateMember replaces a member's editable fields. JoinDate is kept and an
// empty ImageURL clears the avatar.
func (s *Service) UpdateMember(ctx context.Context, id string, fields models.MemberFields) (*models.Member, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = fields.Name
	updated.Email = fields.Email
	updated.Role = fields.Role
	updated.ImageURL = fields.ImageURL

	if err := s.store.UpdateMember(ctx, &updated); err != nil {
		return nil, err
	}

	s.record(ctx, "members", "update", audit.MemberUpdated, &updated)
	slog.Info("Member updated", "member_id", id)
	return &updated, nil
}

// DeleteMember removes a member together with all of their payments and
// returns how many payments were removed.
func (s *Service) DeleteMember(ctx context.Context, id string) (int, error) {
	removed, err := s.store.DeleteMember(ctx, id)
	if err != nil {
		return 0, err
	}

	s.record(ctx, "members", "delete", audit.MemberDeleted, map[string]any{
		"id":              id,
		"paymentsRemoved": removed,
	})
	slog.Info("Member deleted", "member_id", id, "payments_removed", removed)
	return removed, nil
}
