package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

// RoleService grants, changes and revokes event roles and records every
// change in the audit trail.
type RoleService struct {
	events ports.EventRepository
	users  ports.UserRepository
	roles  ports.EventRoleRepository
	audit  ports.RoleAuditRepository
	log    zerolog.Logger
}

func NewRoleService(
	events ports.EventRepository,
	users ports.UserRepository,
	roles ports.EventRoleRepository,
	audit ports.RoleAuditRepository,
	log zerolog.Logger,
) *RoleService {
	return &RoleService{events: events, users: users, roles: roles, audit: audit, log: log}
}

// GrantEventRole assigns a role to a user who holds none for the event yet.
func (s *RoleService) GrantEventRole(ctx context.Context, in ports.EventRoleChange) (*domain.EventRole, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("grant event role: %w", domain.ErrInvalidRole)
	}
	if err := s.checkTargets(ctx, in.EventID, in.UserID); err != nil {
		return nil, fmt.Errorf("grant event role: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.roles.Insert(ctx, &domain.EventRole{
		EventID:   in.EventID,
		UserID:    in.UserID,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("grant event role: %w", err)
	}

	s.record(ctx, in, domain.AuditGranted, "")
	return created, nil
}

// ChangeEventRole replaces the role of an existing assignment.
func (s *RoleService) ChangeEventRole(ctx context.Context, in ports.EventRoleChange) (*domain.EventRole, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("change event role: %w", domain.ErrInvalidRole)
	}
	if err := s.checkTargets(ctx, in.EventID, in.UserID); err != nil {
		return nil, fmt.Errorf("change event role: %w", err)
	}

	previous, err := s.roles.Find(ctx, in.EventID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("change event role: %w", err)
	}
	if previous.Role == in.Role {
		return previous, nil
	}

	updated, err := s.roles.UpdateRole(ctx, in.EventID, in.UserID, in.Role)
	if err != nil {
		return nil, fmt.Errorf("change event role: %w", err)
	}

	s.record(ctx, in, domain.AuditChanged, previous.Role)
	return updated, nil
}

// RevokeEventRole removes the user's assignment for the event. Revocation is
// allowed on archived events.
func (s *RoleService) RevokeEventRole(ctx context.Context, in ports.EventRoleChange) error {
	previous, err := s.roles.Find(ctx, in.EventID, in.UserID)
	if err != nil {
		return fmt.Errorf("revoke event role: %w", err)
	}
	if err := s.roles.Delete(ctx, in.EventID, in.UserID); err != nil {
		return fmt.Errorf("revoke event role: %w", err)
	}

	in.Role = previous.Role
	s.record(ctx, in, domain.AuditRevoked, previous.Role)
	return nil
}

func (s *RoleService) ListEventRoles(ctx context.Context, eventID string) ([]*domain.EventRole, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("list event roles: %w", err)
	}
	roles, err := s.roles.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event roles: %w", err)
	}
	return roles, nil
}

// checkTargets verifies the event accepts assignments and the user exists.
func (s *RoleService) checkTargets(ctx context.Context, eventID, userID string) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status == domain.EventArchived {
		return domain.ErrEventArchived
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return nil
}

// record appends to the audit trail. Failures are logged, never returned.
func (s *RoleService) record(ctx context.Context, in ports.EventRoleChange, action domain.RoleAuditAction, previous domain.EventRoleType) {
	entry := &domain.RoleAuditEntry{
		EventID:      in.EventID,
		UserID:       in.UserID,
		Action:       action,
		Role:         in.Role,
		PreviousRole: previous,
		ActorEmail:   domain.NormalizeEmail(in.Actor.Email),
		Timestamp:    time.Now().UTC(),
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		s.log.Warn().Err(err).
			Str("event_id", in.EventID).
			Str("user_id", in.UserID).
			Str("action", string(action)).
			Msg("failed to insert role audit entry")
	}

	s.log.Info().
		Str("event_id", in.EventID).
		Str("user_id", in.UserID).
		Str("action", string(action)).
		Str("role", string(in.Role)).
		Str("actor", entry.ActorEmail).
		Msg("event role updated")
}
