package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

type userService struct {
	users  ports.UserRepository
	events ports.EventRepository
	roles  ports.EventRoleRepository
	log    zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(
	users ports.UserRepository,
	events ports.EventRepository,
	roles ports.EventRoleRepository,
	log zerolog.Logger,
) ports.UserService {
	return &userService{users: users, events: events, roles: roles, log: log}
}

func (s *userService) Me(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if !id.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(id.Email))
	if err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	return user, nil
}

// MyEvents joins the caller's event roles with their events. Archived events
// and roles whose event no longer exists are left out.
func (s *userService) MyEvents(ctx context.Context, id domain.Identity) ([]ports.MyEvent, error) {
	user, err := s.Me(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return []ports.MyEvent{}, nil
		}
		return nil, err
	}

	roles, err := s.roles.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("my events: %w", err)
	}
	if len(roles) == 0 {
		return []ports.MyEvent{}, nil
	}

	ids := make([]string, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.EventID)
	}
	events, err := s.events.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("my events: %w", err)
	}
	byID := make(map[string]*domain.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	out := make([]ports.MyEvent, 0, len(roles))
	for _, r := range roles {
		e, ok := byID[r.EventID]
		if !ok || e.Status == domain.EventArchived {
			continue
		}
		out = append(out, ports.MyEvent{Event: e, Role: r.Role})
	}
	return out, nil
}

func (s *userService) SetGlobalRole(ctx context.Context, userID string, role domain.GlobalRole) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("set global role: %w", domain.ErrInvalidRole)
	}
	user, err := s.users.SetRole(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("set global role: %w", err)
	}
	s.log.Info().Str("user_id", userID).Str("role", string(role)).Msg("global role changed")
	return user, nil
}

// DeleteUser removes the user's event roles first so no assignment outlives
// its user.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	removed, err := s.roles.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", userID).Int64("event_roles_removed", removed).Msg("user deleted")
	return nil
}
