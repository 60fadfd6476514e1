package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

// SyncTracker abstracts the "recently synced" marker store (Redis).
type SyncTracker interface {
	RecentlySynced(ctx context.Context, email string) (bool, error)
	MarkSynced(ctx context.Context, email string) error
}

type nopTracker struct{}

func (nopTracker) RecentlySynced(context.Context, string) (bool, error) { return false, nil }
func (nopTracker) MarkSynced(context.Context, string) error              { return nil }

// AuthzService resolves global and event-scoped roles and lazily syncs users.
type AuthzService struct {
	users          ports.UserRepository
	roles          ports.EventRoleRepository
	tracker        SyncTracker
	bootstrapAdmin string
	log            zerolog.Logger
}

// NewAuthzService returns an AuthzService. A nil tracker disables the sync
// marker and every SyncUser call upserts.
func NewAuthzService(
	users ports.UserRepository,
	roles ports.EventRoleRepository,
	tracker SyncTracker,
	bootstrapAdminEmail string,
	log zerolog.Logger,
) *AuthzService {
	if tracker == nil {
		tracker = nopTracker{}
	}
	return &AuthzService{
		users:          users,
		roles:          roles,
		tracker:        tracker,
		bootstrapAdmin: domain.NormalizeEmail(bootstrapAdminEmail),
		log:            log,
	}
}

// ResolveGlobalRole returns the global role of the identity's user record.
func (s *AuthzService) ResolveGlobalRole(ctx context.Context, id domain.Identity) (domain.GlobalRole, bool, error) {
	if !id.Authenticated() {
		return "", false, nil
	}
	user, err := s.lookupUser(ctx, id.Email)
	if err != nil {
		return "", false, fmt.Errorf("resolve global role: %w", err)
	}
	if user == nil {
		return "", false, nil
	}
	return user.Role, true, nil
}

// ResolveEventRole returns the identity's role for eventID, if it holds one.
func (s *AuthzService) ResolveEventRole(ctx context.Context, id domain.Identity, eventID string) (domain.EventRoleType, bool, error) {
	if !id.Authenticated() {
		return "", false, nil
	}
	user, err := s.lookupUser(ctx, id.Email)
	if err != nil {
		return "", false, fmt.Errorf("resolve event role: %w", err)
	}
	if user == nil {
		return "", false, nil
	}
	er, err := s.findEventRole(ctx, eventID, user.ID)
	if err != nil {
		return "", false, fmt.Errorf("resolve event role: %w", err)
	}
	if er == nil {
		return "", false, nil
	}
	return er.Role, true, nil
}

// Authorize checks whether the identity may act on eventID. A super_admin is
// always allowed; anyone else needs an event role listed in allowed. An empty
// allowed list admits super_admin only.
func (s *AuthzService) Authorize(ctx context.Context, id domain.Identity, eventID string, allowed ...domain.EventRoleType) (domain.Decision, error) {
	if !id.Authenticated() {
		return domain.Deny(domain.DenyNotAuthenticated), nil
	}

	user, err := s.lookupUser(ctx, id.Email)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("authorize: %w", err)
	}
	if user == nil {
		return domain.Deny(domain.DenyNoEventRole), nil
	}
	if user.Role == domain.RoleSuperAdmin {
		return domain.Allow(user.Role, eventID, ""), nil
	}

	er, err := s.findEventRole(ctx, eventID, user.ID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("authorize: %w", err)
	}
	if er == nil {
		return domain.Deny(domain.DenyNoEventRole), nil
	}
	for _, r := range allowed {
		if er.Role == r {
			return domain.Allow(user.Role, eventID, er.Role), nil
		}
	}
	return domain.Deny(domain.DenyRoleInsufficient), nil
}

// AuthorizeGlobal checks the event-independent axis: super_admin always
// passes, other users need their global role listed in allowed.
func (s *AuthzService) AuthorizeGlobal(ctx context.Context, id domain.Identity, allowed ...domain.GlobalRole) (domain.Decision, error) {
	if !id.Authenticated() {
		return domain.Deny(domain.DenyNotAuthenticated), nil
	}

	user, err := s.lookupUser(ctx, id.Email)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("authorize global: %w", err)
	}
	if user == nil {
		return domain.Deny(domain.DenyRoleInsufficient), nil
	}
	if user.Role == domain.RoleSuperAdmin {
		return domain.Allow(user.Role, "", ""), nil
	}
	for _, r := range allowed {
		if user.Role == r {
			return domain.Allow(user.Role, "", ""), nil
		}
	}
	return domain.Deny(domain.DenyRoleInsufficient), nil
}

// SyncUser makes sure a user record exists for the identity. The write is a
// single upsert keyed by the normalized email; a concurrent insert that wins
// the unique index race is read back instead of retried.
func (s *AuthzService) SyncUser(ctx context.Context, id domain.Identity) (*domain.User, error) {
	email := domain.NormalizeEmail(id.Email)
	if email == "" {
		return nil, domain.ErrNotAuthenticated
	}

	// 1. Recently synced: a read is enough.
	synced, err := s.tracker.RecentlySynced(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("sync marker check failed, upserting anyway")
	} else if synced {
		user, err := s.lookupUser(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("sync user: %w", err)
		}
		if user != nil {
			return user, nil
		}
		// Deleted since the marker was set: fall through and recreate.
	}

	// 2. Conditional insert. Role is only written when the document is new.
	role := domain.RoleUser
	if s.bootstrapAdmin != "" && email == s.bootstrapAdmin {
		role = domain.RoleSuperAdmin
	}
	user, created, err := s.users.UpsertByEmail(ctx, ports.UpsertUserInput{
		Email:     email,
		Name:      id.Name,
		AvatarURL: id.AvatarURL,
		Role:      role,
	})
	if errors.Is(err, domain.ErrUserExists) {
		user, err = s.lookupUser(ctx, email)
		if err == nil && user == nil {
			err = domain.ErrUserNotFound
		}
	}
	if err != nil {
		return nil, fmt.Errorf("sync user: %w", err)
	}

	// 3. Marker failures only cost an extra upsert next time.
	if markErr := s.tracker.MarkSynced(ctx, email); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", email).Msg("failed to set sync marker")
	}

	if created {
		s.log.Info().
			Str("user_id", user.ID).
			Str("email", email).
			Str("role", string(user.Role)).
			Msg("user created on first access")
	}
	return user, nil
}

// lookupUser returns nil, nil when no user has the email.
func (s *AuthzService) lookupUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// findEventRole returns nil, nil when the pair has no assignment.
func (s *AuthzService) findEventRole(ctx context.Context, eventID, userID string) (*domain.EventRole, error) {
	er, err := s.roles.Find(ctx, eventID, userID)
	if errors.Is(err, domain.ErrEventRoleNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return er, nil
}
