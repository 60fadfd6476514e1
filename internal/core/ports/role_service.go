package ports

import (
	"context"

	"github.com/eventportal/access-service/internal/core/domain"
)

// EventRoleChange carries one grant, change or revoke request.
type EventRoleChange struct {
	Actor   domain.Identity
	EventID string
	UserID  string
	Role    domain.EventRoleType // ignored on revoke
}

// RoleService manages event role assignments.
type RoleService interface {
	GrantEventRole(ctx context.Context, in EventRoleChange) (*domain.EventRole, error)
	ChangeEventRole(ctx context.Context, in EventRoleChange) (*domain.EventRole, error)
	RevokeEventRole(ctx context.Context, in EventRoleChange) error
	ListEventRoles(ctx context.Context, eventID string) ([]*domain.EventRole, error)
}
