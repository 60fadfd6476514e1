package ports

import (
	"context"

	"github.com/eventportal/access-service/internal/core/domain"
)

// EventRoleRepository persists event role assignments. Implementations must
// reject a second row for the same (event, user) with domain.ErrEventRoleExists.
type EventRoleRepository interface {
	Find(ctx context.Context, eventID, userID string) (*domain.EventRole, error)
	Insert(ctx context.Context, r *domain.EventRole) (*domain.EventRole, error)
	UpdateRole(ctx context.Context, eventID, userID string, role domain.EventRoleType) (*domain.EventRole, error)
	Delete(ctx context.Context, eventID, userID string) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventRole, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.EventRole, error)
	// DeleteByUser removes every assignment held by the user and returns how many were removed.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// RoleAuditRepository appends entries to the role audit trail.
type RoleAuditRepository interface {
	Insert(ctx context.Context, entry *domain.RoleAuditEntry) error
}
