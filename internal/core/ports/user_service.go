package ports

import (
	"context"

	"github.com/eventportal/access-service/internal/core/domain"
)

// MyEvent is one entry of the caller's active-event view.
type MyEvent struct {
	Event *domain.Event
	Role  domain.EventRoleType
}

// UserService covers self views and user administration.
type UserService interface {
	Me(ctx context.Context, id domain.Identity) (*domain.User, error)
	// MyEvents lists the caller's event roles, excluding archived events.
	MyEvents(ctx context.Context, id domain.Identity) ([]MyEvent, error)
	SetGlobalRole(ctx context.Context, userID string, role domain.GlobalRole) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
