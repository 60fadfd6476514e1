package ports

import (
	"context"

	"github.com/eventportal/access-service/internal/core/domain"
)

// AuthzService resolves and checks the capabilities of an identity.
// Every check is a pure read; only SyncUser writes.
type AuthzService interface {
	ResolveGlobalRole(ctx context.Context, id domain.Identity) (domain.GlobalRole, bool, error)
	ResolveEventRole(ctx context.Context, id domain.Identity, eventID string) (domain.EventRoleType, bool, error)
	Authorize(ctx context.Context, id domain.Identity, eventID string, allowed ...domain.EventRoleType) (domain.Decision, error)
	AuthorizeGlobal(ctx context.Context, id domain.Identity, allowed ...domain.GlobalRole) (domain.Decision, error)
	SyncUser(ctx context.Context, id domain.Identity) (*domain.User, error)
}
