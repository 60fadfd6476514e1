package ports

import (
	"context"

	"github.com/eventportal/access-service/internal/core/domain"
)

// UpsertUserInput carries the fields written by a lazy sync. Role is only
// applied when the upsert inserts a new document.
type UpsertUserInput struct {
	Email     string // normalized
	Name      string
	AvatarURL string
	Role      domain.GlobalRole
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpsertByEmail inserts the user if no document has the email yet, and
	// otherwise refreshes name and avatar. It never changes an existing role.
	// created reports whether a new document was inserted.
	UpsertByEmail(ctx context.Context, in UpsertUserInput) (user *domain.User, created bool, err error)
	SetRole(ctx context.Context, id string, role domain.GlobalRole) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
