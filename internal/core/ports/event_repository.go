package ports

import (
	"context"

	"github.com/eventportal/access-service/internal/core/domain"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	// FindByIDs returns the events with the given ids; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Event, error)
	// List returns events, filtered by status when status is non-empty.
	List(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)
}
