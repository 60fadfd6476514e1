package ports

import (
	"context"

	"github.com/eventportal/access-service/internal/core/domain"
)

// EventService defines use-case operations for event administration.
type EventService interface {
	CreateEvent(ctx context.Context, name string) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	ChangeEventStatus(ctx context.Context, id string, next domain.EventStatus) (*domain.Event, error)
}
