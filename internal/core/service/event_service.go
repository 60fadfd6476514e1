package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, log: log}
}

// CreateEvent stores a new event in draft status.
func (s *eventService) CreateEvent(ctx context.Context, name string) (*domain.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("create event: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Event{
		Name:      name,
		Status:    domain.EventDraft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info().Str("event_id", created.ID).Str("name", created.Name).Msg("event created")
	return created, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *eventService) ListEvents(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("list events: %w", domain.ErrInvalidInput)
	}
	events, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// ChangeEventStatus moves an event along its lifecycle.
func (s *eventService) ChangeEventStatus(ctx context.Context, id string, next domain.EventStatus) (*domain.Event, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("change event status: %w", err)
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("change event status: %w (from %s to %s)", domain.ErrInvalidTransition, current.Status, next)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("change event status: %w", err)
	}

	s.log.Info().
		Str("event_id", id).
		Str("from", string(current.Status)).
		Str("to", string(next)).
		Msg("event status changed")
	return updated, nil
}
