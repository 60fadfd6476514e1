package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventportal/access-service/internal/core/domain"
)

func TestEventService_CreateEvent_StartsAsDraft(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, zerolog.Nop())

	e, err := svc.CreateEvent(context.Background(), "  Spring Hackathon ")
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if e.Status != domain.EventDraft || e.Name != "Spring Hackathon" || e.ID == "" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestEventService_CreateEvent_EmptyName(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), zerolog.Nop())
	if _, err := svc.CreateEvent(context.Background(), "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEventService_ChangeEventStatus(t *testing.T) {
	tests := []struct {
		from    domain.EventStatus
		to      domain.EventStatus
		wantErr error
	}{
		{domain.EventDraft, domain.EventActive, nil},
		{domain.EventDraft, domain.EventArchived, nil},
		{domain.EventActive, domain.EventArchived, nil},
		{domain.EventActive, domain.EventDraft, domain.ErrInvalidTransition},
		{domain.EventArchived, domain.EventActive, domain.ErrInvalidTransition},
		{domain.EventDraft, domain.EventDraft, domain.ErrInvalidTransition},
	}
	for _, tc := range tests {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			repo := newStubEventRepo()
			repo.seed("event_1", tc.from)
			svc := NewEventService(repo, zerolog.Nop())

			e, err := svc.ChangeEventStatus(context.Background(), "event_1", tc.to)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if repo.byID["event_1"].Status != tc.from {
					t.Fatalf("status must not change on rejected transition")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.Status != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, e.Status)
			}
		})
	}
}

func TestEventService_ChangeEventStatus_NotFound(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), zerolog.Nop())
	if _, err := svc.ChangeEventStatus(context.Background(), "nope", domain.EventActive); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventService_ListEvents(t *testing.T) {
	repo := newStubEventRepo()
	repo.seed("event_1", domain.EventActive)
	repo.seed("event_2", domain.EventArchived)
	svc := NewEventService(repo, zerolog.Nop())
	ctx := context.Background()

	all, err := svc.ListEvents(ctx, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 events, got %d (%v)", len(all), err)
	}
	active, err := svc.ListEvents(ctx, domain.EventActive)
	if err != nil || len(active) != 1 || active[0].ID != "event_1" {
		t.Fatalf("unexpected active list: %+v (%v)", active, err)
	}
	if _, err := svc.ListEvents(ctx, "closed"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}
