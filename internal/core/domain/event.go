package domain

import "time"

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventDraft    EventStatus = "draft"
	EventActive   EventStatus = "active"
	EventArchived EventStatus = "archived"
)

// validTransitions defines the allowed lifecycle transitions. Archived is terminal.
var validTransitions = map[EventStatus][]EventStatus{
	EventDraft:  {EventActive, EventArchived},
	EventActive: {EventArchived},
}

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventDraft, EventActive, EventArchived:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Event is the scoping entity every event role belongs to.
type Event struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Status    EventStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
