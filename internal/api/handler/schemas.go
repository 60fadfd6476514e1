package handler

import (
	"time"

	"github.com/eventportal/access-service/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Events ---

type createEventRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type changeEventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active archived"`
}

type eventResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type eventListResponse struct {
	Items []eventResponse `json:"items"`
	Total int             `json:"total"`
}

// --- Event roles ---

type grantEventRoleRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role"    validate:"required,oneof=jury_admin jury_member registration_committee food_committee logistics_committee"`
}

type changeEventRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=jury_admin jury_member registration_committee food_committee logistics_committee"`
}

type eventRoleResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type eventRoleListResponse struct {
	Items []eventRoleResponse `json:"items"`
}

// --- Users and self views ---

type setGlobalRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=super_admin user registration_admin food_admin logistics_admin jury_admin"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type myEventResponse struct {
	Event eventResponse `json:"event"`
	Role  string        `json:"role"`
}

type myEventsResponse struct {
	Items []myEventResponse `json:"items"`
}

// accessResponse describes the caller's capabilities for one event.
type accessResponse struct {
	EventID    string `json:"event_id"`
	GlobalRole string `json:"global_role,omitempty"`
	EventRole  string `json:"event_role,omitempty"`
	SuperAdmin bool   `json:"super_admin"`
}

// --- Mapping ---

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:        e.ID,
		Name:      e.Name,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEventRoleResponse(r *domain.EventRole) eventRoleResponse {
	return eventRoleResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Role:      string(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
