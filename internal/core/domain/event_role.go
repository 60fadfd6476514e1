package domain

import "time"

// EventRoleType is a permission level scoped to a single event.
type EventRoleType string

const (
	EventRoleJuryAdmin             EventRoleType = "jury_admin"
	EventRoleJuryMember            EventRoleType = "jury_member"
	EventRoleRegistrationCommittee EventRoleType = "registration_committee"
	EventRoleFoodCommittee         EventRoleType = "food_committee"
	EventRoleLogisticsCommittee    EventRoleType = "logistics_committee"
)

// AllEventRoles lists every event role, in display order.
var AllEventRoles = []EventRoleType{
	EventRoleJuryAdmin,
	EventRoleJuryMember,
	EventRoleRegistrationCommittee,
	EventRoleFoodCommittee,
	EventRoleLogisticsCommittee,
}

// Valid reports whether r is a known event role.
func (r EventRoleType) Valid() bool {
	for _, known := range AllEventRoles {
		if r == known {
			return true
		}
	}
	return false
}

// EventRole assigns one role to one user for one event.
// At most one EventRole exists per (EventID, UserID).
type EventRole struct {
	ID        string        `json:"id"`
	EventID   string        `json:"event_id"`
	UserID    string        `json:"user_id"`
	Role      EventRoleType `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// RoleAuditAction names the kind of change recorded in the role audit trail.
type RoleAuditAction string

const (
	AuditGranted RoleAuditAction = "granted"
	AuditChanged RoleAuditAction = "changed"
	AuditRevoked RoleAuditAction = "revoked"
)

// RoleAuditEntry records a single change to an event role assignment.
type RoleAuditEntry struct {
	EventID      string
	UserID       string
	Action       RoleAuditAction
	Role         EventRoleType
	PreviousRole EventRoleType // empty on grant
	ActorEmail   string
	Timestamp    time.Time
}
