package domain

import "fmt"

// DenyReason says why an authorization check failed.
type DenyReason string

const (
	DenyNotAuthenticated DenyReason = "not_authenticated"
	DenyNoEventRole      DenyReason = "no_event_role"
	DenyRoleInsufficient DenyReason = "role_insufficient"
)

// Decision is the outcome of an authorization check. When Allowed is true,
// GlobalRole and (for event checks without a super_admin bypass) EventRole
// describe the capability that granted access.
type Decision struct {
	Allowed    bool
	Reason     DenyReason
	GlobalRole GlobalRole
	EventID    string
	EventRole  EventRoleType
}

// Allow builds an allowed decision.
func Allow(global GlobalRole, eventID string, eventRole EventRoleType) Decision {
	return Decision{Allowed: true, GlobalRole: global, EventID: eventID, EventRole: eventRole}
}

// Deny builds a denied decision.
func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// Err converts a denied decision into ErrNotAuthenticated or a wrapped
// ErrForbidden. It returns nil when the decision is allowed.
func (d Decision) Err() error {
	switch {
	case d.Allowed:
		return nil
	case d.Reason == DenyNotAuthenticated:
		return ErrNotAuthenticated
	default:
		return fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}
}
