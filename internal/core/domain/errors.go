package domain

import "errors"

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrForbidden         = errors.New("access forbidden")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrEventNotFound     = errors.New("event not found")
	ErrEventArchived     = errors.New("event is archived")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEventRoleExists   = errors.New("user already holds a role for this event")
	ErrEventRoleNotFound = errors.New("event role not found")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidInput      = errors.New("invalid input")
)
