package domain

import (
	"strings"
	"time"
)

// GlobalRole is the event-independent permission level of a user.
type GlobalRole string

const (
	RoleSuperAdmin GlobalRole = "super_admin"
	RoleUser       GlobalRole = "user"

	// Legacy per-domain admin roles. They gate the old dashboards only and
	// carry no event-scoped capability.
	RoleRegistrationAdmin GlobalRole = "registration_admin"
	RoleFoodAdmin         GlobalRole = "food_admin"
	RoleLogisticsAdmin    GlobalRole = "logistics_admin"
	RoleJuryAdmin         GlobalRole = "jury_admin"
)

// Valid reports whether r is a known global role.
func (r GlobalRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleUser, RoleRegistrationAdmin, RoleFoodAdmin, RoleLogisticsAdmin, RoleJuryAdmin:
		return true
	}
	return false
}

// User models a person that signed in through the identity provider at least once.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Role      GlobalRole `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NormalizeEmail is the canonical form of an email used as the user key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
