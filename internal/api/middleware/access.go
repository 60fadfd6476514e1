package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventportal/access-service/internal/api/metrics"
	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

// Access enforces the two permission axes on routes. Identity always comes
// from the request context populated by Authenticate.
type Access struct {
	authz ports.AuthzService
	log   zerolog.Logger
}

func NewAccess(authz ports.AuthzService, log zerolog.Logger) *Access {
	return &Access{authz: authz, log: log}
}

// RequireSession rejects requests without an identity and lazily syncs the
// user record. A failed sync is logged and the request is treated as
// unauthenticated for this attempt. The synced user is stored under "user".
func (a *Access) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			id, ok := domain.IdentityFromContext(ctx)
			if !ok {
				metrics.AuthzDecisionsTotal.WithLabelValues("session", "denied", string(domain.DenyNotAuthenticated)).Inc()
				return domain.ErrNotAuthenticated
			}

			user, err := a.authz.SyncUser(ctx, id)
			if err != nil {
				metrics.UserSyncTotal.WithLabelValues("failed").Inc()
				metrics.AuthzErrorsTotal.WithLabelValues("sync").Inc()
				a.log.Error().Err(err).
					Str("email", domain.NormalizeEmail(id.Email)).
					Str("path", c.Path()).
					Msg("user sync failed, treating request as unauthenticated")
				return domain.ErrNotAuthenticated
			}
			metrics.UserSyncTotal.WithLabelValues("ok").Inc()

			c.Set("user", user)
			return next(c)
		}
	}
}

// RequireEventRole admits super_admins and users whose role for the
// :event_id path parameter is one of roles. The decision is stored under
// "authz_decision".
func (a *Access) RequireEventRole(roles ...domain.EventRoleType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			id, _ := domain.IdentityFromContext(ctx)
			eventID := c.Param("event_id")

			d, err := a.authz.Authorize(ctx, id, eventID, roles...)
			if err != nil {
				metrics.AuthzErrorsTotal.WithLabelValues("event").Inc()
				return fmt.Errorf("authorize event %s: %w", eventID, err)
			}
			return a.admit(c, next, "event", d)
		}
	}
}

// RequireGlobalRole admits super_admins and users whose global role is one of roles.
func (a *Access) RequireGlobalRole(roles ...domain.GlobalRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			id, _ := domain.IdentityFromContext(ctx)

			d, err := a.authz.AuthorizeGlobal(ctx, id, roles...)
			if err != nil {
				metrics.AuthzErrorsTotal.WithLabelValues("global").Inc()
				return fmt.Errorf("authorize global: %w", err)
			}
			return a.admit(c, next, "global", d)
		}
	}
}

func (a *Access) admit(c echo.Context, next echo.HandlerFunc, axis string, d domain.Decision) error {
	if err := d.Err(); err != nil {
		metrics.AuthzDecisionsTotal.WithLabelValues(axis, "denied", string(d.Reason)).Inc()
		a.log.Debug().
			Str("axis", axis).
			Str("reason", string(d.Reason)).
			Str("path", c.Path()).
			Msg("access denied")
		return err
	}
	metrics.AuthzDecisionsTotal.WithLabelValues(axis, "allowed", "").Inc()
	c.Set("authz_decision", d)
	return next(c)
}
