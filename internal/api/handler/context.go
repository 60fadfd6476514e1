package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/eventportal/access-service/internal/core/domain"
)

// ctxIdentity returns the session identity threaded by the Authenticate
// middleware. Its absence is always reported as not authenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := domain.IdentityFromContext(c.Request().Context())
	if !ok {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}
	return id, nil
}

// ctxUser returns the user synced by RequireSession, or nil on routes
// mounted outside it.
func ctxUser(c echo.Context) *domain.User {
	user, _ := c.Get("user").(*domain.User)
	return user
}
