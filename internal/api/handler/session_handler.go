package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

// SessionHandler serves the caller's own views: profile, events and
// per-event access.
type SessionHandler struct {
	users ports.UserService
	authz ports.AuthzService
}

func NewSessionHandler(users ports.UserService, authz ports.AuthzService) *SessionHandler {
	return &SessionHandler{users: users, authz: authz}
}

// Me handles GET /v1/me.
//
// @Summary      Current user
// @Tags         session
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	if user := ctxUser(c); user != nil {
		return c.JSON(http.StatusOK, userResponse{User: user})
	}

	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.users.Me(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// MyEvents handles GET /v1/me/events: the caller's non-archived events and
// the role held in each.
//
// @Summary      Events of the current user
// @Tags         session
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  myEventsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/events [get]
func (h *SessionHandler) MyEvents(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	events, err := h.users.MyEvents(c.Request().Context(), id)
	if err != nil {
		return err
	}

	items := make([]myEventResponse, 0, len(events))
	for _, me := range events {
		items = append(items, myEventResponse{
			Event: toEventResponse(me.Event),
			Role:  string(me.Role),
		})
	}
	return c.JSON(http.StatusOK, myEventsResponse{Items: items})
}

// Access handles GET /v1/events/:event_id/access. It never denies: a caller
// with no role gets an empty event_role so the UI can hide actions.
//
// @Summary      Caller's access to an event
// @Tags         session
// @Produce      json
// @Security     SessionAuth
// @Param        event_id  path      string  true  "Event ID"
// @Success      200       {object}  accessResponse
// @Failure      401       {object}  errorResponse
// @Router       /v1/events/{event_id}/access [get]
func (h *SessionHandler) Access(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	eventID := c.Param("event_id")

	resp := accessResponse{EventID: eventID}

	global, ok, err := h.authz.ResolveGlobalRole(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		resp.GlobalRole = string(global)
		resp.SuperAdmin = global == domain.RoleSuperAdmin
	}

	role, ok, err := h.authz.ResolveEventRole(ctx, id, eventID)
	if err != nil {
		return err
	}
	if ok {
		resp.EventRole = string(role)
	}

	return c.JSON(http.StatusOK, resp)
}
