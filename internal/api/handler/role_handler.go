package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventportal/access-service/internal/api/metrics"
	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

// RoleHandler handles event role assignment routes.
type RoleHandler struct {
	roles ports.RoleService
}

func NewRoleHandler(roles ports.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// List handles GET /v1/events/:event_id/roles.
//
// @Summary      List event roles
// @Tags         roles
// @Produce      json
// @Security     SessionAuth
// @Param        event_id  path      string  true  "Event ID"
// @Success      200       {object}  eventRoleListResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/events/{event_id}/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roles.ListEventRoles(c.Request().Context(), c.Param("event_id"))
	if err != nil {
		return err
	}

	items := make([]eventRoleResponse, 0, len(roles))
	for _, r := range roles {
		items = append(items, toEventRoleResponse(r))
	}
	return c.JSON(http.StatusOK, eventRoleListResponse{Items: items})
}

// Grant handles POST /v1/events/:event_id/roles.
//
// @Summary      Grant an event role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        event_id  path      string                 true  "Event ID"
// @Param        body      body      grantEventRoleRequest  true  "Assignment"
// @Success      201       {object}  eventRoleResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      409       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/events/{event_id}/roles [post]
func (h *RoleHandler) Grant(c echo.Context) error {
	var req grantEventRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	role, err := h.roles.GrantEventRole(c.Request().Context(), ports.EventRoleChange{
		Actor:   actor,
		EventID: c.Param("event_id"),
		UserID:  req.UserID,
		Role:    domain.EventRoleType(req.Role),
	})
	if err != nil {
		return err
	}

	metrics.EventRoleChangesTotal.WithLabelValues(string(domain.AuditGranted)).Inc()
	return c.JSON(http.StatusCreated, toEventRoleResponse(role))
}

// Change handles PATCH /v1/events/:event_id/roles/:user_id.
//
// @Summary      Change an event role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        event_id  path      string                  true  "Event ID"
// @Param        user_id   path      string                  true  "User ID"
// @Param        body      body      changeEventRoleRequest  true  "New role"
// @Success      200       {object}  eventRoleResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      409       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/events/{event_id}/roles/{user_id} [patch]
func (h *RoleHandler) Change(c echo.Context) error {
	var req changeEventRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	role, err := h.roles.ChangeEventRole(c.Request().Context(), ports.EventRoleChange{
		Actor:   actor,
		EventID: c.Param("event_id"),
		UserID:  c.Param("user_id"),
		Role:    domain.EventRoleType(req.Role),
	})
	if err != nil {
		return err
	}

	metrics.EventRoleChangesTotal.WithLabelValues(string(domain.AuditChanged)).Inc()
	return c.JSON(http.StatusOK, toEventRoleResponse(role))
}

// Revoke handles DELETE /v1/events/:event_id/roles/:user_id.
//
// @Summary      Revoke an event role
// @Tags         roles
// @Security     SessionAuth
// @Param        event_id  path  string  true  "Event ID"
// @Param        user_id   path  string  true  "User ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/events/{event_id}/roles/{user_id} [delete]
func (h *RoleHandler) Revoke(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	err = h.roles.RevokeEventRole(c.Request().Context(), ports.EventRoleChange{
		Actor:   actor,
		EventID: c.Param("event_id"),
		UserID:  c.Param("user_id"),
	})
	if err != nil {
		return err
	}

	metrics.EventRoleChangesTotal.WithLabelValues(string(domain.AuditRevoked)).Inc()
	return c.NoContent(http.StatusNoContent)
}
