package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

// UserHandler handles user administration routes.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// SetRole handles PUT /v1/users/:user_id/role.
//
// @Summary      Set a user's global role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        user_id  path      string                true  "User ID"
// @Param        body     body      setGlobalRoleRequest  true  "Global role"
// @Success      200      {object}  userResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /v1/users/{user_id}/role [put]
func (h *UserHandler) SetRole(c echo.Context) error {
	var req setGlobalRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.users.SetGlobalRole(c.Request().Context(), c.Param("user_id"), domain.GlobalRole(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Delete handles DELETE /v1/users/:user_id. The user's event roles go with it.
//
// @Summary      Delete a user
// @Tags         users
// @Security     SessionAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{user_id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.DeleteUser(c.Request().Context(), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
