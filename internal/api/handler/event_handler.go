package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

// EventHandler handles event lifecycle routes.
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// Create handles POST /v1/events. New events start as draft.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        body  body      createEventRequest  true  "Event"
// @Success      201   {object}  eventResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.events.CreateEvent(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEventResponse(event))
}

// List handles GET /v1/events?status=.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     SessionAuth
// @Param        status  query     string  false  "Filter by status"  Enums(draft, active, archived)
// @Success      200     {object}  eventListResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	status := domain.EventStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "status must be one of: draft active archived")
	}

	events, err := h.events.ListEvents(c.Request().Context(), status)
	if err != nil {
		return err
	}

	items := make([]eventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, toEventResponse(e))
	}
	return c.JSON(http.StatusOK, eventListResponse{Items: items, Total: len(items)})
}

// Get handles GET /v1/events/:event_id.
//
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Security     SessionAuth
// @Param        event_id  path      string  true  "Event ID"
// @Success      200       {object}  eventResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/events/{event_id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.events.GetEvent(c.Request().Context(), c.Param("event_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventResponse(event))
}

// ChangeStatus handles PATCH /v1/events/:event_id/status.
//
// @Summary      Change event status
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        event_id  path      string                    true  "Event ID"
// @Param        body      body      changeEventStatusRequest  true  "Next status"
// @Success      200       {object}  eventResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/events/{event_id}/status [patch]
func (h *EventHandler) ChangeStatus(c echo.Context) error {
	var req changeEventStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.events.ChangeEventStatus(c.Request().Context(), c.Param("event_id"), domain.EventStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventResponse(event))
}
