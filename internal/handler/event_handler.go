package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"webcal/internal/dto"
	"webcal/internal/repository"
	"webcal/internal/service"
)

type EventHandler struct {
	svc    service.EventService
	logger *zap.Logger
}

func NewEventHandler(svc service.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{svc: svc, logger: logger}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
	g.DELETE("", h.DeleteAllEvents)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	// The range filter only applies when both bounds are present.
	var rng *repository.TimeRange
	startRaw := c.QueryParam("startDate")
	endRaw := c.QueryParam("endDate")
	if startRaw != "" && endRaw != "" {
		start, err := time.Parse(time.RFC3339, startRaw)
		if err != nil {
			return h.fail(err, "fetch events")
		}
		end, err := time.Parse(time.RFC3339, endRaw)
		if err != nil {
			return h.fail(err, "fetch events")
		}
		rng = &repository.TimeRange{Start: start.UTC(), End: end.UTC()}
	}

	events, err := h.svc.ListEvents(c.Request().Context(), rng)
	if err != nil {
		return h.fail(err, "fetch events")
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(err, "create event")
	}

	event, err := h.svc.CreateEvent(c.Request().Context(), &req)
	if err != nil {
		return h.fail(err, "create event")
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(err, "update event")
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.fail(err, "update event")
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.svc.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(err, "delete event")
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted"})
}

func (h *EventHandler) DeleteAllEvents(c echo.Context) error {
	if err := h.svc.DeleteAllEvents(c.Request().Context()); err != nil {
		return h.fail(err, "delete events")
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "All events deleted"})
}

// fail maps service errors onto the API's deliberately coarse surface:
// a 404 for a missing id, otherwise a generic 500 naming the attempted
// action. Validation and internal failures are indistinguishable to the
// caller; the details go to the log.
func (h *EventHandler) fail(err error, action string) error {
	if errors.Is(err, service.ErrEventNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	h.logger.Warn("request failed", zap.String("action", action), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "Failed to "+action)
}
