package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/services/events/handler/http"
)

// Handler coordinates the events HTTP handlers
type Handler struct {
	eventsHandler *http.EventsHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(eventsHandler *http.EventsHandler) *Handler {
	return &Handler{
		eventsHandler: eventsHandler,
	}
}

// RegisterRoutes registers the event ingest route
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/e", h.eventsHandler.Ingest)
}
