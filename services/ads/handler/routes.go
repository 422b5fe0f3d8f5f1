package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/services/ads/handler/http"
)

// Handler coordinates the ads HTTP handlers
type Handler struct {
	adsHandler *http.AdsHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(adsHandler *http.AdsHandler) *Handler {
	return &Handler{
		adsHandler: adsHandler,
	}
}

// RegisterRoutes registers the ads routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/p/:tenant_id/:site_id/ads", h.adsHandler.Serve)
}
