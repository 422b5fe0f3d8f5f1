package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/middleware"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/services/portal/handler/http"
)

// Handler coordinates the portal's HTTP handlers
type Handler struct {
	authHandler   *http.AuthHandler
	vendorHandler *http.VendorHandler
	splashHandler *http.SplashHandler
	adminHandler  *http.AdminHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	vendorHandler *http.VendorHandler,
	splashHandler *http.SplashHandler,
	adminHandler *http.AdminHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:   authHandler,
		vendorHandler: vendorHandler,
		splashHandler: splashHandler,
		adminHandler:  adminHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the portal routes. authLimiter throttles the
// public auth endpoints and may be nil.
func (h *Handler) RegisterRoutes(e *echo.Echo, authLimiter echo.MiddlewareFunc) {
	e.GET("/p/:tenant_id/:site_id", h.splashHandler.Splash)

	var authMiddleware []echo.MiddlewareFunc
	if authLimiter != nil {
		authMiddleware = append(authMiddleware, authLimiter)
	}
	authGroup := e.Group("/auth", authMiddleware...)
	authGroup.POST("/clickthrough", h.authHandler.Clickthrough)
	authGroup.POST("/email-otp", h.authHandler.IssueOTP)
	authGroup.POST("/email-otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/voucher", h.authHandler.RedeemVoucher)

	// Guest token protected
	e.GET("/auth/session", h.authHandler.GetSession, middleware.GuestJWTMiddleware(h.cfg.JWT))

	adminKey := middleware.ValidateAPIKey(h.cfg.Admin.APIKey)

	ruckusGroup := e.Group("/ruckus")
	ruckusGroup.POST("/wispr/login", h.vendorHandler.WISPrLogin)
	ruckusGroup.POST("/coa", h.vendorHandler.CoA, adminKey)

	internalGroup := e.Group("/internal", adminKey)
	internalGroup.POST("/tenants/:tenant_id/vouchers", h.adminHandler.GenerateVouchers)
}
