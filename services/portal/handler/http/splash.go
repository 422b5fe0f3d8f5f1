package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/portal"
)

// SplashHandler serves published splash pages
type SplashHandler struct {
	portalUC portal.PortalUC
}

// NewSplashHandler creates a new splash handler
func NewSplashHandler(portalUC portal.PortalUC) *SplashHandler {
	return &SplashHandler{
		portalUC: portalUC,
	}
}

// PathIDs reads the :tenant_id and :site_id path parameters
func PathIDs(c echo.Context) (tenantID, siteID int64, ok bool) {
	tenantID, err := strconv.ParseInt(c.Param("tenant_id"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	siteID, err = strconv.ParseInt(c.Param("site_id"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return tenantID, siteID, true
}

// Splash handles GET /p/:tenant_id/:site_id
func (h *SplashHandler) Splash(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Portal.Splash")

	tenantID, siteID, ok := PathIDs(c)
	if !ok {
		return utils.NotFoundResponse(c, "")
	}

	page, err := h.portalUC.Splash(c.Request().Context(), tenantID, siteID)
	if err != nil {
		status, _ := utils.DomainErrorStatus(err)
		if status >= http.StatusInternalServerError {
			return domainError(c, "Splash", err)
		}
		return utils.NotFoundResponse(c, "Page not found")
	}
	return c.HTML(http.StatusOK, page.HTML)
}
