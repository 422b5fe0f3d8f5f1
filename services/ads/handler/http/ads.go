package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/ads"
)

// AdsHandler serves ad decisions to portal pages
type AdsHandler struct {
	adsUC ads.AdsUC
}

// NewAdsHandler creates a new ads handler
func NewAdsHandler(adsUC ads.AdsUC) *AdsHandler {
	return &AdsHandler{
		adsUC: adsUC,
	}
}

// Serve handles GET /p/:tenant_id/:site_id/ads
func (h *AdsHandler) Serve(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ads.Serve")

	var req models.AdRequest
	if err := c.Bind(&req); err != nil {
		// non-numeric path ids
		return utils.PortalErrorResponse(c, http.StatusNotFound, "not_found")
	}
	nrpkg.AddTransactionAttribute(txn, "slot", req.Slot)

	resp, err := h.adsUC.Serve(c.Request().Context(), &req)
	if err != nil {
		status, _ := utils.DomainErrorStatus(err)
		if status >= http.StatusInternalServerError {
			nrpkg.NoticeTransactionError(txn, err)
			logger.ErrorCtx(c.Request().Context(), "Ad decision failed",
				logger.Int64("tenant_id", req.TenantID),
				logger.Int64("site_id", req.SiteID),
				logger.Err(err))
		}
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
