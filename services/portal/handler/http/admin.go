package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/portal"
)

// AdminHandler serves operator endpoints behind the admin API key
type AdminHandler struct {
	portalUC portal.PortalUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(portalUC portal.PortalUC) *AdminHandler {
	return &AdminHandler{
		portalUC: portalUC,
	}
}

// GenerateVouchers handles POST /internal/tenants/:tenant_id/vouchers
func (h *AdminHandler) GenerateVouchers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Admin.GenerateVouchers")

	tenantID, err := strconv.ParseInt(c.Param("tenant_id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tenant ID")
	}

	var req models.VoucherBatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vouchers, err := h.portalUC.GenerateVouchers(c.Request().Context(), tenantID, &req)
	if err != nil {
		status, _ := utils.DomainErrorStatus(err)
		switch status {
		case http.StatusBadRequest:
			return utils.BadRequestResponse(c, err.Error())
		case http.StatusNotFound:
			return utils.NotFoundResponse(c, "Tenant not found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to generate vouchers",
			logger.Int64("tenant_id", tenantID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to generate vouchers")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vouchers generated successfully", vouchers)
}
