package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/constants"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/portal"
)

// AuthHandler serves the guest auth endpoints
type AuthHandler struct {
	portalUC portal.PortalUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(portalUC portal.PortalUC) *AuthHandler {
	return &AuthHandler{
		portalUC: portalUC,
	}
}

func invalidRequest(c echo.Context, endpoint string, err error) error {
	logger.Warn("Invalid request payload",
		logger.Err(err),
		logger.String("endpoint", endpoint))
	return utils.PortalErrorResponse(c, http.StatusBadRequest, "invalid_request")
}

// domainError reports err on the transaction and writes the portal error body
func domainError(c echo.Context, endpoint string, err error) error {
	status, code := utils.DomainErrorStatus(err)
	if status >= http.StatusInternalServerError {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		logger.ErrorCtx(c.Request().Context(), "Request failed",
			logger.String("endpoint", endpoint),
			logger.Err(err))
	}
	return utils.PortalErrorResponse(c, status, code)
}

// Clickthrough handles POST /auth/clickthrough
func (h *AuthHandler) Clickthrough(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.Clickthrough")

	var req models.ClickthroughRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, "Clickthrough", err)
	}
	req.IP = c.RealIP()
	nrpkg.AddTransactionAttribute(txn, "tenant_id", req.TenantID)

	seed, err := h.portalUC.Clickthrough(c.Request().Context(), &req)
	if err != nil {
		return domainError(c, "Clickthrough", err)
	}
	return c.JSON(http.StatusOK, models.NewAdmissionResponse(seed))
}

// IssueOTP handles POST /auth/email-otp
func (h *AuthHandler) IssueOTP(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.IssueOTP")

	var req models.OTPIssueRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, "IssueOTP", err)
	}
	nrpkg.AddTransactionAttribute(txn, "tenant_id", req.TenantID)

	result, err := h.portalUC.IssueOTP(c.Request().Context(), &req)
	if err != nil {
		return domainError(c, "IssueOTP", err)
	}
	return c.JSON(http.StatusOK, models.OTPIssueResponse{OK: true, OTPIssueResult: result})
}

// VerifyOTP handles POST /auth/email-otp/verify
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.VerifyOTP")

	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, "VerifyOTP", err)
	}
	req.IP = c.RealIP()
	nrpkg.AddTransactionAttribute(txn, "tenant_id", req.TenantID)

	seed, err := h.portalUC.VerifyOTP(c.Request().Context(), &req)
	if err != nil {
		return domainError(c, "VerifyOTP", err)
	}
	return c.JSON(http.StatusOK, models.NewAdmissionResponse(seed))
}

// RedeemVoucher handles POST /auth/voucher
func (h *AuthHandler) RedeemVoucher(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.RedeemVoucher")

	var req models.VoucherRedeemRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, "RedeemVoucher", err)
	}
	req.IP = c.RealIP()
	nrpkg.AddTransactionAttribute(txn, "tenant_id", req.TenantID)

	seed, err := h.portalUC.RedeemVoucher(c.Request().Context(), &req)
	if err != nil {
		return domainError(c, "RedeemVoucher", err)
	}
	return c.JSON(http.StatusOK, models.NewAdmissionResponse(seed))
}

// GetSession handles GET /auth/session for the session in the guest token
func (h *AuthHandler) GetSession(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.GetSession")

	sessionID, _ := c.Get(constants.CtxSessionID).(string)
	if sessionID == "" {
		return utils.UnauthorizedResponse(c, "Missing session")
	}

	session, err := h.portalUC.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return domainError(c, "GetSession", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", session)
}
