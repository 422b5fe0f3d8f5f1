package http

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/models"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/portal"
)

// WISPr reply codes
const (
	wisprMessageAuthReply = 120
	wisprLoginSucceeded   = 50
	wisprLoginFailed      = 100
)

// WISPrReply is the WISPAccessGatewayParam document returned to controllers
type WISPrReply struct {
	XMLName             xml.Name            `xml:"WISPAccessGatewayParam"`
	AuthenticationReply AuthenticationReply `xml:"AuthenticationReply"`
}

// AuthenticationReply is the body of a WISPr login reply
type AuthenticationReply struct {
	MessageType  int    `xml:"MessageType"`
	ResponseCode int    `xml:"ResponseCode"`
	ReplyMessage string `xml:"ReplyMessage"`
}

func wisprReply(code int, reply string) WISPrReply {
	return WISPrReply{AuthenticationReply: AuthenticationReply{
		MessageType:  wisprMessageAuthReply,
		ResponseCode: code,
		ReplyMessage: reply,
	}}
}

// VendorHandler serves controller callbacks
type VendorHandler struct {
	portalUC portal.PortalUC
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(portalUC portal.PortalUC) *VendorHandler {
	return &VendorHandler{
		portalUC: portalUC,
	}
}

// WISPrLogin handles POST /ruckus/wispr/login
func (h *VendorHandler) WISPrLogin(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vendor.WISPrLogin")

	var req models.WISPrLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.XML(http.StatusBadRequest, wisprReply(wisprLoginFailed, "Login Failed: invalid_request"))
	}

	seed, err := h.portalUC.WISPrLogin(c.Request().Context(), &req)
	if err != nil {
		status, code := utils.DomainErrorStatus(err)
		if status >= http.StatusInternalServerError {
			nrpkg.NoticeTransactionError(txn, err)
		}
		return c.XML(status, wisprReply(wisprLoginFailed, "Login Failed: "+code))
	}

	reply := "Login Succeeded"
	if seed.Controller != nil && !seed.Controller.OK {
		reply += "; controller: " + seed.Controller.Message
	}
	return c.XML(http.StatusOK, wisprReply(wisprLoginSucceeded, reply))
}

// CoA handles POST /ruckus/coa
func (h *VendorHandler) CoA(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Vendor.CoA")

	var req models.CoARequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, "CoA", err)
	}

	ok, err := h.portalUC.Disconnect(c.Request().Context(), &req)
	if err != nil {
		return domainError(c, "CoA", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": ok})
}
