package models

// ClickthroughRequest is the body of POST /auth/clickthrough
type ClickthroughRequest struct {
	TenantID int64  `json:"tenant_id" form:"tenant_id"`
	SiteID   int64  `json:"site_id" form:"site_id"`
	MAC      string `json:"mac" form:"mac"`
	SSID     string `json:"ssid" form:"ssid"`
	IP       string `json:"-" form:"-"`
}

// OTPIssueRequest is the body of POST /auth/email-otp
type OTPIssueRequest struct {
	TenantID int64  `json:"tenant_id" form:"tenant_id"`
	Email    string `json:"email" form:"email"`
}

// OTPVerifyRequest is the body of POST /auth/email-otp/verify
type OTPVerifyRequest struct {
	TenantID int64  `json:"tenant_id" form:"tenant_id"`
	SiteID   int64  `json:"site_id" form:"site_id"`
	MAC      string `json:"mac" form:"mac"`
	Email    string `json:"email" form:"email"`
	Code     string `json:"code" form:"code"`
	SSID     string `json:"ssid" form:"ssid"`
	IP       string `json:"-" form:"-"`
}

// VoucherRedeemRequest is the body of POST /auth/voucher
type VoucherRedeemRequest struct {
	TenantID int64  `json:"tenant_id" form:"tenant_id"`
	SiteID   int64  `json:"site_id" form:"site_id"`
	MAC      string `json:"mac" form:"mac"`
	Code     string `json:"code" form:"code"`
	SSID     string `json:"ssid" form:"ssid"`
	IP       string `json:"-" form:"-"`
}

// WISPrLoginRequest is the body of POST /ruckus/wispr/login
type WISPrLoginRequest struct {
	TenantID int64  `json:"tenant_id" form:"tenant_id"`
	SiteID   int64  `json:"site_id" form:"site_id"`
	SSID     string `json:"ssid" form:"ssid"`
	MAC      string `json:"mac" form:"mac"`
	Minutes  int    `json:"minutes" form:"minutes"`
}

// CoARequest is the body of POST /ruckus/coa
type CoARequest struct {
	TenantID int64  `json:"tenant_id" form:"tenant_id"`
	SiteID   int64  `json:"site_id" form:"site_id"`
	SSID     string `json:"ssid" form:"ssid"`
	MAC      string `json:"mac" form:"mac"`
	Reason   string `json:"reason" form:"reason"`
}

// VoucherBatchRequest is the body of POST /internal/tenants/:tenant_id/vouchers
type VoucherBatchRequest struct {
	Count   int `json:"count"`
	Minutes int `json:"minutes"`
}

// AdmissionResponse is returned by every successful auth endpoint.
type AdmissionResponse struct {
	OK         bool        `json:"ok"`
	SessionID  string      `json:"session_id"`
	Token      string      `json:"token,omitempty"`
	ExpiresAt  int64       `json:"expires_at,omitempty"`
	Controller *AuthResult `json:"controller,omitempty"`
}

// NewAdmissionResponse builds the response body for a seed.
func NewAdmissionResponse(seed *SessionSeed) *AdmissionResponse {
	return &AdmissionResponse{
		OK:         true,
		SessionID:  seed.SessionID,
		Token:      seed.Token,
		ExpiresAt:  seed.ExpiresAt,
		Controller: seed.Controller,
	}
}

// OTPIssueResponse is returned by POST /auth/email-otp.
type OTPIssueResponse struct {
	OK bool `json:"ok"`
	*OTPIssueResult
}
