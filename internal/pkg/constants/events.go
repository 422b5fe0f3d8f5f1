package constants

// Event bus subjects, relative to the configured prefix
const (
	SubjectOTPIssued = "otp.issued"
	SubjectEvents    = "events"
)

// Signature header accepted on POST /e
const HeaderPortalSignature = "X-Portal-Signature"

// Echo context keys
const (
	CtxSessionID = "session_id"
	CtxTenantID  = "tenant_id"
	CtxRequestID = "request_id"
)
