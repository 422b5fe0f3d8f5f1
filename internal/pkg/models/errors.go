package models

import "errors"

// Domain errors shared by the portal, ads and events services. Handlers map
// them onto HTTP status codes; everything else is a 500.
var (
	ErrNotFound          = errors.New("not found")
	ErrTenantInactive    = errors.New("tenant inactive")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidMAC        = errors.New("invalid mac address")
	ErrInvalidOrExpired  = errors.New("invalid_or_expired")
	ErrInvalidVoucher    = errors.New("invalid_voucher")
	ErrRateLimited       = errors.New("rate_limited")
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrUnsignedEvent     = errors.New("unsigned event rejected")
)
