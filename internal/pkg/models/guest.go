package models

import "time"

// AuthMethod records how a session was admitted.
type AuthMethod string

const (
	AuthMethodClickthrough AuthMethod = "clickthrough"
	AuthMethodEmailOTP     AuthMethod = "email_otp"
	AuthMethodVoucher      AuthMethod = "voucher"
	AuthMethodWISPr        AuthMethod = "wispr"
)

// GuestUser is unique per (tenant, mac).
type GuestUser struct {
	ID        string    `json:"id" db:"id"`
	TenantID  int64     `json:"tenant_id" db:"tenant_id"`
	MAC       string    `json:"mac" db:"mac"`
	MACHash   string    `json:"-" db:"mac_hash"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	SocialID  *string   `json:"social_id,omitempty" db:"social_id"`
	Consent   JSONMap   `json:"consent" db:"consent_json"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Session is one admission of a device on a site. EndAt stays nil while open.
type Session struct {
	ID          string     `json:"id" db:"id"`
	GuestUserID string     `json:"guest_user_id" db:"guest_user_id"`
	SiteID      int64      `json:"site_id" db:"site_id"`
	MAC         string     `json:"mac" db:"mac"`
	IP          *string    `json:"ip,omitempty" db:"ip"`
	StartAt     time.Time  `json:"start_at" db:"start_at"`
	EndAt       *time.Time `json:"end_at,omitempty" db:"end_at"`
	BytesUp     int64      `json:"bytes_up" db:"bytes_up"`
	BytesDown   int64      `json:"bytes_down" db:"bytes_down"`
	Policy      JSONMap    `json:"policy" db:"policy_json"`
}

// MethodResult carries what a successful auth method learned about the guest.
type MethodResult struct {
	Email          string
	IP             string
	SSID           string
	SessionMinutes int
	VoucherID      int64
}

// SessionSeed is returned to the caller after a successful admission.
type SessionSeed struct {
	SessionID   string      `json:"session_id"`
	GuestUserID string      `json:"guest_user_id"`
	TenantID    int64       `json:"tenant_id"`
	SiteID      int64       `json:"site_id"`
	MAC         string      `json:"mac"`
	Method      AuthMethod  `json:"method"`
	StartAt     time.Time   `json:"start_at"`
	Minutes     int         `json:"minutes"`
	Token       string      `json:"token,omitempty"`
	ExpiresAt   int64       `json:"expires_at,omitempty"`
	Controller  *AuthResult `json:"controller,omitempty"`
}

// Duration is the authorised session length.
func (s *SessionSeed) Duration() time.Duration {
	return time.Duration(s.Minutes) * time.Minute
}
