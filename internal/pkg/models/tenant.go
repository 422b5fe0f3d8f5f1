package models

import "time"

// Tenant owns brands, sites and every guest record beneath them.
type Tenant struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Status    string    `json:"status" db:"status"`
	Secret    string    `json:"-" db:"secret"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Tenant statuses
const (
	TenantActive    = "active"
	TenantSuspended = "suspended"
)

// Active reports whether the tenant may serve guests
func (t *Tenant) Active() bool {
	return t.Status == TenantActive
}

// Site is a physical venue. A site always belongs to exactly one tenant.
type Site struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenant_id" db:"tenant_id"`
	BrandID   *int64    `json:"brand_id,omitempty" db:"brand_id"`
	Name      string    `json:"name" db:"name"`
	Timezone  string    `json:"timezone" db:"timezone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AuthMode is the admission method configured on an SSID.
type AuthMode string

const (
	AuthModeClickthrough AuthMode = "clickthrough"
	AuthModeEmailOTP     AuthMode = "email_otp"
	AuthModeVoucher      AuthMode = "voucher"
	AuthModeRadius       AuthMode = "radius"
)

// SSID is a broadcast network on a site, bound to the controller that serves it.
type SSID struct {
	ID           int64    `json:"id" db:"id"`
	SiteID       int64    `json:"site_id" db:"site_id"`
	ControllerID *int64   `json:"controller_id,omitempty" db:"controller_id"`
	Name         string   `json:"name" db:"name"`
	AuthMode     AuthMode `json:"auth_mode" db:"auth_mode"`
	WalledGarden JSONMap  `json:"walled_garden" db:"walled_garden"`
}

// Controller is a vendor WLAN controller registered for a tenant.
type Controller struct {
	ID        int64   `json:"id" db:"id"`
	TenantID  int64   `json:"tenant_id" db:"tenant_id"`
	Type      string  `json:"type" db:"type"`
	BaseURL   string  `json:"base_url" db:"base_url"`
	APIKey    string  `json:"-" db:"api_key"`
	APISecret string  `json:"-" db:"api_secret"`
	Metadata  JSONMap `json:"metadata" db:"metadata"`
}

// AuthResult is the outcome of a controller call. Controller failures are
// always reported here and never raised.
type AuthResult struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	SessionMS int64  `json:"session_ms,omitempty"`
}
