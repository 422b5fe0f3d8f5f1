package models

import "time"

// Page statuses
const (
	PageDraft     = "draft"
	PagePublished = "published"
)

// Page is a splash page authored for a site.
type Page struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenant_id" db:"tenant_id"`
	SiteID    int64     `json:"site_id" db:"site_id"`
	Status    string    `json:"status" db:"status"`
	HTML      string    `json:"html" db:"html"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
