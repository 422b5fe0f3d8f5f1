package models

import "time"

// EventType names an analytics event.
type EventType string

const (
	EventImpression   EventType = "impression"
	EventClick        EventType = "click"
	EventSplashView   EventType = "splash_view"
	EventSessionStart EventType = "session_start"
	EventSessionEnd   EventType = "session_end"
)

// Event is a row in the append-only analytics log.
type Event struct {
	ID       string    `json:"id" db:"id"`
	TenantID int64     `json:"tenant_id" db:"tenant_id"`
	SiteID   *int64    `json:"site_id,omitempty" db:"site_id"`
	Type     EventType `json:"type" db:"type"`
	Payload  JSONMap   `json:"payload" db:"payload_json"`
	TS       time.Time `json:"ts" db:"ts"`
}

// EventIngestRequest is the body of POST /e.
type EventIngestRequest struct {
	TenantID int64     `json:"tenant_id"`
	SiteID   int64     `json:"site_id"`
	Type     EventType `json:"type"`
	Payload  JSONMap   `json:"payload"`
}
