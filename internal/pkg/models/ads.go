package models

import "time"

// CampaignStatus values
const (
	CampaignActive = "active"
	CampaignPaused = "paused"
)

// Campaign groups creatives for a tenant.
type Campaign struct {
	ID        int64      `json:"id" db:"id"`
	TenantID  int64      `json:"tenant_id" db:"tenant_id"`
	Name      string     `json:"name" db:"name"`
	Status    string     `json:"status" db:"status"`
	StartAt   *time.Time `json:"start_at,omitempty" db:"start_at"`
	EndAt     *time.Time `json:"end_at,omitempty" db:"end_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Live reports whether the campaign is active and inside its window at now.
// Missing bounds are open.
func (c *Campaign) Live(now time.Time) bool {
	if c.Status != CampaignActive {
		return false
	}
	if c.StartAt != nil && now.Before(*c.StartAt) {
		return false
	}
	if c.EndAt != nil && now.After(*c.EndAt) {
		return false
	}
	return true
}

// Creative is a single ad asset.
type Creative struct {
	ID         int64     `json:"id" db:"id"`
	CampaignID int64     `json:"campaign_id" db:"campaign_id"`
	Type       string    `json:"type" db:"type"`
	AssetURL   string    `json:"asset_url" db:"asset_url"`
	ClickURL   string    `json:"click_url" db:"click_url"`
	Width      *int      `json:"w,omitempty" db:"width"`
	Height     *int      `json:"h,omitempty" db:"height"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// DecisionReason explains why an ad was or was not served.
type DecisionReason string

const (
	DecisionOK               DecisionReason = "ok"
	DecisionFreqCapped       DecisionReason = "freq_capped"
	DecisionPaced            DecisionReason = "paced"
	DecisionNoActiveCampaign DecisionReason = "no_active_campaign"
)

// Decision is the outcome of an ad request. Creative and Campaign are set
// only when Reason is DecisionOK.
type Decision struct {
	Creative *Creative
	Campaign *Campaign
	Reason   DecisionReason
}

// AdRequest is GET /p/:tenant_id/:site_id/ads?slot=&mac=
type AdRequest struct {
	TenantID int64  `param:"tenant_id"`
	SiteID   int64  `param:"site_id"`
	Slot     string `query:"slot"`
	MAC      string `query:"mac"`
}

// CreativePayload is the public shape of a served creative.
type CreativePayload struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	AssetURL string `json:"asset_url"`
	ClickURL string `json:"click_url"`
	Width    *int   `json:"width"`
	Height   *int   `json:"height"`
	Slot     string `json:"slot"`
}

// AdResponse is the body of GET /p/:tenant_id/:site_id/ads.
type AdResponse struct {
	Creative *CreativePayload `json:"creative"`
	Reason   DecisionReason   `json:"reason"`
}

// NewCreativePayload builds the public creative shape for slot.
func NewCreativePayload(c *Creative, slot string) *CreativePayload {
	return &CreativePayload{
		ID:       c.ID,
		Type:     c.Type,
		AssetURL: c.AssetURL,
		ClickURL: c.ClickURL,
		Width:    c.Width,
		Height:   c.Height,
		Slot:     slot,
	}
}
