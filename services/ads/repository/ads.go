package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	"github.com/piresc/guestportal/services/ads"
)

// AdsRepo implements ads.AdsRepo on postgres
type AdsRepo struct {
	*tenancy.Repo
	db *sqlx.DB
}

// NewAdsRepo creates a new ads repository
func NewAdsRepo(db *sqlx.DB) ads.AdsRepo {
	return &AdsRepo{
		Repo: tenancy.NewRepo(db),
		db:   db,
	}
}

// ListActiveCampaigns returns active campaigns, newest first. The schedule
// window is checked by the caller against its own clock.
func (r *AdsRepo) ListActiveCampaigns(ctx context.Context, tenantID int64) ([]*models.Campaign, error) {
	query := `
		SELECT id, tenant_id, name, status, start_at, end_at, created_at, updated_at
		FROM campaigns
		WHERE tenant_id = $1 AND status = $2
		ORDER BY updated_at DESC, id DESC`

	var campaigns []*models.Campaign
	if err := r.db.SelectContext(ctx, &campaigns, query, tenantID, models.CampaignActive); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// GetLatestCreative returns the campaign's most recently updated creative
func (r *AdsRepo) GetLatestCreative(ctx context.Context, campaignID int64) (*models.Creative, error) {
	query := `
		SELECT id, campaign_id, type, asset_url, click_url, width, height, updated_at
		FROM creatives
		WHERE campaign_id = $1
		ORDER BY updated_at DESC, id DESC
		LIMIT 1`

	var creative models.Creative
	if err := r.db.GetContext(ctx, &creative, query, campaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("creative for campaign %d: %w", campaignID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get creative: %w", err)
	}
	return &creative, nil
}
