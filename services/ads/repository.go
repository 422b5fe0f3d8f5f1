package ads

import (
	"context"

	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/guestportal/services/ads AdsRepo

// AdsRepo reads campaigns and creatives
type AdsRepo interface {
	tenancy.Lookup

	// ListActiveCampaigns returns the tenant's active campaigns, most
	// recently updated first
	ListActiveCampaigns(ctx context.Context, tenantID int64) ([]*models.Campaign, error)
	// GetLatestCreative returns the campaign's most recently updated
	// creative, or models.ErrNotFound
	GetLatestCreative(ctx context.Context, campaignID int64) (*models.Creative, error)
}
