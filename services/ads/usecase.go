package ads

import (
	"context"

	"github.com/piresc/guestportal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/guestportal/services/ads AdsUC

// AdsUC picks creatives for portal slots and counts what was shown
type AdsUC interface {
	// Decide picks at most one creative for the slot. It never counts an
	// impression; callers record one per creative actually shown.
	Decide(ctx context.Context, tenantID, siteID int64, slot, mac string) (*models.Decision, error)
	RecordImpression(ctx context.Context, tenantID, siteID int64, slot, mac string) error

	// Serve resolves the site, decides, and on success records the
	// impression and appends the impression event
	Serve(ctx context.Context, req *models.AdRequest) (*models.AdResponse, error)
}
