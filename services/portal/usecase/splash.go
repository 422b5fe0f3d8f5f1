package usecase

import (
	"context"

	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
)

// Splash returns the site's most recently published page and records a
// splash_view
func (uc *portalUC) Splash(ctx context.Context, tenantID, siteID int64) (*models.Page, error) {
	tenant, site, err := tenancy.Resolve(ctx, uc.repo, tenantID, siteID)
	if err != nil {
		return nil, err
	}

	page, err := uc.repo.GetPublishedPage(ctx, tenant.ID, site.ID)
	if err != nil {
		return nil, err
	}

	uc.gw.AppendEvent(ctx, tenant.ID, site.ID, models.EventSplashView, models.JSONMap{})
	return page, nil
}
