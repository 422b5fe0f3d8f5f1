package gateway

import (
	"context"

	"github.com/piresc/guestportal/internal/pkg/eventlog"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/services/ads"
)

// AdsGW implements ads.AdsGW
type AdsGW struct {
	events eventlog.Sink
}

// NewAdsGW creates the ads gateway
func NewAdsGW(events eventlog.Sink) ads.AdsGW {
	return &AdsGW{events: events}
}

// AppendEvent records an impression. A lost impression event never fails
// the ad response.
func (g *AdsGW) AppendEvent(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap) {
	if err := g.events.Append(ctx, tenantID, siteID, eventType, payload); err != nil {
		logger.WarnCtx(ctx, "Failed to append ad event",
			logger.String("type", string(eventType)),
			logger.Int64("tenant_id", tenantID),
			logger.Int64("site_id", siteID),
			logger.Err(err))
	}
}
