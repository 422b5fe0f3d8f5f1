package ads

import (
	"context"

	"github.com/piresc/guestportal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/guestportal/services/ads AdsGW

// AdsGW defines the ads service's outbound calls
type AdsGW interface {
	// AppendEvent is fire-and-forget
	AppendEvent(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap)
}
