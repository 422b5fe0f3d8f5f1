package portal

import (
	"context"
	"time"

	"github.com/piresc/guestportal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/guestportal/services/portal PortalGW

// PortalGW defines the portal's outbound calls
type PortalGW interface {
	// Controller gateway; failures come back as negative results
	AuthorizeMAC(ctx context.Context, ctrl *models.Controller, ssid, mac string, duration time.Duration) models.AuthResult
	DisconnectMAC(ctx context.Context, ctrl *models.Controller, ssid, mac, reason string) bool

	// AppendEvent is fire-and-forget
	AppendEvent(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap)

	// Event bus
	PublishOTPIssued(ctx context.Context, notification *models.OTPNotification) error
}
