package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/guestportal/internal/pkg/constants"
	"github.com/piresc/guestportal/internal/pkg/controller"
	"github.com/piresc/guestportal/internal/pkg/eventbus"
	"github.com/piresc/guestportal/internal/pkg/eventlog"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/services/portal"
)

// PortalGW implements portal.PortalGW on top of the controller directory,
// the event log and the event bus
type PortalGW struct {
	controllers controller.Resolver
	events      eventlog.Sink
	bus         eventbus.Publisher
}

// NewPortalGW creates the portal gateway
func NewPortalGW(controllers controller.Resolver, events eventlog.Sink, bus eventbus.Publisher) portal.PortalGW {
	return &PortalGW{
		controllers: controllers,
		events:      events,
		bus:         bus,
	}
}

// AuthorizeMAC grants mac on the controller. Failures are returned as a
// negative result.
func (g *PortalGW) AuthorizeMAC(ctx context.Context, ctrl *models.Controller, ssid, mac string, duration time.Duration) models.AuthResult {
	gw, err := g.controllers.Resolve(controller.SpecFromModel(ctrl))
	if err != nil {
		return models.AuthResult{OK: false, Message: err.Error()}
	}
	return gw.AuthorizeMAC(ctx, ssid, mac, duration)
}

// DisconnectMAC asks the controller to drop mac
func (g *PortalGW) DisconnectMAC(ctx context.Context, ctrl *models.Controller, ssid, mac, reason string) bool {
	gw, err := g.controllers.Resolve(controller.SpecFromModel(ctrl))
	if err != nil {
		logger.WarnCtx(ctx, "Cannot resolve controller for disconnect",
			logger.Int64("controller_id", ctrl.ID),
			logger.Err(err))
		return false
	}
	return gw.DisconnectMAC(ctx, ssid, mac, reason)
}

// AppendEvent writes to the event log and only logs failures
func (g *PortalGW) AppendEvent(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap) {
	if err := g.events.Append(ctx, tenantID, siteID, eventType, payload); err != nil {
		logger.WarnCtx(ctx, "Failed to append event",
			logger.String("type", string(eventType)),
			logger.Int64("tenant_id", tenantID),
			logger.Err(err))
	}
}

// PublishOTPIssued hands the code to the delivery worker
func (g *PortalGW) PublishOTPIssued(ctx context.Context, notification *models.OTPNotification) error {
	data, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal otp notification: %w", err)
	}
	if err := g.bus.Publish(ctx, constants.SubjectOTPIssued, data); err != nil {
		return fmt.Errorf("failed to publish otp notification: %w", err)
	}
	return nil
}
