package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/events"
)

const maxEventTypeLen = 64

// eventsUC implements events.EventsUC
type eventsUC struct {
	cfg  *models.Config
	repo events.EventsRepo
	gw   events.EventsGW
}

// NewEventsUC creates the events use case. Any tenancy.Lookup serves as
// repo and any eventlog.Sink as gw.
func NewEventsUC(cfg *models.Config, repo events.EventsRepo, gw events.EventsGW) events.EventsUC {
	return &eventsUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// Ingest appends a signed event. The signature covers the exact body bytes
// and is keyed by the tenant's secret, so the tenant is resolved first.
func (uc *eventsUC) Ingest(ctx context.Context, body []byte, signature string) error {
	var req models.EventIngestRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return fmt.Errorf("malformed event body: %w", models.ErrInvalidInput)
	}

	tenant, site, err := tenancy.Resolve(ctx, uc.repo, req.TenantID, req.SiteID)
	if err != nil {
		return err
	}

	if signature == "" {
		if !uc.cfg.Events.AllowUnsigned {
			return models.ErrUnsignedEvent
		}
	} else if !utils.VerifySignature(tenant.Secret, body, signature) {
		logger.WarnCtx(ctx, "Event signature mismatch",
			logger.Int64("tenant_id", tenant.ID),
			logger.Int64("site_id", site.ID))
		return models.ErrSignatureMismatch
	}

	eventType := models.EventType(strings.TrimSpace(string(req.Type)))
	if eventType == "" {
		eventType = models.EventClick
	}
	if len(eventType) > maxEventTypeLen {
		return fmt.Errorf("event type too long: %w", models.ErrInvalidInput)
	}
	payload := req.Payload
	if payload == nil {
		payload = models.JSONMap{}
	}

	if err := uc.gw.Append(ctx, tenant.ID, site.ID, eventType, payload); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}
