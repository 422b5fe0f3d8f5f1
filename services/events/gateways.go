package events

import (
	"context"

	"github.com/piresc/guestportal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/guestportal/services/events EventsGW

// EventsGW writes ingested events
type EventsGW interface {
	Append(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap) error
}
