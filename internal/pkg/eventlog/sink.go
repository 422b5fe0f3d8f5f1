// Package eventlog appends analytics events. Nothing in the portal reads
// them back; failures are reported to the caller, who usually only logs.
package eventlog

//go:generate mockgen -destination=mocks/mock_sink.go -package=mocks github.com/piresc/guestportal/internal/pkg/eventlog Sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/guestportal/internal/pkg/constants"
	"github.com/piresc/guestportal/internal/pkg/eventbus"
	"github.com/piresc/guestportal/internal/pkg/metrics"
	"github.com/piresc/guestportal/internal/pkg/models"
)

// Sink appends one event. A zero siteID means the event is tenant-wide.
type Sink interface {
	Append(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap) error
}

// NewEvent builds an event stamped with a fresh id and the current time
func NewEvent(tenantID, siteID int64, eventType models.EventType, payload models.JSONMap) *models.Event {
	if payload == nil {
		payload = models.JSONMap{}
	}
	e := &models.Event{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		Type:     eventType,
		Payload:  payload,
		TS:       models.Now(),
	}
	if siteID != 0 {
		e.SiteID = &siteID
	}
	return e
}

// PostgresSink writes events to the events table
type PostgresSink struct {
	db *sqlx.DB
}

// NewPostgresSink creates a sink on db
func NewPostgresSink(db *sqlx.DB) *PostgresSink {
	return &PostgresSink{db: db}
}

// Append implements Sink
func (s *PostgresSink) Append(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap) error {
	e := NewEvent(tenantID, siteID, eventType, payload)
	query := `
		INSERT INTO events (id, tenant_id, site_id, type, payload_json, ts)
		VALUES (:id, :tenant_id, :site_id, :type, :payload_json, :ts)`
	if _, err := s.db.NamedExecContext(ctx, query, e); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// BusSink publishes events as JSON on "<prefix>.events.<type>"
type BusSink struct {
	pub eventbus.Publisher
}

// NewBusSink creates a sink on pub
func NewBusSink(pub eventbus.Publisher) *BusSink {
	return &BusSink{pub: pub}
}

// Append implements Sink
func (s *BusSink) Append(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap) error {
	data, err := json.Marshal(NewEvent(tenantID, siteID, eventType, payload))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := s.pub.Publish(ctx, constants.SubjectEvents+"."+string(eventType), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// MultiSink fans an event out to every sink and counts the outcome
type MultiSink struct {
	sinks   []Sink
	metrics *metrics.Metrics
}

// NewMultiSink creates a fan-out sink
func NewMultiSink(m *metrics.Metrics, sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks, metrics: m}
}

// Append implements Sink. Every sink is tried; the joined error is returned.
func (s *MultiSink) Append(ctx context.Context, tenantID, siteID int64, eventType models.EventType, payload models.JSONMap) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Append(ctx, tenantID, siteID, eventType, payload); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	s.metrics.EventAppended(string(eventType), err == nil)
	return err
}
