// Package eventbus publishes portal events to the configured broker.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/guestportal/internal/pkg/models"
	natspkg "github.com/piresc/guestportal/internal/pkg/nats"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/guestportal/internal/pkg/nsq"
)

// Publisher sends raw payloads to a subject relative to the bus prefix
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
	Ping(ctx context.Context) error
	Close()
}

// New returns the publisher selected by cfg.Driver
func New(cfg models.EventBusConfig) (Publisher, error) {
	switch strings.ToLower(cfg.Driver) {
	case "nats":
		client, err := natspkg.NewClient(cfg.NATSURL)
		if err != nil {
			return nil, err
		}
		return NewNATSPublisher(client, cfg.SubjectPrefix), nil
	case "nsq":
		producer, err := nsqpkg.NewProducer(cfg.NSQAddr)
		if err != nil {
			return nil, err
		}
		return &nsqPublisher{producer: producer, prefix: cfg.SubjectPrefix}, nil
	case "", "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown event bus driver %q", cfg.Driver)
	}
}

func subject(prefix, s string) string {
	if prefix == "" {
		return s
	}
	return prefix + "." + s
}

type natsPublisher struct {
	client *natspkg.Client
	prefix string
}

// NewNATSPublisher publishes through an existing NATS client
func NewNATSPublisher(client *natspkg.Client, prefix string) Publisher {
	return &natsPublisher{client: client, prefix: prefix}
}

func (p *natsPublisher) Publish(ctx context.Context, s string, data []byte) error {
	dest := subject(p.prefix, s)
	return nrpkg.InstrumentPublish(ctx, "NATS", dest, func() error {
		return p.client.Publish(dest, data)
	})
}

func (p *natsPublisher) Ping(context.Context) error {
	if conn := p.client.GetConn(); conn == nil || !conn.IsConnected() {
		return errors.New("nats not connected")
	}
	return nil
}

func (p *natsPublisher) Close() {
	p.client.Close()
}

type nsqPublisher struct {
	producer *nsqpkg.Producer
	prefix   string
}

func (p *nsqPublisher) Publish(ctx context.Context, s string, data []byte) error {
	dest := subject(p.prefix, s)
	return nrpkg.InstrumentPublish(ctx, "NSQ", dest, func() error {
		return p.producer.Publish(dest, data)
	})
}

func (p *nsqPublisher) Ping(context.Context) error {
	return p.producer.Ping()
}

func (p *nsqPublisher) Close() {
	p.producer.Stop()
}

// Noop drops every message
type Noop struct{}

func (Noop) Publish(context.Context, string, []byte) error { return nil }

func (Noop) Ping(context.Context) error { return nil }

func (Noop) Close() {}
