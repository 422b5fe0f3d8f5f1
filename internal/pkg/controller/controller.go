// Package controller talks to vendor WLAN controllers to authorize and
// disconnect guest devices.
package controller

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/guestportal/internal/pkg/controller Gateway,Resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	httppkg "github.com/piresc/guestportal/internal/pkg/http"
	"github.com/piresc/guestportal/internal/pkg/metrics"
	"github.com/piresc/guestportal/internal/pkg/models"
	"golang.org/x/crypto/blake2b"
)

// Type selects the vendor variant
type Type string

const (
	TypeRuckusSZ         Type = "ruckus_sz"
	TypeCambiumCnMaestro Type = "cambium_cnmaestro"
)

// ErrUnsupportedType is returned by Resolve for unknown controller types
var ErrUnsupportedType = errors.New("unsupported controller type")

// Gateway authorizes and disconnects a MAC on a controller. Implementations
// never return transport failures; they surface as a negative result.
type Gateway interface {
	AuthorizeMAC(ctx context.Context, ssid, mac string, duration time.Duration) models.AuthResult
	DisconnectMAC(ctx context.Context, ssid, mac, reason string) bool
}

// Resolver returns the gateway for a controller
type Resolver interface {
	Resolve(spec Spec) (Gateway, error)
}

// Spec identifies a controller and its credentials
type Spec struct {
	ID        int64
	Type      Type
	BaseURL   string
	APIKey    string
	APISecret string
}

// SpecFromModel builds a Spec from a stored controller row
func SpecFromModel(c *models.Controller) Spec {
	return Spec{
		ID:        c.ID,
		Type:      Type(c.Type),
		BaseURL:   c.BaseURL,
		APIKey:    c.APIKey,
		APISecret: c.APISecret,
	}
}

// cacheKey changes whenever any credential changes. The secret enters the
// key only as a digest.
func (s Spec) cacheKey() string {
	secret := blake2b.Sum256([]byte(s.APISecret))
	return fmt.Sprintf("%d|%s|%s|%s|%x", s.ID, s.Type, s.BaseURL, s.APIKey, secret[:8])
}

// Options configure every gateway built by a Directory
type Options struct {
	TestMode  bool
	Timeout   time.Duration
	APIPrefix string
	Now       func() time.Time
}

// Directory builds gateways by controller type and caches them so that
// vendor sessions are reused across requests
type Directory struct {
	opts    Options
	client  *httppkg.EnhancedClient
	metrics *metrics.Metrics

	mu       sync.Mutex
	gateways map[string]Gateway
}

// NewDirectory creates a directory. client may be nil in test mode.
func NewDirectory(opts Options, client *httppkg.EnhancedClient, m *metrics.Metrics) *Directory {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if client == nil {
		client = httppkg.NewEnhancedClient(nil, nil, nil)
	}
	return &Directory{
		opts:     opts,
		client:   client,
		metrics:  m,
		gateways: make(map[string]Gateway),
	}
}

// Resolve returns the cached gateway for spec, building it on first use
func (d *Directory) Resolve(spec Spec) (Gateway, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := spec.cacheKey()
	if gw, ok := d.gateways[key]; ok {
		return gw, nil
	}

	var gw Gateway
	switch {
	case spec.Type != TypeRuckusSZ && spec.Type != TypeCambiumCnMaestro:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, spec.Type)
	case d.opts.TestMode:
		gw = testGateway{}
	case spec.Type == TypeRuckusSZ:
		gw = newRuckusGateway(spec, d.opts, d.client)
	default:
		gw = newCambiumGateway(spec, d.opts, d.client)
	}

	gw = &instrumented{next: gw, controllerType: string(spec.Type), metrics: d.metrics}
	d.gateways[key] = gw
	return gw, nil
}

// testGateway accepts everything without touching the network
type testGateway struct{}

func (testGateway) AuthorizeMAC(_ context.Context, _, _ string, duration time.Duration) models.AuthResult {
	return models.AuthResult{OK: true, Message: "authorized(test)", SessionMS: duration.Milliseconds()}
}

func (testGateway) DisconnectMAC(context.Context, string, string, string) bool {
	return true
}

type instrumented struct {
	next           Gateway
	controllerType string
	metrics        *metrics.Metrics
}

func (g *instrumented) AuthorizeMAC(ctx context.Context, ssid, mac string, duration time.Duration) models.AuthResult {
	res := g.next.AuthorizeMAC(ctx, ssid, mac, duration)
	g.metrics.ControllerCall(g.controllerType, "authorize", res.OK)
	return res
}

func (g *instrumented) DisconnectMAC(ctx context.Context, ssid, mac, reason string) bool {
	ok := g.next.DisconnectMAC(ctx, ssid, mac, reason)
	g.metrics.ControllerCall(g.controllerType, "disconnect", ok)
	return ok
}

func statusOK(code int) bool {
	return code == 200 || code == 204
}

func responseMessage(resp *httppkg.Response) string {
	if statusOK(resp.StatusCode) {
		if len(resp.Body) == 0 {
			return "authorized"
		}
		return string(resp.Body)
	}
	return fmt.Sprintf("controller returned status %d: %s", resp.StatusCode, resp.Body)
}

func failure(err error) models.AuthResult {
	if httppkg.IsTimeout(err) {
		return models.AuthResult{OK: false, Message: "controller timeout: " + err.Error()}
	}
	return models.AuthResult{OK: false, Message: err.Error()}
}
