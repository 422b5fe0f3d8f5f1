package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	httppkg "github.com/piresc/guestportal/internal/pkg/http"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/utils"
)

const sessionCookie = "JSESSIONID"

var errNoSessionCookie = errors.New("ruckus login response has no JSESSIONID")

// ruckusGateway logs in to SmartZone and reuses the JSESSIONID cookie,
// logging in again once when a call comes back 401
type ruckusGateway struct {
	spec   Spec
	opts   Options
	client *httppkg.EnhancedClient

	mu        sync.Mutex
	sessionID string
}

func newRuckusGateway(spec Spec, opts Options, client *httppkg.EnhancedClient) *ruckusGateway {
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api/public/v6_1"
	}
	spec.BaseURL = strings.TrimRight(spec.BaseURL, "/")
	return &ruckusGateway{spec: spec, opts: opts, client: client}
}

type ruckusLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ruckusAuthorize struct {
	SSID      string `json:"ssid"`
	MAC       string `json:"mac"`
	SessionMS int64  `json:"session_ms"`
}

type ruckusCoA struct {
	SSID    string `json:"ssid"`
	MAC     string `json:"mac"`
	Message string `json:"message"`
}

func (g *ruckusGateway) AuthorizeMAC(ctx context.Context, ssid, mac string, duration time.Duration) models.AuthResult {
	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	body := ruckusAuthorize{SSID: ssid, MAC: mac, SessionMS: duration.Milliseconds()}
	resp, err := g.post(ctx, "/portal/authorize", body)
	if err != nil {
		logger.WarnCtx(ctx, "Ruckus authorize failed",
			logger.Int64("controller_id", g.spec.ID),
			logger.String("mac", utils.MaskMAC(mac)),
			logger.Err(err))
		return failure(err)
	}
	return models.AuthResult{
		OK:        statusOK(resp.StatusCode),
		Message:   responseMessage(resp),
		SessionMS: duration.Milliseconds(),
	}
}

func (g *ruckusGateway) DisconnectMAC(ctx context.Context, ssid, mac, reason string) bool {
	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	resp, err := g.post(ctx, "/portal/coa", ruckusCoA{SSID: ssid, MAC: mac, Message: reason})
	if err != nil {
		logger.WarnCtx(ctx, "Ruckus disconnect failed",
			logger.Int64("controller_id", g.spec.ID),
			logger.String("mac", utils.MaskMAC(mac)),
			logger.Err(err))
		return false
	}
	return statusOK(resp.StatusCode)
}

func (g *ruckusGateway) post(ctx context.Context, path string, body interface{}) (*httppkg.Response, error) {
	session, err := g.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.PostJSON(ctx, g.spec.BaseURL+path, body, g.cookieHeader(session))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	g.invalidate(session)
	session, err = g.ensureSession(ctx)
	if err != nil {
		return nil, err
	}
	return g.client.PostJSON(ctx, g.spec.BaseURL+path, body, g.cookieHeader(session))
}

func (g *ruckusGateway) cookieHeader(session string) http.Header {
	h := http.Header{}
	h.Set("Cookie", (&http.Cookie{Name: sessionCookie, Value: session}).String())
	return h
}

func (g *ruckusGateway) ensureSession(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sessionID != "" {
		return g.sessionID, nil
	}

	resp, err := g.client.PostJSON(ctx, g.spec.BaseURL+g.opts.APIPrefix+"/session",
		ruckusLogin{Username: g.spec.APIKey, Password: g.spec.APISecret}, nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &httppkg.HTTPError{StatusCode: resp.StatusCode, Message: "ruckus login failed"}
	}
	for _, c := range resp.Cookies {
		if c.Name == sessionCookie && c.Value != "" {
			g.sessionID = c.Value
			return g.sessionID, nil
		}
	}
	return "", errNoSessionCookie
}

// invalidate drops session unless another request already replaced it
func (g *ruckusGateway) invalidate(session string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sessionID == session {
		g.sessionID = ""
	}
}
