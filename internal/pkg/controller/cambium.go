package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	httppkg "github.com/piresc/guestportal/internal/pkg/http"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/utils"
)

// cambiumGateway signs each request body with HMAC-SHA256 over "mac:ts"
type cambiumGateway struct {
	spec   Spec
	opts   Options
	client *httppkg.EnhancedClient
}

func newCambiumGateway(spec Spec, opts Options, client *httppkg.EnhancedClient) *cambiumGateway {
	spec.BaseURL = strings.TrimRight(spec.BaseURL, "/")
	return &cambiumGateway{spec: spec, opts: opts, client: client}
}

type cambiumRequest struct {
	SSID      string `json:"ssid"`
	MAC       string `json:"mac"`
	SessionMS int64  `json:"session_ms,omitempty"`
	Message   string `json:"message,omitempty"`
	APIKey    string `json:"api_key"`
	TS        int64  `json:"ts"`
	Sig       string `json:"sig"`
}

func (g *cambiumGateway) signed(ssid, mac string) cambiumRequest {
	ts := g.opts.Now().Unix()
	return cambiumRequest{
		SSID:   ssid,
		MAC:    mac,
		APIKey: g.spec.APIKey,
		TS:     ts,
		Sig:    utils.HMACHex(g.spec.APISecret, fmt.Sprintf("%s:%d", mac, ts)),
	}
}

func (g *cambiumGateway) header() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+g.spec.APIKey)
	return h
}

func (g *cambiumGateway) AuthorizeMAC(ctx context.Context, ssid, mac string, duration time.Duration) models.AuthResult {
	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	body := g.signed(ssid, mac)
	body.SessionMS = duration.Milliseconds()

	resp, err := g.client.PostJSON(ctx, g.spec.BaseURL+"/guest/authorize", body, g.header())
	if err != nil {
		logger.WarnCtx(ctx, "Cambium authorize failed",
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

func (g *cambiumGateway) DisconnectMAC(ctx context.Context, ssid, mac, reason string) bool {
	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	body := g.signed(ssid, mac)
	body.Message = reason

	resp, err := g.client.PostJSON(ctx, g.spec.BaseURL+"/guest/coa", body, g.header())
	if err != nil {
		logger.WarnCtx(ctx, "Cambium disconnect failed",
			logger.Int64("controller_id", g.spec.ID),
			logger.String("mac", utils.MaskMAC(mac)),
			logger.Err(err))
		return false
	}
	return statusOK(resp.StatusCode)
}
