package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	"github.com/piresc/guestportal/internal/utils"
)

// WISPrLogin admits a device reported by a controller login callback
func (uc *portalUC) WISPrLogin(ctx context.Context, req *models.WISPrLoginRequest) (*models.SessionSeed, error) {
	mac, err := utils.NormalizeMAC(req.MAC)
	if err != nil {
		return nil, err
	}
	if req.Minutes < 0 {
		return nil, fmt.Errorf("minutes must not be negative: %w", models.ErrInvalidInput)
	}
	tenant, site, err := tenancy.Resolve(ctx, uc.repo, req.TenantID, req.SiteID)
	if err != nil {
		return nil, err
	}
	return uc.admit(ctx, tenant, site, mac, models.AuthMethodWISPr, models.MethodResult{
		SSID:           strings.TrimSpace(req.SSID),
		SessionMinutes: req.Minutes,
	})
}

// Disconnect asks the SSID's controller to drop mac and, when it agrees,
// closes the device's open sessions at the site
func (uc *portalUC) Disconnect(ctx context.Context, req *models.CoARequest) (bool, error) {
	mac, err := utils.NormalizeMAC(req.MAC)
	if err != nil {
		return false, err
	}
	ssid := strings.TrimSpace(req.SSID)
	if ssid == "" {
		return false, fmt.Errorf("ssid is required: %w", models.ErrInvalidInput)
	}
	tenant, site, err := tenancy.Resolve(ctx, uc.repo, req.TenantID, req.SiteID)
	if err != nil {
		return false, err
	}

	_, ctrl, err := uc.repo.GetSSIDWithController(ctx, site.ID, ssid)
	if err != nil {
		return false, err
	}
	if ctrl == nil {
		logger.WarnCtx(ctx, "Disconnect requested for SSID without controller",
			logger.Int64("site_id", site.ID),
			logger.String("ssid", ssid))
		return false, nil
	}

	if !uc.gw.DisconnectMAC(ctx, ctrl, ssid, mac, req.Reason) {
		return false, nil
	}

	closed, err := uc.repo.CloseOpenSessions(ctx, site.ID, mac, uc.now())
	if err != nil {
		return false, fmt.Errorf("failed to close sessions: %w", err)
	}

	uc.gw.AppendEvent(ctx, tenant.ID, site.ID, models.EventSessionEnd, models.JSONMap{
		"reason": req.Reason,
		"closed": closed,
		"ssid":   ssid,
	})
	logger.InfoCtx(ctx, "Device disconnected",
		logger.Int64("site_id", site.ID),
		logger.String("mac", utils.MaskMAC(mac)),
		logger.Int64("sessions_closed", closed))
	return true, nil
}

// AuthorizeRADIUS reports whether mac holds an open, unexpired session on
// a radius-mode ssid served by the controller registered as nasID
func (uc *portalUC) AuthorizeRADIUS(ctx context.Context, nasID, mac, ssid string) (bool, error) {
	mac, err := utils.NormalizeMAC(mac)
	if err != nil {
		return false, err
	}
	nasID = strings.TrimSpace(nasID)
	if ssid == "" || nasID == "" {
		return false, nil
	}

	sessions, err := uc.repo.ListOpenSessionsForSSID(ctx, nasID, ssid, mac)
	if err != nil {
		return false, err
	}

	now := uc.now()
	for _, s := range sessions {
		minutes := s.Policy.Int("minutes")
		if minutes <= 0 {
			minutes = uc.sessionMinutes()
		}
		if now.Before(s.StartAt.Add(time.Duration(minutes) * time.Minute)) {
			return true, nil
		}
	}
	return false, nil
}
