package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/guestportal/internal/pkg/counter"
	jwtpkg "github.com/piresc/guestportal/internal/pkg/jwt"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/metrics"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/portal"
)

const defaultSessionMinutes = 60

// portalUC implements portal.PortalUC
type portalUC struct {
	cfg     *models.Config
	repo    portal.PortalRepo
	gw      portal.PortalGW
	counter counter.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewPortalUC creates the portal use case
func NewPortalUC(
	cfg *models.Config,
	repo portal.PortalRepo,
	gw portal.PortalGW,
	store counter.Store,
	m *metrics.Metrics,
) portal.PortalUC {
	return &portalUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		counter: store,
		metrics: m,
		now:     models.Now,
	}
}

// Admit resolves the tenant and site and opens a session for mac
func (uc *portalUC) Admit(ctx context.Context, tenantID, siteID int64, mac string, method models.AuthMethod, result models.MethodResult) (*models.SessionSeed, error) {
	mac, err := utils.NormalizeMAC(mac)
	if err != nil {
		return nil, err
	}
	tenant, site, err := tenancy.Resolve(ctx, uc.repo, tenantID, siteID)
	if err != nil {
		return nil, err
	}
	return uc.admit(ctx, tenant, site, mac, method, result)
}

// admit is the only place sessions are created. Callers have already
// normalized mac and resolved tenant and site.
func (uc *portalUC) admit(ctx context.Context, tenant *models.Tenant, site *models.Site, mac string, method models.AuthMethod, result models.MethodResult) (*models.SessionSeed, error) {
	now := uc.now()

	guest := &models.GuestUser{
		ID:        uuid.NewString(),
		TenantID:  tenant.ID,
		MAC:       mac,
		MACHash:   utils.HashMAC(tenant.Secret, mac),
		Consent:   models.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if result.Email != "" {
		email := result.Email
		guest.Email = &email
	}

	guest, err := uc.repo.UpsertGuestUser(ctx, guest)
	if err != nil {
		uc.metrics.Admission(string(method), false)
		return nil, fmt.Errorf("failed to upsert guest user: %w", err)
	}

	minutes := result.SessionMinutes
	if minutes <= 0 {
		minutes = uc.sessionMinutes()
	}

	policy := models.JSONMap{"type": string(method), "minutes": minutes}
	if result.VoucherID != 0 {
		policy["voucher_id"] = result.VoucherID
	}
	session := &models.Session{
		ID:          uuid.NewString(),
		GuestUserID: guest.ID,
		SiteID:      site.ID,
		MAC:         mac,
		StartAt:     now,
		Policy:      policy,
	}
	if result.IP != "" {
		ip := result.IP
		session.IP = &ip
	}
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		uc.metrics.Admission(string(method), false)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	seed := &models.SessionSeed{
		SessionID:   session.ID,
		GuestUserID: guest.ID,
		TenantID:    tenant.ID,
		SiteID:      site.ID,
		MAC:         mac,
		Method:      method,
		StartAt:     now,
		Minutes:     minutes,
	}

	token, expiresAt, err := jwtpkg.GenerateGuestToken(seed, uc.cfg.JWT)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to issue guest token",
			logger.String("session_id", seed.SessionID),
			logger.Err(err))
	} else {
		seed.Token = token
		seed.ExpiresAt = expiresAt
	}

	uc.gw.AppendEvent(ctx, tenant.ID, site.ID, models.EventSessionStart, models.JSONMap{
		"session_id":    seed.SessionID,
		"guest_user_id": seed.GuestUserID,
		"method":        string(method),
	})

	if result.SSID != "" {
		res := uc.syncController(ctx, site.ID, result.SSID, mac, seed.Duration())
		seed.Controller = &res
	}

	uc.metrics.Admission(string(method), true)
	logger.InfoCtx(ctx, "Guest admitted",
		logger.String("session_id", seed.SessionID),
		logger.Int64("tenant_id", tenant.ID),
		logger.Int64("site_id", site.ID),
		logger.String("method", string(method)),
		logger.String("mac", utils.MaskMAC(mac)))
	return seed, nil
}

// syncController authorizes mac on the controller serving ssid. The
// outcome only annotates the admission.
func (uc *portalUC) syncController(ctx context.Context, siteID int64, ssid, mac string, d time.Duration) models.AuthResult {
	_, ctrl, err := uc.repo.GetSSIDWithController(ctx, siteID, ssid)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.WarnCtx(ctx, "Failed to resolve SSID controller",
				logger.Int64("site_id", siteID),
				logger.String("ssid", ssid),
				logger.Err(err))
		}
		return models.AuthResult{OK: false, Message: "ssid not configured"}
	}
	if ctrl == nil {
		return models.AuthResult{OK: false, Message: "ssid has no controller"}
	}

	res := uc.gw.AuthorizeMAC(ctx, ctrl, ssid, mac, d)
	if !res.OK {
		logger.WarnCtx(ctx, "Controller authorization failed, keeping local grant",
			logger.Int64("controller_id", ctrl.ID),
			logger.String("ssid", ssid),
			logger.String("mac", utils.MaskMAC(mac)),
			logger.String("message", res.Message))
	}
	return res
}

func (uc *portalUC) sessionMinutes() int {
	if uc.cfg.Portal.SessionMinutes > 0 {
		return uc.cfg.Portal.SessionMinutes
	}
	return defaultSessionMinutes
}

// GetSession returns a session by id
func (uc *portalUC) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required: %w", models.ErrInvalidInput)
	}
	return uc.repo.GetSession(ctx, sessionID)
}

// Clickthrough admits a guest that accepted the terms
func (uc *portalUC) Clickthrough(ctx context.Context, req *models.ClickthroughRequest) (*models.SessionSeed, error) {
	mac, err := utils.NormalizeMAC(req.MAC)
	if err != nil {
		return nil, err
	}
	tenant, site, err := tenancy.Resolve(ctx, uc.repo, req.TenantID, req.SiteID)
	if err != nil {
		return nil, err
	}
	return uc.admit(ctx, tenant, site, mac, models.AuthMethodClickthrough, models.MethodResult{
		IP:   req.IP,
		SSID: req.SSID,
	})
}
