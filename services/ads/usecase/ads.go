package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/guestportal/internal/pkg/constants"
	"github.com/piresc/guestportal/internal/pkg/counter"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/metrics"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/ads"
)

const (
	defaultFreqCap   = 3
	defaultCapWindow = time.Hour
)

// adsUC implements ads.AdsUC
type adsUC struct {
	cfg     *models.Config
	repo    ads.AdsRepo
	gw      ads.AdsGW
	counter counter.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewAdsUC creates the ads use case
func NewAdsUC(
	cfg *models.Config,
	repo ads.AdsRepo,
	gw ads.AdsGW,
	store counter.Store,
	m *metrics.Metrics,
) ads.AdsUC {
	return &adsUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		counter: store,
		metrics: m,
		now:     models.Now,
	}
}

func (uc *adsUC) freqCap() int64 {
	if uc.cfg.Ads.FreqCapPerHour <= 0 {
		return defaultFreqCap
	}
	return int64(uc.cfg.Ads.FreqCapPerHour)
}

func (uc *adsUC) capWindow() time.Duration {
	if uc.cfg.Ads.CapWindow <= 0 {
		return defaultCapWindow
	}
	return uc.cfg.Ads.CapWindow
}

func capKey(tenantID, siteID int64, mac, slot string) string {
	return counter.Key(constants.KeyAdsCap, tenantID, siteID, mac, slot)
}

func paceKey(tenantID, siteID int64, slot string) string {
	return counter.Key(constants.KeyAdsPace, tenantID, siteID, slot)
}

// Decide walks live campaigns newest first and stops at the first one with a
// creative. Frequency cap and pacing apply to that pair only; a capped or
// paced slot does not fall through to older campaigns.
func (uc *adsUC) Decide(ctx context.Context, tenantID, siteID int64, slot, mac string) (*models.Decision, error) {
	campaigns, err := uc.repo.ListActiveCampaigns(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	for _, campaign := range campaigns {
		if !campaign.Live(now) {
			continue
		}
		creative, err := uc.repo.GetLatestCreative(ctx, campaign.ID)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if mac != "" {
			shown, err := uc.counter.Get(ctx, capKey(tenantID, siteID, mac, slot))
			if err != nil {
				logger.WarnCtx(ctx, "Frequency cap lookup failed, serving uncapped",
					logger.Int64("tenant_id", tenantID),
					logger.Err(err))
			} else if shown >= uc.freqCap() {
				return &models.Decision{Reason: models.DecisionFreqCapped}, nil
			}
		}

		if window := uc.cfg.Ads.PacingWindow; window > 0 {
			ok, err := uc.counter.TryAcquire(ctx, paceKey(tenantID, siteID, slot), window)
			if err != nil {
				logger.WarnCtx(ctx, "Pacing token failed, serving unpaced",
					logger.Int64("tenant_id", tenantID),
					logger.Err(err))
			} else if !ok {
				return &models.Decision{Reason: models.DecisionPaced}, nil
			}
		}

		return &models.Decision{
			Creative: creative,
			Campaign: campaign,
			Reason:   models.DecisionOK,
		}, nil
	}

	return &models.Decision{Reason: models.DecisionNoActiveCampaign}, nil
}

// RecordImpression counts one showing toward the guest's cap. Anonymous
// requests are not capped.
func (uc *adsUC) RecordImpression(ctx context.Context, tenantID, siteID int64, slot, mac string) error {
	if mac == "" {
		return nil
	}
	_, err := uc.counter.Increment(ctx, capKey(tenantID, siteID, mac, slot), uc.capWindow())
	return err
}

// Serve is the guest-facing ad request
func (uc *adsUC) Serve(ctx context.Context, req *models.AdRequest) (*models.AdResponse, error) {
	tenant, site, err := tenancy.Resolve(ctx, uc.repo, req.TenantID, req.SiteID)
	if err != nil {
		return nil, err
	}

	mac := ""
	if req.MAC != "" {
		if mac, err = utils.NormalizeMAC(req.MAC); err != nil {
			return nil, err
		}
	}

	decision, err := uc.Decide(ctx, tenant.ID, site.ID, req.Slot, mac)
	if err != nil {
		return nil, err
	}
	uc.metrics.AdDecision(string(decision.Reason))

	resp := &models.AdResponse{Reason: decision.Reason}
	if decision.Reason != models.DecisionOK {
		return resp, nil
	}

	if err := uc.RecordImpression(ctx, tenant.ID, site.ID, req.Slot, mac); err != nil {
		logger.WarnCtx(ctx, "Failed to record impression",
			logger.Int64("tenant_id", tenant.ID),
			logger.String("mac", utils.MaskMAC(mac)),
			logger.Err(err))
	}
	uc.gw.AppendEvent(ctx, tenant.ID, site.ID, models.EventImpression, models.JSONMap{
		"slot":        req.Slot,
		"creative_id": decision.Creative.ID,
		"campaign_id": decision.Campaign.ID,
	})

	resp.Creative = models.NewCreativePayload(decision.Creative, req.Slot)
	return resp, nil
}
