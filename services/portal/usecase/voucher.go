package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	"github.com/piresc/guestportal/internal/utils"
)

const (
	voucherCodeLength   = 8
	defaultVoucherBatch = 500
)

// RedeemVoucher consumes an active voucher and admits the device with the
// voucher's session length
func (uc *portalUC) RedeemVoucher(ctx context.Context, req *models.VoucherRedeemRequest) (*models.SessionSeed, error) {
	mac, err := utils.NormalizeMAC(req.MAC)
	if err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, models.ErrInvalidVoucher
	}

	// resolve first so an unknown site never consumes the voucher
	tenant, site, err := tenancy.Resolve(ctx, uc.repo, req.TenantID, req.SiteID)
	if err != nil {
		return nil, err
	}

	voucher, err := uc.repo.RedeemVoucher(ctx, tenant.ID, code, mac, uc.now())
	if err != nil {
		return nil, err
	}

	seed, err := uc.admit(ctx, tenant, site, mac, models.AuthMethodVoucher, models.MethodResult{
		IP:             req.IP,
		SSID:           req.SSID,
		SessionMinutes: voucher.Minutes(),
		VoucherID:      voucher.ID,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Orphaned voucher redemption: voucher used but no session created",
			logger.Int64("voucher_id", voucher.ID),
			logger.Int64("tenant_id", tenant.ID),
			logger.String("mac", utils.MaskMAC(mac)),
			logger.Err(err))
		return nil, err
	}
	return seed, nil
}

// GenerateVouchers creates a batch of active vouchers for a tenant
func (uc *portalUC) GenerateVouchers(ctx context.Context, tenantID int64, req *models.VoucherBatchRequest) ([]*models.Voucher, error) {
	maxBatch := uc.cfg.Portal.MaxVoucherBatch
	if maxBatch <= 0 {
		maxBatch = defaultVoucherBatch
	}
	if req.Count <= 0 || req.Count > maxBatch {
		return nil, fmt.Errorf("count must be between 1 and %d: %w", maxBatch, models.ErrInvalidInput)
	}
	if req.Minutes < 0 {
		return nil, fmt.Errorf("minutes must not be negative: %w", models.ErrInvalidInput)
	}

	tenant, err := uc.repo.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	minutes := req.Minutes
	if minutes == 0 {
		minutes = uc.sessionMinutes()
	}

	now := uc.now()
	vouchers := make([]*models.Voucher, 0, req.Count)
	seen := make(map[string]struct{}, req.Count)
	for len(vouchers) < req.Count {
		code, err := utils.GenerateVoucherCode(voucherCodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate voucher code: %w", err)
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		vouchers = append(vouchers, &models.Voucher{
			TenantID:  tenant.ID,
			Code:      code,
			Policy:    models.JSONMap{"minutes": minutes},
			Status:    models.VoucherActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := uc.repo.CreateVouchers(ctx, vouchers); err != nil {
		return nil, fmt.Errorf("failed to store vouchers: %w", err)
	}

	logger.InfoCtx(ctx, "Vouchers generated",
		logger.Int64("tenant_id", tenant.ID),
		logger.Int("count", len(vouchers)),
		logger.Int("minutes", minutes))
	return vouchers, nil
}
