package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/guestportal/internal/pkg/constants"
	"github.com/piresc/guestportal/internal/pkg/counter"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	"github.com/piresc/guestportal/internal/utils"
)

const otpDigits = 6

// IssueOTP creates a code for email, at most once per issue window per
// (tenant, email)
func (uc *portalUC) IssueOTP(ctx context.Context, req *models.OTPIssueRequest) (*models.OTPIssueResult, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("invalid email: %w", models.ErrInvalidInput)
	}
	if req.TenantID <= 0 {
		return nil, fmt.Errorf("tenant_id is required: %w", models.ErrInvalidInput)
	}

	tenant, err := tenancy.ActiveTenant(ctx, uc.repo, req.TenantID)
	if err != nil {
		return nil, err
	}

	key := counter.Key(constants.KeyOTPIssue, tenant.ID, email)
	acquired, err := uc.counter.TryAcquire(ctx, key, uc.otpIssueWindow())
	if err != nil {
		uc.metrics.OTP("error")
		return nil, fmt.Errorf("failed to check otp issue window: %w", err)
	}
	if !acquired {
		uc.metrics.OTP("rate_limited")
		return nil, models.ErrRateLimited
	}

	code, err := utils.GenerateNumericCode(otpDigits)
	if err != nil {
		uc.metrics.OTP("error")
		uc.releaseIssueToken(ctx, key)
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}

	now := uc.now()
	otp := &models.EmailOTP{
		ID:        uuid.NewString(),
		TenantID:  tenant.ID,
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(uc.otpTTL()),
		CreatedAt: now,
	}
	if err := uc.repo.CreateOTP(ctx, otp); err != nil {
		uc.metrics.OTP("error")
		uc.releaseIssueToken(ctx, key)
		return nil, fmt.Errorf("failed to store otp: %w", err)
	}

	err = uc.gw.PublishOTPIssued(ctx, &models.OTPNotification{
		OTPID:     otp.ID,
		TenantID:  otp.TenantID,
		Email:     otp.Email,
		Code:      otp.Code,
		ExpiresAt: otp.ExpiresAt,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish otp for delivery",
			logger.String("otp_id", otp.ID),
			logger.Err(err))
	}

	uc.metrics.OTP("ok")
	result := &models.OTPIssueResult{OTPID: otp.ID, ExpiresAt: otp.ExpiresAt}
	if uc.cfg.Portal.ExposeDevOTP {
		logger.InfoCtx(ctx, "Dev OTP code issued",
			logger.String("otp_id", otp.ID),
			logger.String("code", otp.Code))
		result.DevCode = otp.Code
	}
	return result, nil
}

// VerifyOTP consumes a code and admits the device. Expired, unknown and
// already verified codes are all ErrInvalidOrExpired.
func (uc *portalUC) VerifyOTP(ctx context.Context, req *models.OTPVerifyRequest) (*models.SessionSeed, error) {
	mac, err := utils.NormalizeMAC(req.MAC)
	if err != nil {
		return nil, err
	}
	email := utils.NormalizeEmail(req.Email)
	code := strings.TrimSpace(req.Code)
	if email == "" || code == "" {
		return nil, models.ErrInvalidOrExpired
	}

	tenant, site, err := tenancy.Resolve(ctx, uc.repo, req.TenantID, req.SiteID)
	if err != nil {
		return nil, err
	}

	otp, err := uc.repo.GetLatestOTP(ctx, tenant.ID, email, code)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidOrExpired
		}
		return nil, err
	}

	now := uc.now()
	if !otp.Usable(now) {
		return nil, models.ErrInvalidOrExpired
	}

	marked, err := uc.repo.MarkOTPVerified(ctx, otp.ID, now)
	if err != nil {
		return nil, err
	}
	if !marked {
		return nil, models.ErrInvalidOrExpired
	}

	return uc.admit(ctx, tenant, site, mac, models.AuthMethodEmailOTP, models.MethodResult{
		Email: email,
		IP:    req.IP,
		SSID:  req.SSID,
	})
}

func (uc *portalUC) otpTTL() time.Duration {
	if uc.cfg.Portal.OTPTTL > 0 {
		return uc.cfg.Portal.OTPTTL
	}
	return 10 * time.Minute
}

func (uc *portalUC) otpIssueWindow() time.Duration {
	if uc.cfg.Portal.OTPIssueWindow > 0 {
		return uc.cfg.Portal.OTPIssueWindow
	}
	return time.Minute
}

// releaseIssueToken lets the guest retry at once when no code was stored.
func (uc *portalUC) releaseIssueToken(ctx context.Context, key string) {
	if err := uc.counter.Release(ctx, key); err != nil {
		logger.WarnCtx(ctx, "Failed to release otp issue token", logger.Err(err))
	}
}
