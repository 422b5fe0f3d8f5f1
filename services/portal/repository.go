package portal

import (
	"context"
	"time"

	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/guestportal/services/portal PortalRepo

// PortalRepo defines data access for guests, sessions, OTPs and vouchers
type PortalRepo interface {
	tenancy.Lookup

	// GetSSIDWithController returns the named SSID at a site and its
	// controller, which is nil when the SSID has none
	GetSSIDWithController(ctx context.Context, siteID int64, name string) (*models.SSID, *models.Controller, error)

	UpsertGuestUser(ctx context.Context, user *models.GuestUser) (*models.GuestUser, error)
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	CloseOpenSessions(ctx context.Context, siteID int64, mac string, endAt time.Time) (int64, error)
	ListOpenSessionsForSSID(ctx context.Context, nasID, ssid, mac string) ([]*models.Session, error)

	CreateOTP(ctx context.Context, otp *models.EmailOTP) error
	GetLatestOTP(ctx context.Context, tenantID int64, email, code string) (*models.EmailOTP, error)
	// MarkOTPVerified sets verified_at only if it is unset and the code has
	// not expired at now; false means another request won or it expired
	MarkOTPVerified(ctx context.Context, otpID string, now time.Time) (bool, error)

	// RedeemVoucher flips an active voucher to used under a row lock.
	// Returns models.ErrInvalidVoucher when no active voucher matches.
	RedeemVoucher(ctx context.Context, tenantID int64, code, mac string, usedAt time.Time) (*models.Voucher, error)
	CreateVouchers(ctx context.Context, vouchers []*models.Voucher) error

	GetPublishedPage(ctx context.Context, tenantID, siteID int64) (*models.Page, error)
}
