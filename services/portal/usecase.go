package portal

import (
	"context"

	"github.com/piresc/guestportal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/guestportal/services/portal PortalUC

// PortalUC admits guests onto the network. Every auth method funnels into
// Admit after its own check succeeds.
type PortalUC interface {
	// session admission
	Admit(ctx context.Context, tenantID, siteID int64, mac string, method models.AuthMethod, result models.MethodResult) (*models.SessionSeed, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// auth methods
	Clickthrough(ctx context.Context, req *models.ClickthroughRequest) (*models.SessionSeed, error)
	IssueOTP(ctx context.Context, req *models.OTPIssueRequest) (*models.OTPIssueResult, error)
	VerifyOTP(ctx context.Context, req *models.OTPVerifyRequest) (*models.SessionSeed, error)
	RedeemVoucher(ctx context.Context, req *models.VoucherRedeemRequest) (*models.SessionSeed, error)
	GenerateVouchers(ctx context.Context, tenantID int64, req *models.VoucherBatchRequest) ([]*models.Voucher, error)

	// vendor callbacks
	WISPrLogin(ctx context.Context, req *models.WISPrLoginRequest) (*models.SessionSeed, error)
	Disconnect(ctx context.Context, req *models.CoARequest) (bool, error)
	AuthorizeRADIUS(ctx context.Context, nasID, mac, ssid string) (bool, error)

	// splash
	Splash(ctx context.Context, tenantID, siteID int64) (*models.Page, error)
}
