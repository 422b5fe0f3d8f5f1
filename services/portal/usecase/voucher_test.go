package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/services/portal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redeemReq(code string) *models.VoucherRedeemRequest {
	return &models.VoucherRedeemRequest{TenantID: 1, SiteID: 10, MAC: "AA-BB-CC-DD-EE-FF", Code: code}
}

func TestRedeemVoucher_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().RedeemVoucher(gomock.Any(), int64(1), "ABCD2345", testMAC, fixedNow).
		Return(&models.Voucher{ID: 77, TenantID: 1, Code: "ABCD2345", Policy: models.JSONMap{"minutes": float64(30)}}, nil)
	session := d.expectAdmission(t, models.AuthMethodVoucher, 30)

	// Act
	seed, err := d.uc.RedeemVoucher(context.Background(), redeemReq(" ABCD2345 "))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 30, seed.Minutes)
	assert.Equal(t, models.AuthMethodVoucher, seed.Method)
	assert.Equal(t, int64(77), session.Policy["voucher_id"])
}

func TestRedeemVoucher_DefaultsToConfiguredMinutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().RedeemVoucher(gomock.Any(), int64(1), "ABCD2345", testMAC, fixedNow).
		Return(&models.Voucher{ID: 77, TenantID: 1, Policy: models.JSONMap{}}, nil)
	d.expectAdmission(t, models.AuthMethodVoucher, 60)

	seed, err := d.uc.RedeemVoucher(context.Background(), redeemReq("ABCD2345"))
	require.NoError(t, err)
	assert.Equal(t, 60, seed.Minutes)
}

func TestRedeemVoucher_CodeIsCaseInsensitive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().RedeemVoucher(gomock.Any(), int64(1), "ABCD2345", testMAC, fixedNow).
		Return(&models.Voucher{ID: 77, TenantID: 1, Code: "ABCD2345", Policy: models.JSONMap{"minutes": float64(30)}}, nil)
	d.expectAdmission(t, models.AuthMethodVoucher, 30)

	// Act
	seed, err := d.uc.RedeemVoucher(context.Background(), redeemReq(" abcd2345\n"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.AuthMethodVoucher, seed.Method)
}

func TestRedeemVoucher_InvalidVoucher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().RedeemVoucher(gomock.Any(), int64(1), "USED0001", testMAC, fixedNow).
		Return(nil, models.ErrInvalidVoucher)

	_, err := d.uc.RedeemVoucher(context.Background(), redeemReq("USED0001"))
	assert.ErrorIs(t, err, models.ErrInvalidVoucher)
}

func TestRedeemVoucher_EmptyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	_, err := d.uc.RedeemVoucher(context.Background(), redeemReq("   "))
	assert.ErrorIs(t, err, models.ErrInvalidVoucher)
}

func TestRedeemVoucher_UnknownSiteKeepsVoucher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.repo.EXPECT().GetTenant(gomock.Any(), int64(1)).Return(&models.Tenant{ID: 1, Status: models.TenantActive}, nil)
	d.repo.EXPECT().GetSite(gomock.Any(), int64(1), int64(10)).Return(nil, models.ErrNotFound)
	d.repo.EXPECT().RedeemVoucher(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := d.uc.RedeemVoucher(context.Background(), redeemReq("ABCD2345"))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRedeemVoucher_SessionFailureAfterRedeem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().RedeemVoucher(gomock.Any(), int64(1), "ABCD2345", testMAC, fixedNow).
		Return(&models.Voucher{ID: 77, Policy: models.JSONMap{"minutes": 30}}, nil)
	d.repo.EXPECT().UpsertGuestUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	seed, err := d.uc.RedeemVoucher(context.Background(), redeemReq("ABCD2345"))
	assert.Error(t, err)
	assert.Nil(t, seed)
}

// voucherRepo serializes redemption the way the row lock does in postgres
type voucherRepo struct {
	portal.PortalRepo

	mu       sync.Mutex
	used     map[string]bool
	sessions int
}

func (r *voucherRepo) GetTenant(_ context.Context, id int64) (*models.Tenant, error) {
	return &models.Tenant{ID: id, Status: models.TenantActive, Secret: "tenant-secret"}, nil
}

func (r *voucherRepo) GetSite(_ context.Context, tenantID, siteID int64) (*models.Site, error) {
	return &models.Site{ID: siteID, TenantID: tenantID}, nil
}

func (r *voucherRepo) RedeemVoucher(_ context.Context, tenantID int64, code, mac string, usedAt time.Time) (*models.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used[code] {
		return nil, models.ErrInvalidVoucher
	}
	r.used[code] = true
	return &models.Voucher{ID: 1, TenantID: tenantID, Code: code, UsedByMAC: &mac, UsedAt: &usedAt, Policy: models.JSONMap{"minutes": 30}}, nil
}

func (r *voucherRepo) UpsertGuestUser(_ context.Context, u *models.GuestUser) (*models.GuestUser, error) {
	return u, nil
}

func (r *voucherRepo) CreateSession(_ context.Context, _ *models.Session) error {
	r.mu.Lock()
	r.sessions++
	r.mu.Unlock()
	return nil
}

func TestRedeemVoucher_ConcurrentRedemptionAdmitsOnce(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)
	repo := &voucherRepo{used: map[string]bool{}}
	d.uc.repo = repo
	d.gw.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	// Act
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.uc.RedeemVoucher(context.Background(), redeemReq("ONCEONLY"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, models.ErrInvalidVoucher) {
				rejected++
			}
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
	assert.Equal(t, 1, repo.sessions)
}

func TestGenerateVouchers_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.repo.EXPECT().GetTenant(gomock.Any(), int64(1)).Return(&models.Tenant{ID: 1, Status: models.TenantActive}, nil)
	d.repo.EXPECT().CreateVouchers(gomock.Any(), gomock.Len(25)).Return(nil)

	// Act
	vouchers, err := d.uc.GenerateVouchers(context.Background(), 1, &models.VoucherBatchRequest{Count: 25, Minutes: 120})

	// Assert
	require.NoError(t, err)
	require.Len(t, vouchers, 25)
	codes := map[string]bool{}
	for _, v := range vouchers {
		assert.Len(t, v.Code, 8)
		assert.Equal(t, models.VoucherActive, v.Status)
		assert.Equal(t, 120, v.Minutes())
		assert.Equal(t, int64(1), v.TenantID)
		codes[v.Code] = true
	}
	assert.Len(t, codes, 25)
}

func TestGenerateVouchers_DefaultMinutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.repo.EXPECT().GetTenant(gomock.Any(), int64(1)).Return(&models.Tenant{ID: 1, Status: models.TenantActive}, nil)
	d.repo.EXPECT().CreateVouchers(gomock.Any(), gomock.Any()).Return(nil)

	vouchers, err := d.uc.GenerateVouchers(context.Background(), 1, &models.VoucherBatchRequest{Count: 1})
	require.NoError(t, err)
	assert.Equal(t, 60, vouchers[0].Minutes())
}

func TestGenerateVouchers_Bounds(t *testing.T) {
	tests := []struct {
		name string
		req  *models.VoucherBatchRequest
	}{
		{"zero count", &models.VoucherBatchRequest{Count: 0}},
		{"over batch limit", &models.VoucherBatchRequest{Count: 101}},
		{"negative minutes", &models.VoucherBatchRequest{Count: 1, Minutes: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newTestUC(ctrl)

			_, err := d.uc.GenerateVouchers(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestGenerateVouchers_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.repo.EXPECT().GetTenant(gomock.Any(), int64(1)).Return(&models.Tenant{ID: 1, Status: models.TenantActive}, nil)
	d.repo.EXPECT().CreateVouchers(gomock.Any(), gomock.Any()).Return(errors.New("unique violation"))

	vouchers, err := d.uc.GenerateVouchers(context.Background(), 1, &models.VoucherBatchRequest{Count: 3})
	assert.Error(t, err)
	assert.Nil(t, vouchers)
}
