package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	countermocks "github.com/piresc/guestportal/internal/pkg/counter/mocks"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/services/portal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const testMAC = "aa:bb:cc:dd:ee:ff"

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret", Issuer: "guestportal"},
		Portal: models.PortalConfig{
			SessionMinutes:  60,
			OTPTTL:          10 * time.Minute,
			OTPIssueWindow:  time.Minute,
			MaxVoucherBatch: 100,
		},
	}
}

type testDeps struct {
	uc      *portalUC
	repo    *mocks.MockPortalRepo
	gw      *mocks.MockPortalGW
	counter *countermocks.MockStore
}

func newTestUC(ctrl *gomock.Controller) *testDeps {
	repo := mocks.NewMockPortalRepo(ctrl)
	gw := mocks.NewMockPortalGW(ctrl)
	store := countermocks.NewMockStore(ctrl)
	uc := NewPortalUC(testConfig(), repo, gw, store, nil).(*portalUC)
	uc.now = func() time.Time { return fixedNow }
	return &testDeps{uc: uc, repo: repo, gw: gw, counter: store}
}

func (d *testDeps) expectResolve(tenantID, siteID int64) {
	d.repo.EXPECT().GetTenant(gomock.Any(), tenantID).
		Return(&models.Tenant{ID: tenantID, Status: "active", Secret: "tenant-secret"}, nil)
	d.repo.EXPECT().GetSite(gomock.Any(), tenantID, siteID).
		Return(&models.Site{ID: siteID, TenantID: tenantID}, nil)
}

// expectAdmission expects the guest upsert, session insert and session_start event
func (d *testDeps) expectAdmission(t *testing.T, method models.AuthMethod, minutes int) *models.Session {
	created := &models.Session{}
	d.repo.EXPECT().UpsertGuestUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.GuestUser) (*models.GuestUser, error) {
			assert.Equal(t, testMAC, u.MAC)
			assert.NotEmpty(t, u.MACHash)
			assert.NotEqual(t, testMAC, u.MACHash)
			return u, nil
		})
	d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Session) error {
			assert.Equal(t, string(method), s.Policy["type"])
			assert.Equal(t, minutes, s.Policy["minutes"])
			assert.Equal(t, fixedNow, s.StartAt)
			assert.Nil(t, s.EndAt)
			*created = *s
			return nil
		})
	d.gw.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), gomock.Any(), models.EventSessionStart, gomock.Any())
	return created
}

func TestClickthrough_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	session := d.expectAdmission(t, models.AuthMethodClickthrough, 60)

	// Act
	seed, err := d.uc.Clickthrough(context.Background(), &models.ClickthroughRequest{
		TenantID: 1, SiteID: 10, MAC: "AA-BB-CC-DD-EE-FF", IP: "10.0.0.5",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, session.ID, seed.SessionID)
	assert.Equal(t, testMAC, seed.MAC)
	assert.Equal(t, models.AuthMethodClickthrough, seed.Method)
	assert.NotEmpty(t, seed.Token)
	assert.Equal(t, fixedNow.Add(time.Hour).Unix(), seed.ExpiresAt)
	assert.Nil(t, seed.Controller)
	require.NotNil(t, session.IP)
	assert.Equal(t, "10.0.0.5", *session.IP)
}

func TestClickthrough_InvalidMAC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	_, err := d.uc.Clickthrough(context.Background(), &models.ClickthroughRequest{TenantID: 1, SiteID: 10, MAC: "nope"})
	assert.ErrorIs(t, err, models.ErrInvalidMAC)
}

func TestClickthrough_SiteOfOtherTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.repo.EXPECT().GetTenant(gomock.Any(), int64(1)).Return(&models.Tenant{ID: 1, Status: models.TenantActive}, nil)
	d.repo.EXPECT().GetSite(gomock.Any(), int64(1), int64(99)).Return(nil, models.ErrNotFound)

	_, err := d.uc.Clickthrough(context.Background(), &models.ClickthroughRequest{TenantID: 1, SiteID: 99, MAC: testMAC})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAdmit_MissingIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	_, err := d.uc.Admit(context.Background(), 0, 10, testMAC, models.AuthMethodClickthrough, models.MethodResult{})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAdmit_ControllerFailureDoesNotAbort(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.expectAdmission(t, models.AuthMethodClickthrough, 60)
	controller := &models.Controller{ID: 5, Type: "ruckus_sz"}
	d.repo.EXPECT().GetSSIDWithController(gomock.Any(), int64(10), "Guest").
		Return(&models.SSID{ID: 3, Name: "Guest"}, controller, nil)
	d.gw.EXPECT().AuthorizeMAC(gomock.Any(), controller, "Guest", testMAC, time.Hour).
		Return(models.AuthResult{OK: false, Message: "controller timeout"})

	// Act
	seed, err := d.uc.Admit(context.Background(), 1, 10, testMAC, models.AuthMethodClickthrough, models.MethodResult{SSID: "Guest"})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, seed.Controller)
	assert.False(t, seed.Controller.OK)
	assert.Equal(t, "controller timeout", seed.Controller.Message)
}

func TestAdmit_ControllerAuthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.expectAdmission(t, models.AuthMethodClickthrough, 60)
	controller := &models.Controller{ID: 5, Type: "cambium_cnmaestro"}
	d.repo.EXPECT().GetSSIDWithController(gomock.Any(), int64(10), "Guest").
		Return(&models.SSID{ID: 3, Name: "Guest"}, controller, nil)
	d.gw.EXPECT().AuthorizeMAC(gomock.Any(), controller, "Guest", testMAC, time.Hour).
		Return(models.AuthResult{OK: true, Message: "authorized(test)", SessionMS: 3600000})

	seed, err := d.uc.Admit(context.Background(), 1, 10, testMAC, models.AuthMethodClickthrough, models.MethodResult{SSID: "Guest"})

	require.NoError(t, err)
	assert.True(t, seed.Controller.OK)
}

func TestAdmit_UnknownSSIDIsSoftFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.expectAdmission(t, models.AuthMethodClickthrough, 60)
	d.repo.EXPECT().GetSSIDWithController(gomock.Any(), int64(10), "Nope").Return(nil, nil, models.ErrNotFound)

	seed, err := d.uc.Admit(context.Background(), 1, 10, testMAC, models.AuthMethodClickthrough, models.MethodResult{SSID: "Nope"})

	require.NoError(t, err)
	assert.False(t, seed.Controller.OK)
	assert.Equal(t, "ssid not configured", seed.Controller.Message)
}

func TestAdmit_SessionFailureLeavesNoEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().UpsertGuestUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.GuestUser) (*models.GuestUser, error) { return u, nil })
	d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := d.uc.Admit(context.Background(), 1, 10, testMAC, models.AuthMethodClickthrough, models.MethodResult{})
	assert.Error(t, err)
}

func TestAdmit_ExistingGuestKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().UpsertGuestUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.GuestUser) (*models.GuestUser, error) {
			existing := *u
			existing.ID = "existing-guest"
			return &existing, nil
		})
	d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Session) error {
			assert.Equal(t, "existing-guest", s.GuestUserID)
			return nil
		})
	d.gw.EXPECT().AppendEvent(gomock.Any(), int64(1), int64(10), models.EventSessionStart, gomock.Any())

	seed, err := d.uc.Admit(context.Background(), 1, 10, testMAC, models.AuthMethodClickthrough, models.MethodResult{})
	require.NoError(t, err)
	assert.Equal(t, "existing-guest", seed.GuestUserID)
}

func TestAdmit_NoJWTSecretStillAdmits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)
	d.uc.cfg.JWT.Secret = ""

	d.expectResolve(1, 10)
	d.expectAdmission(t, models.AuthMethodClickthrough, 60)

	seed, err := d.uc.Admit(context.Background(), 1, 10, testMAC, models.AuthMethodClickthrough, models.MethodResult{})
	require.NoError(t, err)
	assert.Empty(t, seed.Token)
	assert.NotEmpty(t, seed.SessionID)
}

func TestGetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.repo.EXPECT().GetSession(gomock.Any(), "s-1").Return(&models.Session{ID: "s-1"}, nil)

	s, err := d.uc.GetSession(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", s.ID)

	_, err = d.uc.GetSession(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSplash(t *testing.T) {
	t.Run("published page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newTestUC(ctrl)

		d.expectResolve(1, 10)
		d.repo.EXPECT().GetPublishedPage(gomock.Any(), int64(1), int64(10)).
			Return(&models.Page{ID: 4, HTML: "<h1>Hi</h1>"}, nil)
		d.gw.EXPECT().AppendEvent(gomock.Any(), int64(1), int64(10), models.EventSplashView, models.JSONMap{})

		page, err := d.uc.Splash(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hi</h1>", page.HTML)
	})

	t.Run("no published page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newTestUC(ctrl)

		d.expectResolve(1, 10)
		d.repo.EXPECT().GetPublishedPage(gomock.Any(), int64(1), int64(10)).Return(nil, models.ErrNotFound)

		_, err := d.uc.Splash(context.Background(), 1, 10)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
