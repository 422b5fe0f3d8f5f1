package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWISPrLogin_UsesRequestedMinutes(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	controller := &models.Controller{ID: 5, Type: "ruckus_sz"}
	d.expectResolve(1, 10)
	d.expectAdmission(t, models.AuthMethodWISPr, 45)
	d.repo.EXPECT().GetSSIDWithController(gomock.Any(), int64(10), "Guest").
		Return(&models.SSID{ID: 3, SiteID: 10, Name: "Guest"}, controller, nil)
	d.gw.EXPECT().AuthorizeMAC(gomock.Any(), controller, "Guest", testMAC, 45*time.Minute).
		Return(models.AuthResult{OK: true, Message: "authorized", SessionMS: 2700000})

	// Act
	seed, err := d.uc.WISPrLogin(context.Background(), &models.WISPrLoginRequest{
		TenantID: 1, SiteID: 10, SSID: " Guest ", MAC: "aabb.ccdd.eeff", Minutes: 45,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.AuthMethodWISPr, seed.Method)
	require.NotNil(t, seed.Controller)
	assert.True(t, seed.Controller.OK)
}

func TestWISPrLogin_NegativeMinutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	_, err := d.uc.WISPrLogin(context.Background(), &models.WISPrLoginRequest{
		TenantID: 1, SiteID: 10, MAC: testMAC, Minutes: -1,
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func coaReq() *models.CoARequest {
	return &models.CoARequest{TenantID: 1, SiteID: 10, SSID: "Guest", MAC: testMAC, Reason: "admin"}
}

func TestDisconnect_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	controller := &models.Controller{ID: 5, Type: "cambium_cnmaestro"}
	d.expectResolve(1, 10)
	d.repo.EXPECT().GetSSIDWithController(gomock.Any(), int64(10), "Guest").
		Return(&models.SSID{ID: 3}, controller, nil)
	d.gw.EXPECT().DisconnectMAC(gomock.Any(), controller, "Guest", testMAC, "admin").Return(true)
	d.repo.EXPECT().CloseOpenSessions(gomock.Any(), int64(10), testMAC, fixedNow).Return(int64(2), nil)
	d.gw.EXPECT().AppendEvent(gomock.Any(), int64(1), int64(10), models.EventSessionEnd, gomock.Any()).
		Do(func(_ context.Context, _, _ int64, _ models.EventType, payload models.JSONMap) {
			assert.Equal(t, "admin", payload["reason"])
			assert.Equal(t, int64(2), payload["closed"])
		})

	// Act
	ok, err := d.uc.Disconnect(context.Background(), coaReq())

	// Assert
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDisconnect_ControllerRefusesKeepsSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	controller := &models.Controller{ID: 5}
	d.expectResolve(1, 10)
	d.repo.EXPECT().GetSSIDWithController(gomock.Any(), int64(10), "Guest").
		Return(&models.SSID{ID: 3}, controller, nil)
	d.gw.EXPECT().DisconnectMAC(gomock.Any(), controller, "Guest", testMAC, "admin").Return(false)
	d.repo.EXPECT().CloseOpenSessions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ok, err := d.uc.Disconnect(context.Background(), coaReq())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDisconnect_NoController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().GetSSIDWithController(gomock.Any(), int64(10), "Guest").
		Return(&models.SSID{ID: 3}, nil, nil)

	ok, err := d.uc.Disconnect(context.Background(), coaReq())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDisconnect_UnknownSSID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	d.expectResolve(1, 10)
	d.repo.EXPECT().GetSSIDWithController(gomock.Any(), int64(10), "Guest").
		Return(nil, nil, models.ErrNotFound)

	_, err := d.uc.Disconnect(context.Background(), coaReq())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDisconnect_RequiresSSID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	req := coaReq()
	req.SSID = ""
	_, err := d.uc.Disconnect(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAuthorizeRADIUS(t *testing.T) {
	tests := []struct {
		name     string
		sessions []*models.Session
		err      error
		want     bool
		wantErr  bool
	}{
		{
			name:     "open session within policy",
			sessions: []*models.Session{{StartAt: fixedNow.Add(-20 * time.Minute), Policy: models.JSONMap{"minutes": float64(30)}}},
			want:     true,
		},
		{
			name:     "open session past policy",
			sessions: []*models.Session{{StartAt: fixedNow.Add(-31 * time.Minute), Policy: models.JSONMap{"minutes": float64(30)}}},
			want:     false,
		},
		{
			name:     "policy without minutes uses default",
			sessions: []*models.Session{{StartAt: fixedNow.Add(-59 * time.Minute), Policy: models.JSONMap{}}},
			want:     true,
		},
		{
			name: "any live session is enough",
			sessions: []*models.Session{
				{StartAt: fixedNow.Add(-2 * time.Hour), Policy: models.JSONMap{"minutes": float64(30)}},
				{StartAt: fixedNow.Add(-time.Minute), Policy: models.JSONMap{"minutes": float64(30)}},
			},
			want: true,
		},
		{
			name: "no sessions",
			want: false,
		},
		{
			name:    "repository error",
			err:     errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newTestUC(ctrl)

			d.repo.EXPECT().ListOpenSessionsForSSID(gomock.Any(), "nas-1", "Guest", testMAC).Return(tt.sessions, tt.err)

			ok, err := d.uc.AuthorizeRADIUS(context.Background(), "nas-1", "AA:BB:CC:DD:EE:FF", "Guest")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestAuthorizeRADIUS_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	_, err := d.uc.AuthorizeRADIUS(context.Background(), "nas-1", "not-a-mac", "Guest")
	assert.ErrorIs(t, err, models.ErrInvalidMAC)

	ok, err := d.uc.AuthorizeRADIUS(context.Background(), "nas-1", testMAC, "")
	require.NoError(t, err)
	assert.False(t, ok)

	// an unidentified NAS cannot be mapped to a tenant
	ok, err = d.uc.AuthorizeRADIUS(context.Background(), " ", testMAC, "Guest")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizeRADIUS_OtherTenantSessionRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newTestUC(ctrl)

	// the guest is admitted on tenant 1's GuestWiFi; tenant 2's controller
	// asks about its own GuestWiFi and the scoped lookup finds nothing
	d.repo.EXPECT().ListOpenSessionsForSSID(gomock.Any(), "nas-tenant-2", "GuestWiFi", testMAC).Return(nil, nil)

	// Act
	ok, err := d.uc.AuthorizeRADIUS(context.Background(), "nas-tenant-2", testMAC, "GuestWiFi")

	// Assert
	require.NoError(t, err)
	assert.False(t, ok)
}
