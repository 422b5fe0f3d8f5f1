package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() models.JWTConfig {
	return models.JWTConfig{Secret: "test-secret-key-for-jwt-signing", Issuer: "guestportal-test"}
}

func testSeed(start time.Time) *models.SessionSeed {
	return &models.SessionSeed{
		SessionID:   "7a3c1f9e-2b4d-4e5f-8a6b-9c0d1e2f3a4b",
		GuestUserID: "0b1c2d3e-4f50-6172-8394-a5b6c7d8e9f0",
		TenantID:    1,
		SiteID:      2,
		Method:      models.AuthMethodVoucher,
		StartAt:     start,
		Minutes:     30,
	}
}

func TestGenerateAndValidateGuestToken(t *testing.T) {
	start := time.Now().UTC().Truncate(time.Second)

	token, exp, err := GenerateGuestToken(testSeed(start), testConfig())
	require.NoError(t, err)
	assert.Equal(t, start.Add(30*time.Minute).Unix(), exp)

	claims, err := ValidateGuestToken(token, testConfig())
	require.NoError(t, err)
	assert.Equal(t, "7a3c1f9e-2b4d-4e5f-8a6b-9c0d1e2f3a4b", claims.SessionID)
	assert.Equal(t, int64(1), claims.TenantID)
	assert.Equal(t, int64(2), claims.SiteID)
	assert.Equal(t, "voucher", claims.Method)
	assert.Equal(t, "0b1c2d3e-4f50-6172-8394-a5b6c7d8e9f0", claims.Subject)
}

func TestGenerateGuestToken_NoSecret(t *testing.T) {
	_, _, err := GenerateGuestToken(testSeed(time.Now()), models.JWTConfig{})

	assert.Error(t, err)
}

func TestValidateGuestToken_Rejects(t *testing.T) {
	start := time.Now().UTC()
	good, _, err := GenerateGuestToken(testSeed(start), testConfig())
	require.NoError(t, err)

	expired, _, err := GenerateGuestToken(testSeed(start.Add(-2*time.Hour)), testConfig())
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, GuestClaims{SessionID: "x"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		cfg   models.JWTConfig
	}{
		{"wrong secret", good, models.JWTConfig{Secret: "other", Issuer: "guestportal-test"}},
		{"wrong issuer", good, models.JWTConfig{Secret: testConfig().Secret, Issuer: "someone-else"}},
		{"expired", expired, testConfig()},
		{"alg none", unsigned, testConfig()},
		{"garbage", "not.a.token", testConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateGuestToken(tt.token, tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
