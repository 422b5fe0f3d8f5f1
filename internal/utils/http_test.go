package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := SuccessResponse(c, http.StatusCreated, "Vouchers created", map[string]interface{}{"count": 2})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Vouchers created", body["message"])
}

func TestErrorResponseHandler(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, UnauthorizedResponse(c, ""))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Unauthorized", body.Error)
	assert.Equal(t, http.StatusUnauthorized, body.Code)
}

func TestDomainErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"rate limited", models.ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{"wrapped otp", fmt.Errorf("verify: %w", models.ErrInvalidOrExpired), http.StatusBadRequest, "invalid_or_expired"},
		{"voucher", models.ErrInvalidVoucher, http.StatusBadRequest, "invalid_voucher"},
		{"mac", models.ErrInvalidMAC, http.StatusBadRequest, "invalid_mac"},
		{"signature", models.ErrSignatureMismatch, http.StatusUnauthorized, "signature_mismatch"},
		{"unsigned", models.ErrUnsignedEvent, http.StatusUnauthorized, "signature_required"},
		{"not found", fmt.Errorf("tenant 9: %w", models.ErrNotFound), http.StatusNotFound, "not_found"},
		{"suspended tenant", fmt.Errorf("tenant 3: %w", models.ErrTenantInactive), http.StatusForbidden, "tenant_inactive"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := DomainErrorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestDomainErrorResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, DomainErrorResponse(c, models.ErrRateLimited))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"rate_limited"}`, rec.Body.String())
}
