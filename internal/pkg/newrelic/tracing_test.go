package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_DisabledReturnsNil(t *testing.T) {
	assert.Nil(t, InitNewRelic(&models.Config{}))
	assert.Nil(t, InitNewRelic(&models.Config{NewRelic: models.NewRelicConfig{Enabled: true}}))
}

func TestEchoMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(EchoMiddleware(nil))
	e.GET("/", func(c echo.Context) error {
		txn := FromEchoContext(c)
		assert.Nil(t, txn)
		SetTransactionName(txn, "x")
		AddTransactionAttribute(txn, "k", "v")
		NoticeTransactionError(txn, errors.New("ignored"))
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWithSegment_WithoutTransaction(t *testing.T) {
	called := false
	err := WithSegment(context.Background(), "seg", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestInstrumentPublish_WithoutTransaction(t *testing.T) {
	err := InstrumentPublish(context.Background(), "NATS", "portal.events", func() error {
		return errors.New("broker down")
	})
	assert.EqualError(t, err, "broker down")
}
