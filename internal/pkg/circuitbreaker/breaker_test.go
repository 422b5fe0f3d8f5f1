package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func failing(context.Context) error { return errBoom }
func passing(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cfg := DefaultConfig("ctrl")
	cfg.FailureThreshold = 2
	var transitions []State
	cfg.OnStateChange = func(_ string, _, to State) { transitions = append(transitions, to) }
	cb := New(cfg)

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errBoom)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errBoom)
	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(context.Background(), passing)
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.Equal(t, []State{StateOpen}, transitions)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cfg := DefaultConfig("ctrl")
	cfg.FailureThreshold = 1
	cfg.Timeout = time.Second
	cb := New(cfg)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return now }

	_ = cb.Execute(context.Background(), failing)
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	assert.NoError(t, cb.Execute(context.Background(), passing))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cfg := DefaultConfig("ctrl")
	cfg.FailureThreshold = 1
	cfg.Timeout = time.Second
	cb := New(cfg)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return now }

	_ = cb.Execute(context.Background(), failing)
	now = now.Add(2 * time.Second)
	_ = cb.Execute(context.Background(), failing)

	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_CanceledIsNotFailure(t *testing.T) {
	cfg := DefaultConfig("ctrl")
	cfg.FailureThreshold = 1
	cb := New(cfg)

	_ = cb.Execute(context.Background(), func(context.Context) error { return context.Canceled })

	assert.Equal(t, StateClosed, cb.State())
}

func TestManager_ReusesBreakerPerName(t *testing.T) {
	m := NewManager(DefaultConfig(""))

	a := m.Get("ruckus.example")
	b := m.Get("ruckus.example")
	c := m.Get("cambium.example")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
