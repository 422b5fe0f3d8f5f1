package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig(maxRetries int) Config {
	cfg := DefaultConfig()
	cfg.MaxRetries = maxRetries
	cfg.BaseDelay = time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestRetrier_SucceedsAfterFailure(t *testing.T) {
	calls := 0
	r := New(fastConfig(2))

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetrier_GivesUp(t *testing.T) {
	calls := 0
	r := New(fastConfig(1))
	base := errors.New("down")

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return base
	})

	assert.ErrorIs(t, err, base)
	assert.Equal(t, 2, calls)
}

func TestRetrier_NonRetryableStops(t *testing.T) {
	calls := 0
	cfg := fastConfig(3)
	permanent := errors.New("bad request")
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, permanent) }
	r := New(cfg)

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetrier_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(fastConfig(3)).Execute(ctx, func(context.Context) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
}
