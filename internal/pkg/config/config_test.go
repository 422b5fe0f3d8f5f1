package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, 3, cfg.Ads.FreqCapPerHour)
	assert.Equal(t, 10*time.Second, cfg.Ads.PacingWindow)
	assert.Equal(t, time.Hour, cfg.Ads.CapWindow)
	assert.Equal(t, 10*time.Minute, cfg.Portal.OTPTTL)
	assert.Equal(t, time.Minute, cfg.Portal.OTPIssueWindow)
	assert.True(t, cfg.Controllers.TestMode)
	assert.Equal(t, 5*time.Second, cfg.Controllers.Timeout)
	assert.Equal(t, "/api/public/v6_1", cfg.Controllers.RuckusAPIPrefix)
	assert.Equal(t, "none", cfg.EventBus.Driver)
	assert.False(t, cfg.Events.AllowUnsigned)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("ADS_PACING_WINDOW", "0s")
	t.Setenv("ADS_FREQ_CAP_PER_HOUR", "5")
	t.Setenv("CONTROLLERS_TEST_MODE", "false")
	t.Setenv("EVENT_BUS", "nats")

	cfg := InitConfig("")

	assert.Equal(t, time.Duration(0), cfg.Ads.PacingWindow)
	assert.Equal(t, 5, cfg.Ads.FreqCapPerHour)
	assert.False(t, cfg.Controllers.TestMode)
	assert.Equal(t, "nats", cfg.EventBus.Driver)
}

func TestInitConfig_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=9090\nADMIN_API_KEY=secret\n"), 0o600))
	t.Setenv("APP_ENV", "local")

	cfg := InitConfig(path)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Admin.APIKey)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	v := viper.New()
	v.Set("SOME_WINDOW", "not-a-duration")

	assert.Equal(t, 3*time.Second, GetEnvAsDuration(v, "SOME_WINDOW", 3*time.Second))
}
