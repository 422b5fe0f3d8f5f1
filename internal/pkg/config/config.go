package config

import (
	"log"
	"strings"
	"time"

	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is local
// the dotenv-style file at configPath is merged in first.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if GetEnv(v, "APP_ENV", "local") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv(v, "APP_NAME", "guestportal")
	configs.App.Environment = GetEnv(v, "APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool(v, "APP_DEBUG", false)
	configs.App.Version = GetEnv(v, "APP_VERSION", "dev")

	// Server config
	configs.Server.Host = GetEnv(v, "SERVER_HOST", "0.0.0.0")
	configs.Server.Port = GetEnvAsInt(v, "SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt(v, "SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt(v, "SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt(v, "SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv(v, "DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv(v, "DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt(v, "DB_PORT", 5432)
	configs.Database.Username = GetEnv(v, "DB_USERNAME", "postgres")
	configs.Database.Password = GetEnv(v, "DB_PASSWORD", "")
	configs.Database.Database = GetEnv(v, "DB_DATABASE", "guestportal")
	configs.Database.SSLMode = GetEnv(v, "DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt(v, "DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt(v, "DB_IDLE_CONNS", 5)
	configs.Database.AutoMigrate = GetEnvAsBool(v, "DB_AUTO_MIGRATE", true)

	// Redis config
	configs.Redis.Host = GetEnv(v, "REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt(v, "REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv(v, "REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt(v, "REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt(v, "REDIS_POOL_SIZE", 10)

	// Event bus config
	configs.EventBus.Driver = GetEnv(v, "EVENT_BUS", "none")
	configs.EventBus.NATSURL = GetEnv(v, "NATS_URL", "nats://localhost:4222")
	configs.EventBus.NSQAddr = GetEnv(v, "NSQ_ADDR", "localhost:4150")
	configs.EventBus.SubjectPrefix = GetEnv(v, "EVENT_BUS_PREFIX", "portal")

	// JWT config
	configs.JWT.Secret = GetEnv(v, "JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv(v, "JWT_ISSUER", "guestportal")

	// New Relic config
	configs.NewRelic.LicenseKey = GetEnv(v, "NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv(v, "NEW_RELIC_APP_NAME", "guestportal")
	configs.NewRelic.Enabled = GetEnvAsBool(v, "NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool(v, "NEW_RELIC_LOGS_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv(v, "LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv(v, "LOG_FILE_PATH", "")

	// Portal config
	configs.Portal.SessionMinutes = GetEnvAsInt(v, "PORTAL_SESSION_MINUTES", 60)
	configs.Portal.OTPTTL = GetEnvAsDuration(v, "PORTAL_OTP_TTL", 10*time.Minute)
	configs.Portal.OTPIssueWindow = GetEnvAsDuration(v, "PORTAL_OTP_ISSUE_WINDOW", time.Minute)
	configs.Portal.ExposeDevOTP = GetEnvAsBool(v, "PORTAL_EXPOSE_DEV_OTP", false)
	configs.Portal.AuthRateLimit = GetEnvAsInt(v, "PORTAL_AUTH_RATE_LIMIT", 30)
	configs.Portal.AuthRatePeriod = GetEnvAsDuration(v, "PORTAL_AUTH_RATE_PERIOD", time.Minute)
	configs.Portal.MaxVoucherBatch = GetEnvAsInt(v, "PORTAL_MAX_VOUCHER_BATCH", 1000)

	// Ads config
	configs.Ads.FreqCapPerHour = GetEnvAsInt(v, "ADS_FREQ_CAP_PER_HOUR", 3)
	configs.Ads.CapWindow = GetEnvAsDuration(v, "ADS_CAP_WINDOW", time.Hour)
	configs.Ads.PacingWindow = GetEnvAsDuration(v, "ADS_PACING_WINDOW", 10*time.Second)

	// Controller config
	configs.Controllers.TestMode = GetEnvAsBool(v, "CONTROLLERS_TEST_MODE", true)
	configs.Controllers.Timeout = GetEnvAsDuration(v, "CONTROLLERS_TIMEOUT", 5*time.Second)
	configs.Controllers.MaxRetries = GetEnvAsInt(v, "CONTROLLERS_MAX_RETRIES", 1)
	configs.Controllers.RuckusAPIPrefix = GetEnv(v, "RUCKUS_API_PREFIX", "/api/public/v6_1")

	// Events config
	configs.Events.AllowUnsigned = GetEnvAsBool(v, "EVENTS_ALLOW_UNSIGNED", false)

	// RADIUS config
	configs.Radius.Enabled = GetEnvAsBool(v, "RADIUS_ENABLED", false)
	configs.Radius.Addr = GetEnv(v, "RADIUS_ADDR", ":1812")
	configs.Radius.Secret = GetEnv(v, "RADIUS_SECRET", "")

	// Admin config
	configs.Admin.APIKey = GetEnv(v, "ADMIN_API_KEY", "")

	return configs
}

// GetEnv returns the value for key or defaultValue when it is unset
func GetEnv(v *viper.Viper, key, defaultValue string) string {
	if !v.IsSet(key) {
		return defaultValue
	}
	if value := v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt returns an integer value for key or defaultValue
func GetEnvAsInt(v *viper.Viper, key string, defaultValue int) int {
	if !v.IsSet(key) || v.GetString(key) == "" {
		return defaultValue
	}
	return v.GetInt(key)
}

// GetEnvAsBool returns a boolean value for key or defaultValue
func GetEnvAsBool(v *viper.Viper, key string, defaultValue bool) bool {
	if !v.IsSet(key) || v.GetString(key) == "" {
		return defaultValue
	}
	return v.GetBool(key)
}

// GetEnvAsDuration parses a Go duration string such as "10s" for key
func GetEnvAsDuration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	if !v.IsSet(key) || v.GetString(key) == "" {
		return defaultValue
	}
	d := v.GetDuration(key)
	if d <= 0 && v.GetString(key) != "0" && v.GetString(key) != "0s" {
		return defaultValue
	}
	return d
}
