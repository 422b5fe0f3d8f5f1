package models

import "time"

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	EventBus    EventBusConfig
	JWT         JWTConfig
	NewRelic    NewRelicConfig
	Logger      LoggerConfig
	Portal      PortalConfig
	Ads         AdsConfig
	Controllers ControllersConfig
	Events      EventsConfig
	Radius      RadiusConfig
	Admin       AdminConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// EventBusConfig selects the broker that receives domain events.
// Driver is one of "nats", "nsq" or "none".
type EventBusConfig struct {
	Driver        string
	NATSURL       string
	NSQAddr       string
	SubjectPrefix string
}

// JWTConfig contains guest session token configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PortalConfig tunes guest admission.
type PortalConfig struct {
	SessionMinutes  int
	OTPTTL          time.Duration
	OTPIssueWindow  time.Duration
	ExposeDevOTP    bool
	AuthRateLimit   int
	AuthRatePeriod  time.Duration
	MaxVoucherBatch int
}

// AdsConfig tunes the ad decision engine.
type AdsConfig struct {
	FreqCapPerHour int
	CapWindow      time.Duration
	PacingWindow   time.Duration
}

// ControllersConfig configures the vendor controller gateways.
type ControllersConfig struct {
	TestMode        bool
	Timeout         time.Duration
	MaxRetries      int
	RuckusAPIPrefix string
}

// EventsConfig configures public event ingestion.
type EventsConfig struct {
	AllowUnsigned bool
}

// RadiusConfig configures the MAC-auth RADIUS listener.
type RadiusConfig struct {
	Enabled bool
	Addr    string
	Secret  string
}

// AdminConfig protects the operator API.
type AdminConfig struct {
	APIKey string
}
