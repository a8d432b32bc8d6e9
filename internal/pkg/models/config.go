package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Payments PaymentsConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
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
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AdminConfig holds the platform administrator credentials
type AdminConfig struct {
	Username     string
	PasswordHash string // bcrypt
}

// PaymentsConfig tunes the payment request lifecycle
type PaymentsConfig struct {
	RequestTTLMinutes    int
	ReferenceLength      int
	MaxReferenceAttempts int
	StoreTimeoutSeconds  int
	ExpireBatchSize      int
	DefaultProvider      string
	Templates            map[string]string // provider -> fallback dial template
	QRCodeDir            string
	QRCodeSize           int
	PublicBaseURL        string
	ConfirmationBaseURL  string
	SettingsCacheSeconds int
	LoginRateLimit       int
	LoginRatePeriodSecs  int
}

// RequestTTL returns the age after which a pending request expires
func (p PaymentsConfig) RequestTTL() time.Duration {
	return time.Duration(p.RequestTTLMinutes) * time.Minute
}

// StoreTimeout returns the deadline applied to each store call
func (p PaymentsConfig) StoreTimeout() time.Duration {
	if p.StoreTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(p.StoreTimeoutSeconds) * time.Second
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
