package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piresc/chadpay/internal/pkg/models"
)

// Default dial templates used until an admin stores one in settings
const (
	DefaultAirtelMoneyTemplate = "*211*{phone}*{amount}#"
	DefaultMoovCashTemplate    = "*155*1*{phone}*{amount}#"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ChadPay")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "1.0.0")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "0.0.0.0")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 10)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "chadpay")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "chadpay")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 480)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "chadpay")

	// Admin config
	configs.Admin.Username = GetEnv("ADMIN_USERNAME", "admin")
	configs.Admin.PasswordHash = GetEnv("ADMIN_PASSWORD_HASH", "")

	// Payments config
	configs.Payments.RequestTTLMinutes = GetEnvAsInt("PAYMENTS_REQUEST_TTL_MINUTES", 15)
	configs.Payments.ReferenceLength = GetEnvAsInt("PAYMENTS_REFERENCE_LENGTH", 8)
	configs.Payments.MaxReferenceAttempts = GetEnvAsInt("PAYMENTS_MAX_REFERENCE_ATTEMPTS", 5)
	configs.Payments.StoreTimeoutSeconds = GetEnvAsInt("PAYMENTS_STORE_TIMEOUT_SECONDS", 5)
	configs.Payments.ExpireBatchSize = GetEnvAsInt("PAYMENTS_EXPIRE_BATCH_SIZE", 500)
	configs.Payments.DefaultProvider = GetEnv("PAYMENTS_DEFAULT_PROVIDER", "airtel_money")
	configs.Payments.Templates = map[string]string{
		"airtel_money": GetEnv("AIRTEL_MONEY_TEMPLATE", DefaultAirtelMoneyTemplate),
		"moov_cash":    GetEnv("MOOV_CASH_TEMPLATE", DefaultMoovCashTemplate),
	}
	configs.Payments.QRCodeDir = GetEnv("PAYMENTS_QR_CODE_DIR", "static")
	configs.Payments.QRCodeSize = GetEnvAsInt("PAYMENTS_QR_CODE_SIZE", 256)
	configs.Payments.PublicBaseURL = GetEnv("PAYMENTS_PUBLIC_BASE_URL", "")
	configs.Payments.ConfirmationBaseURL = GetEnv("PAYMENTS_CONFIRMATION_BASE_URL", "")
	configs.Payments.SettingsCacheSeconds = GetEnvAsInt("PAYMENTS_SETTINGS_CACHE_SECONDS", 300)
	configs.Payments.LoginRateLimit = GetEnvAsInt("PAYMENTS_LOGIN_RATE_LIMIT", 5)
	configs.Payments.LoginRatePeriodSecs = GetEnvAsInt("PAYMENTS_LOGIN_RATE_PERIOD_SECONDS", 300)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "chadpay")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
