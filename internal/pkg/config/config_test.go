package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "ChadPay", cfg.App.Name)
	assert.Equal(t, 15, cfg.Payments.RequestTTLMinutes)
	assert.Equal(t, 5, cfg.Payments.MaxReferenceAttempts)
	assert.Equal(t, "airtel_money", cfg.Payments.DefaultProvider)
	assert.Equal(t, DefaultAirtelMoneyTemplate, cfg.Payments.Templates["airtel_money"])
	assert.Equal(t, DefaultMoovCashTemplate, cfg.Payments.Templates["moov_cash"])
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestInitConfig_LoadsEnvFileWhenLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PAYMENTS_REQUEST_TTL_MINUTES=30\nMOOV_CASH_TEMPLATE=*155*{phone}*{amount}*{reference}#\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Cleanup(func() {
		os.Unsetenv("PAYMENTS_REQUEST_TTL_MINUTES")
		os.Unsetenv("MOOV_CASH_TEMPLATE")
	})

	cfg := InitConfig(path)

	assert.Equal(t, 30, cfg.Payments.RequestTTLMinutes)
	assert.Equal(t, "*155*{phone}*{amount}*{reference}#", cfg.Payments.Templates["moov_cash"])
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CHADPAY_TEST_INT", "42")
	t.Setenv("CHADPAY_TEST_BAD_INT", "forty-two")
	t.Setenv("CHADPAY_TEST_BOOL", "true")

	assert.Equal(t, 42, GetEnvAsInt("CHADPAY_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("CHADPAY_TEST_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("CHADPAY_TEST_BOOL", false))
	assert.Equal(t, "fallback", GetEnv("CHADPAY_TEST_MISSING", "fallback"))
}
