package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutEnvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5.00", cfg.PricingBaseFee.StringFixed(2))
	assert.InDelta(t, 3.0, cfg.PricingRadiusKm, 1e-9)
	assert.Equal(t, 15*time.Minute, cfg.PaymentTokenTTL)
	assert.Nil(t, cfg.MerchantLat)
	assert.Empty(t, cfg.KafkaBrokers())
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"JWT_SECRET=file-secret\n"+
			"PRICING_BASE_FEE=7.5\n"+
			"MERCHANT_LATITUDE=-12.05\n"+
			"MERCHANT_LONGITUDE=-77.04\n"+
			"KAFKA_HOST=k1:9092, k2:9092\n"+
			"ASSIGN_TIMEOUT=750ms\n",
	), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"JWT_SECRET", "PRICING_BASE_FEE", "MERCHANT_LATITUDE", "MERCHANT_LONGITUDE", "KAFKA_HOST", "ASSIGN_TIMEOUT"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "7.50", cfg.PricingBaseFee.StringFixed(2))
	require.NotNil(t, cfg.MerchantLat)
	assert.InDelta(t, -12.05, *cfg.MerchantLat, 1e-9)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
	assert.Equal(t, 750*time.Millisecond, cfg.AssignTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ASSIGN_TIMEOUT", "soon")
	t.Setenv("MERCHANT_LATITUDE", "-12.05")
	t.Setenv("MERCHANT_LONGITUDE", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "JWT_SECRET is required")
	assert.ErrorContains(t, err, "ASSIGN_TIMEOUT")
	assert.ErrorContains(t, err, "must be set together")
}

func TestConfig_ConnectionStrings(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", cfg.MigrateURL())
}
