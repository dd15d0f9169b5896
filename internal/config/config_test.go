package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("AMQP_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, defaultBcryptCost, cfg.BcryptCost)
	assert.Equal(t, defaultEventsExchange, cfg.Events.Exchange)
	assert.Empty(t, cfg.Events.AMQPURL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.GreaterOrEqual(t, cfg.RateLimit.TTL, 5*cfg.RateLimit.RefillInterval)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_ACCESS_TTL")
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_ProdRejectsTestPayments(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("PAYMENT_IS_TEST", "true")

	_, err := Load()
	assert.ErrorContains(t, err, "PAYMENT_IS_TEST")
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://app.gestidogs.fr, ,https://admin.gestidogs.fr ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.gestidogs.fr", "https://admin.gestidogs.fr"}, cfg.CORSAllowedOrigins)
}
