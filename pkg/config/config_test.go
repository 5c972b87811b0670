package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "inventario-console", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8090", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:8080", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 25*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 8, cfg.Upstream.MaxConcurrency)
	assert.NotEmpty(t, cfg.JWT.Secret, "en desarrollo se usa un secreto por defecto")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("UPSTREAM_BASE_URL", "https://seller.example.com/")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "40s")
	t.Setenv("UPSTREAM_MAX_CONCURRENCY", "0")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "https://seller.example.com", cfg.Upstream.BaseURL, "se recorta la barra final")
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 40*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 1, cfg.Upstream.MaxConcurrency, "concurrencia no positiva se normaliza a 1")
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}
