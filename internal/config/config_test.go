package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.False(t, cfg.Debug)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
}

func TestNewFromEnvironment(t *testing.T) {
	os.Clearenv()
	t.Setenv("IBE_MOCK_HTTP_PORT", "9191")
	t.Setenv("IBE_MOCK_DEBUG", "true")
	t.Setenv("IBE_MOCK_DEFAULT_CURRENCY", "EUR")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.HTTPPort)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting()
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Debug)
}
