package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 12, cfg.Catalog.DefaultPageLimit)
	assert.Equal(t, 30, cfg.Catalog.DefaultSeedCount)
	assert.Equal(t, "https://api.spoonacular.com", cfg.Spoonacular.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Spoonacular.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("SPOONACULAR_API_KEY", "test-key-1234")
	t.Setenv("DEFAULT_PAGE_LIMIT", "24")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "test-key-1234", cfg.Spoonacular.APIKey)
	assert.Equal(t, 24, cfg.Catalog.DefaultPageLimit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.Spoonacular.BaseURL = "" },
			wantErr: "base URL is required",
		},
		{
			name:    "zero page limit",
			mutate:  func(c *Config) { c.Catalog.DefaultPageLimit = 0 },
			wantErr: "page limit must be positive",
		},
		{
			name:    "zero rate limit window",
			mutate:  func(c *Config) { c.RateLimit.Window = 0 },
			wantErr: "rate limit window must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			err = Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: "5432", User: "app", Password: "secret",
		Name: "pantrychef", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=pantrychef sslmode=disable",
		d.DSN())
}

func TestRedisAddr(t *testing.T) {
	assert.Equal(t, "", RedisConfig{}.Addr())
	assert.Equal(t, "cache:6379", RedisConfig{Host: "cache", Port: "6379"}.Addr())
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", MaskKey("short"))
	assert.Equal(t, "abcd...wxyz", MaskKey("abcd123456wxyz"))
}
