package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.CatalogTTL)
	assert.Equal(t, "Spokane", cfg.Weather.Location)
	assert.InDelta(t, 90.0, cfg.Weather.HotThreshold, 1e-9)
	assert.Equal(t, 7, cfg.Menu.DefaultDays)
	assert.Equal(t, 14, cfg.Menu.MaxDays)
	assert.InDelta(t, 0.4, cfg.Suggest.Threshold, 1e-9)
	assert.Equal(t, 8, cfg.Suggest.Limit)
	assert.Equal(t, time.Second, cfg.DedupWindow)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("RAPID_API_FORECAST_KEY", "test-key-123456")
	t.Setenv("WEATHER_LOCATION", "Seattle")
	t.Setenv("DB_PATH", "/tmp/recipes.db")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("APP_SUGGEST_LIMIT", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key-123456", cfg.Weather.APIKey)
	assert.Equal(t, "Seattle", cfg.Weather.Location)
	assert.Equal(t, "/tmp/recipes.db", cfg.Store.Path)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 5, cfg.Suggest.Limit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache backend")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 8080, MaxBodyBytes: 1024},
			Store:   StoreConfig{Path: "x.db"},
			Cache:   CacheConfig{Enabled: false},
			Menu:    MenuConfig{DefaultDays: 7, MaxDays: 14},
			Suggest: SuggestConfig{Threshold: 0.4, Limit: 8},
		}
	}
	require.NoError(t, validateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }},
		{"store path", func(c *Config) { c.Store.Path = " " }},
		{"max days", func(c *Config) { c.Menu.MaxDays = 15 }},
		{"default days", func(c *Config) { c.Menu.DefaultDays = 20 }},
		{"threshold", func(c *Config) { c.Suggest.Threshold = 1.5 }},
		{"limit", func(c *Config) { c.Suggest.Limit = 0 }},
		{"cache size", func(c *Config) { c.Cache = CacheConfig{Enabled: true, Backend: "memory", TTL: time.Minute, CleanupInterval: time.Minute} }},
		{"rate limit", func(c *Config) { c.RateLimit = RateLimitConfig{Enabled: true} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, validateConfig(c))
		})
	}
}
