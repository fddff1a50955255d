package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Store       StoreConfig     `mapstructure:"store"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Weather     WeatherConfig   `mapstructure:"weather"`
	Menu        MenuConfig      `mapstructure:"menu"`
	Suggest     SuggestConfig   `mapstructure:"suggest"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// StoreConfig 食譜資料庫配置
type StoreConfig struct {
	Path         string        `mapstructure:"path"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	BusyTimeout  time.Duration `mapstructure:"busy_timeout"`
}

// CacheConfig 緩存配置
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"` // memory | redis
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	CatalogTTL      time.Duration `mapstructure:"catalog_ttl"`
	Redis           RedisConfig   `mapstructure:"redis"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// WeatherConfig 天氣預報 API 配置
type WeatherConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Host         string        `mapstructure:"host"`
	Location     string        `mapstructure:"location"`
	Timeout      time.Duration `mapstructure:"timeout"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	HotThreshold float64       `mapstructure:"hot_threshold"` // °F
}

// MenuConfig 晚餐菜單配置
type MenuConfig struct {
	DefaultDays int `mapstructure:"default_days"`
	MaxDays     int `mapstructure:"max_days"`
}

// SuggestConfig 食材自動完成配置
type SuggestConfig struct {
	Threshold float64 `mapstructure:"threshold"`
	Limit     int     `mapstructure:"limit"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件（不存在時忽略）
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	// 設定預設值
	setDefaults(v)

	// 設定環境變數前綴
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 綁定環境變量
	bindings := map[string]string{
		"server.port":          "PORT",
		"store.path":           "DB_PATH",
		"cache.enabled":        "CACHE_ENABLED",
		"cache.backend":        "CACHE_BACKEND",
		"cache.redis.addr":     "REDIS_ADDR",
		"cache.redis.password": "REDIS_PASSWORD",
		"weather.api_key":      "RAPID_API_FORECAST_KEY",
		"weather.location":     "WEATHER_LOCATION",
		"rate_limit.enabled":   "RATE_LIMIT_ENABLED",
		"rate_limit.requests":  "RATE_LIMIT_REQUESTS",
		"rate_limit.window":    "RATE_LIMIT_WINDOW",
		"dedup_window":         "DEDUP_WINDOW",
		"log_level":            "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// 設定設定檔名稱和路徑
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// 讀取設定檔
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 解析設定
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "dinner-menu")

	// 伺服器設定
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.max_body_bytes", 1<<20) // 1MB
	v.SetDefault("server.cors_origins", []string{"*"})

	// 資料庫設定
	v.SetDefault("store.path", "data/recipes.db")
	v.SetDefault("store.max_open_conns", 1)
	v.SetDefault("store.busy_timeout", "5s")

	// 快取設定
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.max_size", 1000)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.cleanup_interval", "10m")
	v.SetDefault("cache.catalog_ttl", "5m")
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.prefix", "dinner-menu:")

	// 天氣設定
	v.SetDefault("weather.base_url", "https://weatherapi-com.p.rapidapi.com")
	v.SetDefault("weather.host", "weatherapi-com.p.rapidapi.com")
	v.SetDefault("weather.location", "Spokane")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("weather.cache_ttl", "30m")
	v.SetDefault("weather.hot_threshold", 90.0)

	// 菜單設定
	v.SetDefault("menu.default_days", 7)
	v.SetDefault("menu.max_days", 14)

	// 自動完成設定
	v.SetDefault("suggest.threshold", 0.4)
	v.SetDefault("suggest.limit", 8)

	// 限流設定
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("dedup_window", "1s")
	v.SetDefault("log_level", "info")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes")
	}

	if strings.TrimSpace(config.Store.Path) == "" {
		return fmt.Errorf("store path is required")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
		switch config.Cache.Backend {
		case "memory":
		case "redis":
			if config.Cache.Redis.Addr == "" {
				return fmt.Errorf("redis addr is required for the redis cache backend")
			}
		default:
			return fmt.Errorf("unknown cache backend: %q", config.Cache.Backend)
		}
	}
	if config.Cache.CatalogTTL < 0 {
		return fmt.Errorf("invalid catalog ttl")
	}

	// 驗證菜單設定
	if config.Menu.MaxDays < 1 || config.Menu.MaxDays > 14 {
		return fmt.Errorf("menu max days must be between 1 and 14")
	}
	if config.Menu.DefaultDays < 1 || config.Menu.DefaultDays > config.Menu.MaxDays {
		return fmt.Errorf("menu default days must be between 1 and %d", config.Menu.MaxDays)
	}

	// 驗證自動完成設定
	if config.Suggest.Threshold < 0 || config.Suggest.Threshold > 1 {
		return fmt.Errorf("suggest threshold must be between 0 and 1")
	}
	if config.Suggest.Limit <= 0 {
		return fmt.Errorf("invalid suggest limit")
	}

	if config.RateLimit.Enabled && (config.RateLimit.Requests <= 0 || config.RateLimit.Window <= 0) {
		return fmt.Errorf("invalid rate limit settings")
	}

	return nil
}
