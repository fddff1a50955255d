package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"
)

// Store 緩存儲存介面，找不到鍵時返回 common.ErrCacheMiss
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New 依設定建立緩存；停用時返回 Noop
func New(cfg *config.CacheConfig) (Store, error) {
	if !cfg.Enabled {
		common.LogInfo("Cache disabled")
		return Noop{}, nil
	}
	switch cfg.Backend {
	case "redis":
		return NewRedisStore(cfg)
	case "memory", "":
		return NewManager(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cfg.Backend)
	}
}

// GetJSON 讀取並解析 JSON 緩存
func GetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := common.ParseJSONBytes(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	return nil
}

// SetJSON 序列化為 JSON 後寫入緩存
func SetJSON(ctx context.Context, s Store, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.Set(ctx, key, data, ttl)
}

// Noop 停用緩存時使用，永遠未命中
type Noop struct{}

// Get 永遠返回 ErrCacheMiss
func (Noop) Get(context.Context, string) ([]byte, error) {
	return nil, common.ErrCacheMiss
}

// Set 不做任何事
func (Noop) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete 不做任何事
func (Noop) Delete(context.Context, string) error {
	return nil
}

// Close 不做任何事
func (Noop) Close() error {
	return nil
}
