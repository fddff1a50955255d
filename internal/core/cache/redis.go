package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore Redis 緩存服務
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore 創建 Redis 緩存服務
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 測試連接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis cache connected", zap.String("addr", cfg.Redis.Addr))

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			common.LogCacheMiss("redis", key)
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}
	common.LogCacheHit("redis", key)
	return data, nil
}

// Set 設置緩存；ttl <= 0 時使用預設 TTL
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.config.TTL
	}
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Delete 刪除緩存
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// Ping 檢查連線，供 readiness 使用
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// key 加上前綴
func (s *RedisStore) key(k string) string {
	return s.config.Redis.Prefix + k
}
