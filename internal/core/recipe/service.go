package recipe

import (
	"context"
	"errors"
	"time"

	"dinner-menu/internal/core/cache"
	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	cacheKeyAllRecipes = "recipes:all"
	cacheKeyCatalog    = "ingredients:catalog"
)

// Repository 食譜儲存介面
type Repository interface {
	List(ctx context.Context) ([]common.Recipe, error)
	Get(ctx context.Context, id string) (common.Recipe, error)
	Create(ctx context.Context, r common.Recipe) error
	Update(ctx context.Context, r common.Recipe) error
	Delete(ctx context.Context, id string) error
	SearchByIngredient(ctx context.Context, term string) ([]common.Recipe, error)
}

// Service 食譜服務基礎結構
type Service struct {
	repo   Repository
	cache  cache.Store
	config *config.Config
	now    func() time.Time
}

// NewService 創建新的食譜服務；store 可為 nil
func NewService(cfg *config.Config, repo Repository, store cache.Store) *Service {
	if store == nil {
		store = cache.Noop{}
	}
	return &Service{
		repo:   repo,
		cache:  store,
		config: cfg,
		now:    time.Now,
	}
}

// getFromCache 從緩存獲取數據，未命中或失敗時返回 false
func (s *Service) getFromCache(ctx context.Context, key string, v interface{}) bool {
	err := cache.GetJSON(ctx, s.cache, key, v)
	if err != nil && !errors.Is(err, common.ErrCacheMiss) {
		common.LogWarn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	return err == nil
}

// setToCache 將數據存入緩存（catalog_ttl），失敗只記錄日誌
func (s *Service) setToCache(ctx context.Context, key string, v interface{}) {
	if err := cache.SetJSON(ctx, s.cache, key, v, s.config.Cache.CatalogTTL); err != nil {
		common.LogWarn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate 食譜變動後清除衍生的緩存
func (s *Service) invalidate(ctx context.Context) {
	for _, key := range []string{cacheKeyAllRecipes, cacheKeyCatalog} {
		if err := s.cache.Delete(ctx, key); err != nil {
			common.LogWarn("cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}
