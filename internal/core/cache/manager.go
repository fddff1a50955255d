package cache

import (
	"context"
	"sync"
	"time"

	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"

	"go.uber.org/zap"
)

// CacheManager 記憶體緩存管理器（TTL + LRU）
type CacheManager struct {
	config *config.CacheConfig
	mu     sync.Mutex
	store  map[string]cacheEntry
	stats  cacheStats
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
}

// cacheEntry 緩存條目
type cacheEntry struct {
	value       []byte
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 緩存統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewManager 創建新的緩存管理器
func NewManager(cfg *config.CacheConfig) *CacheManager {
	m := &CacheManager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		now:    time.Now,
		stop:   make(chan struct{}),
	}

	// 啟動清理過期緩存的協程
	if cfg.CleanupInterval > 0 {
		go m.startCleanup()
	}

	common.LogInfo("快取管理員已初始化",
		zap.Int("max_size", cfg.MaxSize),
		zap.Duration("ttl", cfg.TTL),
		zap.Duration("cleanup_interval", cfg.CleanupInterval),
	)

	return m
}

// Get 獲取緩存值
func (m *CacheManager) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return nil, common.ErrCacheMiss
	}

	// 檢查是否過期
	if m.now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return nil, common.ErrCacheMiss
	}

	// 更新訪問統計
	entry.lastAccess = m.now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++

	common.LogCacheHit("memory", key)
	return entry.value, nil
}

// Set 設置緩存值；ttl <= 0 時使用預設 TTL
func (m *CacheManager) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.config.TTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 檢查緩存大小
	if _, exists := m.store[key]; !exists && len(m.store) >= m.config.MaxSize {
		// 清理過期項目
		evicted := m.cleanup()
		common.LogDebug("快取清理執行", zap.Int("evicted", evicted))

		// 如果仍然超過大小限制，執行 LRU 清理
		if len(m.store) >= m.config.MaxSize {
			m.evictLRU()
		}

		// 如果仍然超過大小限制，返回錯誤
		if len(m.store) >= m.config.MaxSize {
			m.stats.errors++
			common.LogWarn("快取已滿", zap.Int("size", len(m.store)))
			return common.ErrCacheFull
		}
	}

	now := m.now()
	buf := make([]byte, len(value))
	copy(buf, value)
	m.store[key] = cacheEntry{
		value:      buf,
		expiresAt:  now.Add(ttl),
		createdAt:  now,
		lastAccess: now,
	}

	return nil
}

// Delete 刪除緩存值
func (m *CacheManager) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.store, key)
	return nil
}

// startCleanup 啟動清理過期緩存的協程
func (m *CacheManager) startCleanup() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanup()
			m.mu.Unlock()
		case <-m.stop:
			return
		}
	}
}

// cleanup 清理過期的緩存，呼叫者需持有鎖
func (m *CacheManager) cleanup() int {
	now := m.now()
	count := 0

	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}

	if count > 0 {
		common.LogDebug("Cleaned up expired cache entries",
			zap.Int("count", count),
			zap.Int64("total_evictions", m.stats.evictions),
			zap.Int("remaining_size", len(m.store)),
		)
	}

	return count
}

// evictLRU 執行 LRU 清理，呼叫者需持有鎖
func (m *CacheManager) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	// 找到最少訪問的項目
	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogDebug("快取已淘汰(LRU)", zap.String("key", oldestKey))
	}
}

// GetStats 獲取緩存統計信息
func (m *CacheManager) GetStats() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ratio := 0.0
	if total := m.stats.hits + m.stats.misses; total > 0 {
		ratio = float64(m.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"errors":    m.stats.errors,
		"hit_ratio": ratio,
	}
}

// Close 關閉緩存管理器
func (m *CacheManager) Close() error {
	m.once.Do(func() { close(m.stop) })

	m.mu.Lock()
	defer m.mu.Unlock()

	// 清空緩存
	m.store = make(map[string]cacheEntry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("hits", m.stats.hits),
		zap.Int64("misses", m.stats.misses),
		zap.Int64("evictions", m.stats.evictions),
	)
	return nil
}
