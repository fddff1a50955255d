package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"
)

func memoryConfig(maxSize int) *config.CacheConfig {
	return &config.CacheConfig{
		Enabled: true,
		Backend: "memory",
		MaxSize: maxSize,
		TTL:     time.Minute,
	}
}

func TestManager_GetSetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := NewManager(memoryConfig(10))
	defer m.Close()

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	stats := m.GetStats()
	assert.EqualValues(t, 1, stats["hits"])
	assert.EqualValues(t, 2, stats["misses"])
}

func TestManager_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := NewManager(memoryConfig(10))
	defer m.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Second))
	_, err := m.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManager_EvictsLeastUsed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := NewManager(memoryConfig(2))
	defer m.Close()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", []byte("3"), 0))

	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
	_, err = m.Get(ctx, "a")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "c")
	assert.NoError(t, err)
}

func TestJSONHelpers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := NewManager(memoryConfig(10))
	defer m.Close()

	require.NoError(t, SetJSON(ctx, m, "list", []string{"garlic", "pasta"}, 0))

	var got []string
	require.NoError(t, GetJSON(ctx, m, "list", &got))
	assert.Equal(t, []string{"garlic", "pasta"}, got)

	assert.ErrorIs(t, GetJSON(ctx, m, "missing", &got), common.ErrCacheMiss)
}

func TestRedisStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cfg := &config.CacheConfig{
		Enabled: true,
		Backend: "redis",
		TTL:     time.Minute,
		Redis:   config.RedisConfig{Addr: mr.Addr(), Prefix: "test:"},
	}

	store, err := New(cfg)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	assert.True(t, mr.Exists("test:k"))
	assert.Equal(t, time.Minute, mr.TTL("test:k"))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	mr.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, store.Set(ctx, "d", []byte("x"), time.Hour))
	require.NoError(t, store.Delete(ctx, "d"))
	assert.False(t, mr.Exists("test:d"))
}

func TestNew_Backends(t *testing.T) {
	t.Parallel()

	s, err := New(&config.CacheConfig{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, s)
	_, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	_, err = New(&config.CacheConfig{Enabled: true, Backend: "memcached"})
	assert.Error(t, err)

	_, err = New(&config.CacheConfig{Enabled: true, Backend: "redis", Redis: config.RedisConfig{Addr: "127.0.0.1:1"}})
	assert.Error(t, err)
}
