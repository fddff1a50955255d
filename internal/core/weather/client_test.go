package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinner-menu/internal/core/cache"
	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"
)

const forecastBody = `{
  "location": {"name": "Spokane", "region": "Washington"},
  "forecast": {"forecastday": [
    {"date": "2024-07-01", "day": {"maxtemp_f": 85.1}},
    {"date": "2024-07-02", "day": {"maxtemp_f": 93.4}}
  ]}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, store cache.Store) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.WeatherConfig{
		APIKey:   "secret-key",
		BaseURL:  srv.URL,
		Host:     "weatherapi-com.p.rapidapi.com",
		Location: "Spokane",
		Timeout:  5 * time.Second,
		CacheTTL: time.Minute,
	}, store)
}

func TestForecast(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		assert.Equal(t, "Spokane", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("days"))
		assert.Equal(t, "secret-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "weatherapi-com.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	}, nil)

	f, err := c.Forecast(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Spokane, Washington", f.Location)
	require.Len(t, f.Days, 2)
	assert.Equal(t, Day{Day: "Monday", Date: "2024-07-01", Temp: 85.1}, f.Days[0])
	assert.Equal(t, "Tuesday", f.Days[1].Day)
	assert.True(t, f.TooHot(90))
	assert.False(t, f.TooHot(95))
}

func TestForecast_Cached(t *testing.T) {
	t.Parallel()

	var calls int32
	store := cache.NewManager(&config.CacheConfig{Enabled: true, MaxSize: 10, TTL: time.Minute})
	t.Cleanup(func() { _ = store.Close() })

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(forecastBody))
	}, store)

	for i := 0; i < 3; i++ {
		_, err := c.Forecast(context.Background(), 2)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestForecast_Errors(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota exceeded"}`, http.StatusTooManyRequests)
	}, nil)

	_, err := c.Forecast(context.Background(), 3)
	assert.ErrorIs(t, err, common.ErrWeatherUnavailable)

	_, err = c.Forecast(context.Background(), 0)
	assert.ErrorIs(t, err, common.ErrInvalidDays)
	_, err = c.Forecast(context.Background(), 15)
	assert.ErrorIs(t, err, common.ErrInvalidDays)

	unconfigured := NewClient(&config.WeatherConfig{BaseURL: "http://127.0.0.1:1"}, nil)
	_, err = unconfigured.Forecast(context.Background(), 3)
	assert.ErrorIs(t, err, common.ErrWeatherNotConfigured)
}

func TestTooHot_Nil(t *testing.T) {
	t.Parallel()

	var f *Forecast
	assert.False(t, f.TooHot(90))
	assert.False(t, (&Forecast{Days: []Day{{Temp: 90}}}).TooHot(90))
}
