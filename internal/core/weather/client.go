package weather

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dinner-menu/internal/core/cache"
	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// MinDays 預報天數下限
	MinDays = 1
	// MaxDays 預報天數上限
	MaxDays = 14
)

// Day 單日預報
type Day struct {
	Day  string  `json:"day"`
	Date string  `json:"date"`
	Temp float64 `json:"temp"` // 最高溫 °F
}

// Forecast 天氣預報
type Forecast struct {
	Location string `json:"location"`
	Days     []Day  `json:"forecast"`
}

// TooHot 任一天最高溫超過門檻時返回 true
func (f *Forecast) TooHot(threshold float64) bool {
	if f == nil {
		return false
	}
	for _, d := range f.Days {
		if d.Temp > threshold {
			return true
		}
	}
	return false
}

// apiResponse weatherapi.com forecast.json 回應
type apiResponse struct {
	Location struct {
		Name   string `json:"name"`
		Region string `json:"region"`
	} `json:"location"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempF float64 `json:"maxtemp_f"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// Client 天氣預報 API 客戶端
type Client struct {
	config *config.WeatherConfig
	client *resty.Client
	cache  cache.Store
}

// NewClient 創建天氣預報客戶端；store 可為 nil
func NewClient(cfg *config.WeatherConfig, store cache.Store) *Client {
	if store == nil {
		store = cache.Noop{}
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("x-rapidapi-key", cfg.APIKey).
		SetHeader("x-rapidapi-host", cfg.Host).
		SetHeader("Accept", "application/json")

	return &Client{
		config: cfg,
		client: client,
		cache:  store,
	}
}

// Configured 是否已設定 API Key
func (c *Client) Configured() bool {
	return c.config.APIKey != ""
}

// Forecast 取得未來 days 天的預報，結果會緩存 cache_ttl
func (c *Client) Forecast(ctx context.Context, days int) (*Forecast, error) {
	if days < MinDays || days > MaxDays {
		return nil, common.ErrInvalidDays
	}
	if !c.Configured() {
		return nil, common.ErrWeatherNotConfigured
	}

	key := fmt.Sprintf("weather:%s:%d", c.config.Location, days)
	var cached Forecast
	if err := cache.GetJSON(ctx, c.cache, key, &cached); err == nil {
		return &cached, nil
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":    c.config.Location,
			"days": strconv.Itoa(days),
		}).
		Get("/forecast.json")
	requestID := requestIDFrom(ctx)
	if err != nil {
		common.LogUpstreamCall("weather", time.Since(start), err, requestID)
		return nil, common.ErrWeatherUnavailable.WithErr(err)
	}
	if resp.StatusCode() != http.StatusOK {
		err := fmt.Errorf("weather API returned status %d: %s", resp.StatusCode(), resp.String())
		common.LogUpstreamCall("weather", time.Since(start), err, requestID)
		return nil, common.ErrWeatherUnavailable.WithErr(err)
	}
	common.LogUpstreamCall("weather", time.Since(start), nil, requestID)

	var body apiResponse
	if err := common.ParseJSONBytes(resp.Body(), &body); err != nil {
		return nil, common.ErrWeatherUnavailable.WithErr(fmt.Errorf("failed to parse weather response: %w", err))
	}

	forecast := convert(body)
	if err := cache.SetJSON(ctx, c.cache, key, forecast, c.config.CacheTTL); err != nil {
		common.LogWarn("failed to cache forecast", zap.Error(err))
	}
	return forecast, nil
}

// convert 轉為對外格式，星期名稱由日期推得
func convert(body apiResponse) *Forecast {
	f := &Forecast{
		Location: body.Location.Name,
		Days:     make([]Day, 0, len(body.Forecast.ForecastDay)),
	}
	if body.Location.Region != "" {
		f.Location += ", " + body.Location.Region
	}
	for _, fd := range body.Forecast.ForecastDay {
		day := ""
		if t, err := time.Parse(common.DateLayout, fd.Date); err == nil {
			day = t.Weekday().String()
		}
		f.Days = append(f.Days, Day{Day: day, Date: fd.Date, Temp: fd.Day.MaxTempF})
	}
	return f
}

type requestIDKey struct{}

// WithRequestID 將 request id 放入 context，用於外部調用日誌
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
