package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dinner_menu",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dinner_menu",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	menusGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dinner_menu",
		Name:      "menus_generated_total",
		Help:      "Dinner menus produced, by mode (weather, quick, reroll).",
	}, []string{"mode"})

	menusShort = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dinner_menu",
		Name:      "menus_short_total",
		Help:      "Dinner menus with fewer recipes than requested days.",
	})

	suggestionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dinner_menu",
		Name:      "ingredient_suggestions_total",
		Help:      "Ingredient autocomplete suggestions returned.",
	})

	linesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dinner_menu",
		Name:      "ingredient_lines_parsed_total",
		Help:      "Ingredient lines parsed by the bulk import endpoint.",
	})
)

// Metrics 記錄每個請求的次數與延遲
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// 未匹配的路由統一歸類，避免 label 爆量
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler /metrics 端點
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// RecordMenu 記錄產生的菜單
func RecordMenu(mode string, short bool) {
	menusGenerated.WithLabelValues(mode).Inc()
	if short {
		menusShort.Inc()
	}
}

// RecordSuggestions 記錄回傳的建議數
func RecordSuggestions(n int) {
	suggestionsServed.Add(float64(n))
}

// RecordParsedLines 記錄解析的食材行數
func RecordParsedLines(n int) {
	linesParsed.Add(float64(n))
}
