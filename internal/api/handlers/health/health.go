package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const checkTimeout = 2 * time.Second

// Checker 可被就緒檢查的依賴（資料庫、Redis）
type Checker interface {
	Ping(ctx context.Context) error
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    string                 `json:"uptime"`
	Runtime   map[string]interface{} `json:"runtime"`
}

// ReadinessResponse 就緒檢查響應
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Handler 健康檢查處理器
type Handler struct {
	config  *config.Config
	checks  map[string]Checker
	started time.Time
}

// NewHandler 創建健康檢查處理器
func NewHandler(cfg *config.Config, checks map[string]Checker) *Handler {
	return &Handler{
		config:  cfg,
		checks:  checks,
		started: time.Now(),
	}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查：逐一 ping 依賴
func (h *Handler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	status := http.StatusOK
	resp := ReadinessResponse{Status: "ready", Checks: make(map[string]string, len(h.checks))}
	for name, checker := range h.checks {
		if err := checker.Ping(ctx); err != nil {
			common.LogWarn("Readiness check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = err.Error()
			resp.Status = "not_ready"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	c.JSON(status, resp)
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
