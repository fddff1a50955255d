package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dinner-menu/internal/pkg/common"
)

const defaultDedupWindow = time.Second

// deduplicator 記錄最近的 POST 請求指紋
type deduplicator struct {
	mu        sync.Mutex
	window    time.Duration
	requests  map[string]time.Time
	lastSweep time.Time
	now       func() time.Time
}

func newDeduplicator(window time.Duration) *deduplicator {
	if window <= 0 {
		window = defaultDedupWindow
	}
	return &deduplicator{
		window:   window,
		requests: make(map[string]time.Time),
		now:      time.Now,
	}
}

// seen 檢查指紋是否在時間窗內出現過，並記錄這次請求
func (d *deduplicator) seen(fingerprint string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.sweep(now)

	if last, ok := d.requests[fingerprint]; ok && now.Sub(last) <= d.window {
		return true
	}
	d.requests[fingerprint] = now
	return false
}

// sweep 清理過期指紋，呼叫者需持有鎖
func (d *deduplicator) sweep(now time.Time) {
	if now.Sub(d.lastSweep) < 10*d.window {
		return
	}
	d.lastSweep = now
	for k, t := range d.requests {
		if now.Sub(t) > d.window {
			delete(d.requests, k)
		}
	}
}

// Deduplication 請求去重中間件：時間窗內相同路徑與內容的 POST 直接回 429
func Deduplication(window time.Duration) gin.HandlerFunc {
	d := newDeduplicator(window)

	return func(c *gin.Context) {
		// 只處理 POST 請求
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		// 計算請求體哈希
		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogWarn("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}

			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		// 生成請求指紋
		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		if d.seen(fingerprint) {
			common.LogInfo("Duplicate request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.ErrorResponse{
				Code:    common.ErrTooManyRequests.Code,
				Message: "request too frequent",
			})
			return
		}

		c.Next()
	}
}
