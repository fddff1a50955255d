package middleware

import (
	"context"
	"errors"
	"time"

	"dinner-menu/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Timeout 為請求上下文設置超時，下游的資料庫與天氣 API 呼叫會跟著取消
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		// 檢查是否超時；已寫出響應時不再覆蓋
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", d),
			)
			c.AbortWithStatusJSON(common.ErrGatewayTimeout.Status, common.ErrorResponse{
				Code:    common.ErrGatewayTimeout.Code,
				Message: common.ErrGatewayTimeout.Message,
			})
		}
	}
}
