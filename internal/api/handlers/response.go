package handlers

import (
	"net/http"

	"dinner-menu/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondError 將錯誤轉為統一的 JSON 錯誤響應
func RespondError(c *gin.Context, err error) {
	ce := common.AsCustomError(err)

	fields := []zap.Field{
		zap.String("code", ce.Code),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", requestid.Get(c)),
		zap.Error(err),
	}
	if ce.Status >= http.StatusInternalServerError {
		common.LogError("request failed", fields...)
	} else {
		common.LogDebug("request rejected", fields...)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(ce.Status, common.ErrorResponse{
		Success: false,
		Code:    ce.Code,
		Message: ce.Message,
	})
}

// BadRequest 請求格式無效
func BadRequest(c *gin.Context, err error) {
	RespondError(c, common.ErrInvalidRequest.WithMessage("invalid request format").WithErr(err))
}
