package menu

import (
	"context"
	"net/http"
	"strconv"

	"dinner-menu/internal/api/handlers"
	"dinner-menu/internal/api/middleware"
	menuService "dinner-menu/internal/core/menu"
	"dinner-menu/internal/core/weather"
	"dinner-menu/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// Handler 晚餐菜單與天氣處理器
type Handler struct {
	planner     *menuService.Planner
	forecaster  menuService.Forecaster
	defaultDays int
}

// NewHandler 創建處理器；forecaster 為 nil 時 /weather 回 503
func NewHandler(planner *menuService.Planner, forecaster menuService.Forecaster, defaultDays int) *Handler {
	return &Handler{
		planner:     planner,
		forecaster:  forecaster,
		defaultDays: defaultDays,
	}
}

// MenuResponse 菜單響應；食譜不足時附上 warning
type MenuResponse struct {
	*menuService.Plan
	Warning *common.ErrorResponse `json:"warning,omitempty"`
}

// HandleGenerate 依天氣產生菜單
func (h *Handler) HandleGenerate(c *gin.Context) {
	days, ok := h.days(c)
	if !ok {
		return
	}
	plan, err := h.planner.Generate(h.requestContext(c), days)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	h.respond(c, "weather", plan)
}

// HandleQuick 不查天氣直接產生菜單
func (h *Handler) HandleQuick(c *gin.Context) {
	days, ok := h.days(c)
	if !ok {
		return
	}
	plan, err := h.planner.Quick(h.requestContext(c), days)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	h.respond(c, "quick", plan)
}

// HandleReroll 替換菜單中的一道食譜
func (h *Handler) HandleReroll(c *gin.Context) {
	var req menuService.RerollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.BadRequest(c, err)
		return
	}
	plan, err := h.planner.Reroll(h.requestContext(c), req)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	h.respond(c, "reroll", plan)
}

// HandleWeather 天氣預報
func (h *Handler) HandleWeather(c *gin.Context) {
	if h.forecaster == nil {
		handlers.RespondError(c, common.ErrWeatherNotConfigured)
		return
	}
	days, ok := h.days(c)
	if !ok {
		return
	}
	forecast, err := h.forecaster.Forecast(h.requestContext(c), days)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// days 讀取 ?days=，缺省使用設定值
func (h *Handler) days(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return h.defaultDays, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		handlers.RespondError(c, common.ErrInvalidDays)
		return 0, false
	}
	return days, true
}

// requestContext 帶上 request id 供上游 API 日誌使用
func (h *Handler) requestContext(c *gin.Context) context.Context {
	return weather.WithRequestID(c.Request.Context(), requestid.Get(c))
}

func (h *Handler) respond(c *gin.Context, mode string, plan *menuService.Plan) {
	middleware.RecordMenu(mode, plan.Insufficient)

	resp := MenuResponse{Plan: plan}
	if plan.Insufficient {
		resp.Warning = &common.ErrorResponse{
			Code:    common.ErrInsufficientRecipes.Code,
			Message: common.ErrInsufficientRecipes.Message,
		}
	}
	c.JSON(http.StatusOK, resp)
}
