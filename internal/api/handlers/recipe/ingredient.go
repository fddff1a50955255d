package recipe

import (
	"net/http"
	"strconv"
	"strings"

	"dinner-menu/internal/api/handlers"
	"dinner-menu/internal/api/middleware"
	recipeService "dinner-menu/internal/core/recipe"
	"dinner-menu/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// ParseResponse 批次解析結果，與輸入行一一對應
type ParseResponse struct {
	Ingredients []common.Ingredient `json:"ingredients"`
	Count       int                 `json:"count"`
}

// SuggestResponse 自動完成結果
type SuggestResponse struct {
	Query       string                     `json:"query"`
	Suggestions []recipeService.Suggestion `json:"suggestions"`
}

// HandleParse 批次解析貼上的食材文字
func (h *Handler) HandleParse(c *gin.Context) {
	var req recipeService.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.BadRequest(c, err)
		return
	}
	if len(req.Lines) == 0 && strings.TrimSpace(req.Text) == "" {
		handlers.RespondError(c, common.ErrInvalidRequest.WithMessage("lines or text is required"))
		return
	}

	ings := h.service.ParseIngredients(req)
	middleware.RecordParsedLines(len(ings))

	c.JSON(http.StatusOK, ParseResponse{Ingredients: ings, Count: len(ings)})
}

// HandleCatalog 所有已知食材名稱
func (h *Handler) HandleCatalog(c *gin.Context) {
	catalog, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	if catalog == nil {
		catalog = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": catalog, "count": len(catalog)})
}

// HandleSuggest 食材自動完成：q、threshold、limit
func (h *Handler) HandleSuggest(c *gin.Context) {
	query := c.Query("q")

	var opts recipeService.SuggestOptions
	if raw := c.Query("threshold"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			handlers.RespondError(c, common.ErrInvalidRequest.WithMessage("threshold must be a number"))
			return
		}
		opts.Threshold = &t
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			handlers.RespondError(c, common.ErrInvalidRequest.WithMessage("limit must be a positive integer"))
			return
		}
		opts.Limit = n
	}

	suggestions, err := h.service.Suggest(c.Request.Context(), query, opts)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	middleware.RecordSuggestions(len(suggestions))

	c.JSON(http.StatusOK, SuggestResponse{Query: query, Suggestions: suggestions})
}
