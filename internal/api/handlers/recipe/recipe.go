package recipe

import (
	"net/http"

	"dinner-menu/internal/api/handlers"
	recipeService "dinner-menu/internal/core/recipe"
	"dinner-menu/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 食譜與食材處理器
type Handler struct {
	service *recipeService.Service
}

// NewHandler 創建處理器
func NewHandler(service *recipeService.Service) *Handler {
	return &Handler{service: service}
}

// RecipeListResponse 食譜列表
type RecipeListResponse struct {
	Recipes []common.Recipe `json:"recipes"`
	Count   int             `json:"count"`
}

// HandleList 列出食譜，帶 ?ingredient= 時依食材搜尋
func (h *Handler) HandleList(c *gin.Context) {
	var (
		recipes []common.Recipe
		err     error
	)
	if term := c.Query("ingredient"); term != "" {
		recipes, err = h.service.SearchRecipes(c.Request.Context(), term)
	} else {
		recipes, err = h.service.ListRecipes(c.Request.Context())
	}
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	if recipes == nil {
		recipes = []common.Recipe{}
	}

	c.JSON(http.StatusOK, RecipeListResponse{Recipes: recipes, Count: len(recipes)})
}

// HandleGet 取得單一食譜
func (h *Handler) HandleGet(c *gin.Context) {
	r, err := h.service.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// HandleCreate 新增食譜
func (h *Handler) HandleCreate(c *gin.Context) {
	var in recipeService.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.BadRequest(c, err)
		return
	}

	r, err := h.service.CreateRecipe(c.Request.Context(), in)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// HandleUpdate 更新食譜
func (h *Handler) HandleUpdate(c *gin.Context) {
	var in recipeService.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.BadRequest(c, err)
		return
	}

	r, err := h.service.UpdateRecipe(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// HandleDelete 刪除食譜
func (h *Handler) HandleDelete(c *gin.Context) {
	if err := h.service.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
