package recipe

import (
	"context"
	"strings"

	"dinner-menu/internal/core/ingredient"
	"dinner-menu/internal/pkg/common"

	"go.uber.org/zap"
)

// resolveIngredients 轉換所有食材，略過空白項目
func (in RecipeInput) resolveIngredients() []common.Ingredient {
	out := make([]common.Ingredient, 0, len(in.Ingredients))
	for _, raw := range in.Ingredients {
		if raw.IsBlank() {
			continue
		}
		out = append(out, raw.Resolve())
	}
	if strings.TrimSpace(in.IngredientsText) != "" {
		out = append(out, ingredient.ParseLines(ingredient.SplitText(in.IngredientsText))...)
	}
	return out
}

// build 驗證輸入並套用到食譜
func (s *Service) build(in RecipeInput, r *common.Recipe) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return common.ErrMissingTitle
	}
	ings := in.resolveIngredients()
	if len(ings) == 0 {
		return common.ErrMissingIngredients
	}
	if in.Portions < 0 {
		return common.NewValidationError("portions must not be negative")
	}

	r.Title = title
	r.Ingredients = ings
	r.Oven = in.Oven
	r.Stove = in.Stove
	r.Portions = in.Portions
	if r.Portions == 0 {
		r.Portions = 1
	}
	r.Date = strings.TrimSpace(in.Date)
	if r.Date == "" {
		r.Date = s.now().Format(common.DateLayout)
	}
	return nil
}

// ListRecipes 列出所有食譜
func (s *Service) ListRecipes(ctx context.Context) ([]common.Recipe, error) {
	return s.repo.List(ctx)
}

// AllRecipes 選菜用的食譜列表（有緩存）
func (s *Service) AllRecipes(ctx context.Context) ([]common.Recipe, error) {
	var recipes []common.Recipe
	if s.getFromCache(ctx, cacheKeyAllRecipes, &recipes) {
		return recipes, nil
	}

	recipes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.setToCache(ctx, cacheKeyAllRecipes, recipes)
	return recipes, nil
}

// SearchRecipes 依食材名稱搜尋食譜
func (s *Service) SearchRecipes(ctx context.Context, term string) ([]common.Recipe, error) {
	return s.repo.SearchByIngredient(ctx, term)
}

// GetRecipe 取得單一食譜
func (s *Service) GetRecipe(ctx context.Context, id string) (*common.Recipe, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRecipe 新增食譜
func (s *Service) CreateRecipe(ctx context.Context, in RecipeInput) (*common.Recipe, error) {
	r := common.Recipe{ID: common.GenerateUUID()}
	if err := s.build(in, &r); err != nil {
		return nil, err
	}
	r.CreatedAt = s.now().UTC()
	r.UpdatedAt = r.CreatedAt

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	common.LogInfo("recipe created",
		zap.String("id", r.ID),
		zap.String("title", r.Title),
		zap.Int("ingredients", len(r.Ingredients)),
	)
	return &r, nil
}

// UpdateRecipe 更新食譜
func (s *Service) UpdateRecipe(ctx context.Context, id string, in RecipeInput) (*common.Recipe, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.build(in, &r); err != nil {
		return nil, err
	}
	r.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	common.LogInfo("recipe updated", zap.String("id", r.ID))
	return &r, nil
}

// DeleteRecipe 刪除食譜
func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	common.LogInfo("recipe deleted", zap.String("id", id))
	return nil
}
