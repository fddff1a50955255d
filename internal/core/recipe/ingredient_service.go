package recipe

import (
	"context"

	"dinner-menu/internal/core/ingredient"
	"dinner-menu/internal/core/match"
	"dinner-menu/internal/pkg/common"

	"go.uber.org/zap"
)

// ParseIngredients 逐行解析食材，順序與數量不變，不會丟棄任何一行
func (s *Service) ParseIngredients(req ParseRequest) []common.Ingredient {
	lines := append([]string{}, req.Lines...)
	if req.Text != "" {
		lines = append(lines, ingredient.SplitText(req.Text)...)
	}
	return ingredient.ParseLines(lines)
}

// Catalog 所有食譜的食材名稱（有緩存，食譜變動時清除）
func (s *Service) Catalog(ctx context.Context) ([]string, error) {
	var catalog []string
	if s.getFromCache(ctx, cacheKeyCatalog, &catalog) {
		return catalog, nil
	}

	recipes, err := s.AllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	catalog = ingredient.BuildCatalog(recipes)
	s.setToCache(ctx, cacheKeyCatalog, catalog)

	common.LogDebug("ingredient catalog rebuilt", zap.Int("size", len(catalog)))
	return catalog, nil
}

// Suggest 依輸入文字從食材目錄中找出相似的名稱
func (s *Service) Suggest(ctx context.Context, query string, opts SuggestOptions) ([]match.Match, error) {
	threshold := s.config.Suggest.Threshold
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, common.ErrInvalidRequest.WithMessage("threshold must be between 0 and 1")
	}
	limit := s.config.Suggest.Limit
	if opts.Limit > 0 {
		limit = opts.Limit
	}

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return match.Rank(query, catalog, threshold, limit), nil
}
