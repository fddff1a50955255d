package menu

import (
	"context"

	"dinner-menu/internal/core/grocery"
	"dinner-menu/internal/core/weather"
	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeSource 提供目前所有食譜
type RecipeSource interface {
	AllRecipes(ctx context.Context) ([]common.Recipe, error)
}

// Forecaster 提供天氣預報
type Forecaster interface {
	Forecast(ctx context.Context, days int) (*weather.Forecast, error)
}

// Plan 晚餐計畫
type Plan struct {
	Recipes       []common.Recipe       `json:"selected_recipes"`
	GroceryList   []common.GroceryLine  `json:"grocery_list"`
	GroceryTotals []common.GroceryTotal `json:"grocery_totals"`
	Weather       *weather.Forecast     `json:"weather,omitempty"`
	TooHotForOven bool                  `json:"too_hot_for_oven"`
	DaysRequested int                   `json:"days_requested"`
	TotalPortions int                   `json:"total_portions"`
	Insufficient  bool                  `json:"insufficient_recipes"`
}

// RerollRequest 重抽請求；Weather 為前一次取得的預報，不會重新呼叫天氣 API
type RerollRequest struct {
	Current       []common.Recipe   `json:"current_menu"`
	Index         int               `json:"reroll_index"`
	Weather       *weather.Forecast `json:"weather"`
	TooHotForOven bool              `json:"too_hot_for_oven"`
}

// Planner 結合天氣、選菜與購物清單
type Planner struct {
	recipes  RecipeSource
	weather  Forecaster
	selector *Selector
	config   *config.Config
}

// NewPlanner 創建晚餐計畫服務；forecaster 可為 nil（只能使用 Quick）
func NewPlanner(cfg *config.Config, recipes RecipeSource, forecaster Forecaster, selector *Selector) *Planner {
	if selector == nil {
		selector = NewSelector()
	}
	return &Planner{
		recipes:  recipes,
		weather:  forecaster,
		selector: selector,
		config:   cfg,
	}
}

// ValidateDays 檢查天數範圍
func (p *Planner) ValidateDays(days int) error {
	if days < 1 || days > p.config.Menu.MaxDays {
		return common.ErrInvalidDays
	}
	return nil
}

// Generate 依天氣產生晚餐計畫：預報中任一天過熱時排除烤箱食譜
func (p *Planner) Generate(ctx context.Context, days int) (*Plan, error) {
	if err := p.ValidateDays(days); err != nil {
		return nil, err
	}
	if p.weather == nil {
		return nil, common.ErrWeatherNotConfigured
	}

	forecast, err := p.weather.Forecast(ctx, days)
	if err != nil {
		common.LogError("failed to fetch weather for dinner menu", zap.Error(err), zap.Int("days", days))
		return nil, err
	}

	tooHot := forecast.TooHot(p.config.Weather.HotThreshold)
	plan, err := p.build(ctx, days, Environment{ExcludeOven: tooHot})
	if err != nil {
		return nil, err
	}
	plan.Weather = forecast
	plan.TooHotForOven = tooHot

	common.LogInfo("dinner menu generated",
		zap.Int("days", days),
		zap.Int("selected", len(plan.Recipes)),
		zap.Bool("too_hot_for_oven", tooHot),
	)
	return plan, nil
}

// Quick 不查天氣直接隨機選菜
func (p *Planner) Quick(ctx context.Context, days int) (*Plan, error) {
	if err := p.ValidateDays(days); err != nil {
		return nil, err
	}
	plan, err := p.build(ctx, days, Environment{})
	if err != nil {
		return nil, err
	}

	common.LogInfo("quick dinner menu generated",
		zap.Int("days", days),
		zap.Int("selected", len(plan.Recipes)),
	)
	return plan, nil
}

// Reroll 替換菜單中的一道食譜，沿用呼叫端帶回的天氣資料
func (p *Planner) Reroll(ctx context.Context, req RerollRequest) (*Plan, error) {
	if len(req.Current) == 0 {
		return nil, common.ErrInvalidRequest.WithMessage("current_menu is required")
	}

	catalog, err := p.catalog(ctx)
	if err != nil {
		return nil, err
	}

	tooHot := req.TooHotForOven || req.Weather.TooHot(p.config.Weather.HotThreshold)
	res, err := p.selector.Reroll(catalog, req.Current, req.Index, Environment{ExcludeOven: tooHot})
	if err != nil {
		return nil, err
	}

	plan := newPlan(res, len(req.Current))
	plan.Weather = req.Weather
	plan.TooHotForOven = tooHot

	common.LogInfo("dinner menu rerolled",
		zap.Int("index", req.Index),
		zap.Bool("unchanged", res.Short),
	)
	return plan, nil
}

func (p *Planner) build(ctx context.Context, days int, env Environment) (*Plan, error) {
	catalog, err := p.catalog(ctx)
	if err != nil {
		return nil, err
	}
	res := p.selector.Select(catalog, Request{Days: days, Environment: env})
	if res.Short {
		common.LogWarn("not enough recipes for dinner menu",
			zap.Int("days", days),
			zap.Int("selected", len(res.Recipes)),
			zap.Bool("exclude_oven", env.ExcludeOven),
		)
	}
	return newPlan(res, days), nil
}

func (p *Planner) catalog(ctx context.Context) ([]common.Recipe, error) {
	recipes, err := p.recipes.AllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, common.ErrNoRecipes
	}
	return recipes, nil
}

func newPlan(res Result, days int) *Plan {
	plan := &Plan{
		Recipes:       res.Recipes,
		GroceryList:   grocery.Aggregate(res.Recipes),
		GroceryTotals: grocery.Totals(res.Recipes),
		DaysRequested: days,
		Insufficient:  res.Short,
	}
	for _, r := range res.Recipes {
		plan.TotalPortions += r.PortionCount()
	}
	return plan
}
