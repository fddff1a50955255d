package api

import (
	"time"

	"dinner-menu/internal/api/handlers"
	"dinner-menu/internal/api/handlers/health"
	menuHandler "dinner-menu/internal/api/handlers/menu"
	recipeHandler "dinner-menu/internal/api/handlers/recipe"
	"dinner-menu/internal/api/middleware"
	"dinner-menu/internal/core/menu"
	"dinner-menu/internal/core/recipe"
	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 請求超時
const timeoutDuration = 30 * time.Second

// Services 路由所需的服務
type Services struct {
	Recipes *recipe.Service
	Planner *menu.Planner
	Weather menu.Forecaster
	Checks  map[string]health.Checker
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, svc Services) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) { handlers.RespondError(c, common.ErrNotFound) })
	router.NoMethod(func(c *gin.Context) { handlers.RespondError(c, common.ErrMethodNotAllowed) })

	// 註冊基礎中間件
	router.Use(requestid.New()) // 自動生成請求 ID
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	// CORS 設置
	corsConfig := cors.Config{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	// 請求體大小限制與超時
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	router.Use(middleware.Timeout(timeoutDuration))

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg, svc.Checks)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET("/metrics", middleware.MetricsHandler())

	// API 路由組
	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	api.Use(middleware.Deduplication(cfg.DedupWindow))
	{
		recipes := recipeHandler.NewHandler(svc.Recipes)

		// 食譜 CRUD
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", recipes.HandleList)
			recipeGroup.POST("", recipes.HandleCreate)
			recipeGroup.GET("/:id", recipes.HandleGet)
			recipeGroup.PUT("/:id", recipes.HandleUpdate)
			recipeGroup.DELETE("/:id", recipes.HandleDelete)
		}

		// 食材解析與自動完成
		ingredientGroup := api.Group("/ingredients")
		{
			ingredientGroup.POST("/parse", recipes.HandleParse)
			ingredientGroup.GET("/catalog", recipes.HandleCatalog)
			ingredientGroup.GET("/suggest", recipes.HandleSuggest)
		}

		// 晚餐菜單與天氣
		menus := menuHandler.NewHandler(svc.Planner, svc.Weather, cfg.Menu.DefaultDays)
		api.GET("/weather", menus.HandleWeather)

		menuGroup := api.Group("/dinner-menu")
		{
			menuGroup.GET("", menus.HandleGenerate)
			menuGroup.GET("/quick", menus.HandleQuick)
			menuGroup.POST("/reroll", menus.HandleReroll)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("weather_configured", svc.Weather != nil),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router
}
