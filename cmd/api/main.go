package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinner-menu/internal/api"
	"dinner-menu/internal/api/handlers/health"
	"dinner-menu/internal/core/cache"
	"dinner-menu/internal/core/menu"
	"dinner-menu/internal/core/recipe"
	"dinner-menu/internal/core/weather"
	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"
	"dinner-menu/internal/storage"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("db_path", cfg.Store.Path),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("weather_location", cfg.Weather.Location),
		zap.String("api_key", cfg.Weather.APIKey),
	)

	// 開啟食譜資料庫
	store, err := storage.NewSQLiteStore(&cfg.Store)
	if err != nil {
		common.LogFatal("Failed to open recipe store", zap.Error(err))
	}
	defer store.Close()

	// 初始化快取
	cacheStore, err := cache.New(&cfg.Cache)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}
	defer cacheStore.Close()

	checks := map[string]health.Checker{"store": store}
	if pinger, ok := cacheStore.(health.Checker); ok {
		checks["cache"] = pinger
	}

	// 初始化服務
	weatherClient := weather.NewClient(&cfg.Weather, cacheStore)
	if !weatherClient.Configured() {
		common.LogWarn("RAPID_API_FORECAST_KEY not set, weather-aware menus are unavailable")
	}
	recipeSvc := recipe.NewService(cfg, store, cacheStore)
	planner := menu.NewPlanner(cfg, recipeSvc, weatherClient, menu.NewSelector())

	// 設置路由
	router := api.SetupRouter(cfg, api.Services{
		Recipes: recipeSvc,
		Planner: planner,
		Weather: weatherClient,
		Checks:  checks,
	})

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo(common.MsgAppStarting,
			zap.Int("port", cfg.Server.Port),
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo(common.MsgServerShutdown)

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
	}

	common.LogInfo(common.MsgServerExited)
}
