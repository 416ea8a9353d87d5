// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/api"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/cache"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/config"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/inventory"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/service"
	"github.com/NehaAnalyzes/Demand-forecasting/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	params := inventory.GeneratorParams{
		Materials:        cfg.App.Materials,
		ItemsPerMaterial: cfg.App.ItemsPerMaterial,
		Seed:             cfg.App.Seed,
		ServiceLevel:     cfg.App.ServiceLevel,
		Policy:           inventory.DefaultStockPolicy(),
	}

	summaryCache, err := cache.NewSummaryCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("summary cache unavailable, continuing without caching")
		summaryCache = cache.NewNoopSummaryCache()
	}

	services := &api.Services{
		Inventory: service.NewInventoryService(params, summaryCache),
		Forecast:  service.NewForecastService(cfg.App.HistoryPath, cfg.App.ExportDir, cfg.App.PlannedBudget),
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
