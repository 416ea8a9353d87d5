// internal/api/api.go
package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/api/handlers"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/api/middleware"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/service"
)

type Services struct {
	Inventory *service.InventoryService
	Forecast  *service.ForecastService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Inventory != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.Inventory)
			inventoryGroup := apiGroup.Group("/inventory")
			{
				inventoryGroup.GET("/items", inventoryHandler.GetItems)
				inventoryGroup.GET("/summary", inventoryHandler.GetSummary)
				inventoryGroup.GET("/alerts", inventoryHandler.GetAlerts)
				inventoryGroup.POST("/enrich", inventoryHandler.EnrichItems)
			}
		}

		if services.Forecast != nil {
			forecastHandler := handlers.NewForecastHandler(services.Forecast)
			apiGroup.POST("/forecast", forecastHandler.GenerateForecast)

			procurementGroup := apiGroup.Group("/procurement")
			{
				procurementGroup.GET("/overview", forecastHandler.GetOverview)
				procurementGroup.GET("/trend", forecastHandler.GetTrend)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
