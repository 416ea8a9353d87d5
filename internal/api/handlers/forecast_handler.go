package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/export"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/forecast"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/service"
)

type ForecastHandler struct {
	service *service.ForecastService
}

func NewForecastHandler(service *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{service: service}
}

// GenerateForecast fits a fresh model over the procurement history and
// projects the requested horizon. format=csv streams the forecast table.
func (h *ForecastHandler) GenerateForecast(c *gin.Context) {
	cfg := forecast.Config{Horizon: 12, Confidence: 0.95}
	// An empty body keeps the default horizon and confidence.
	if err := c.ShouldBindJSON(&cfg); err != nil && !errors.Is(err, io.EOF) {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Forecast(c.Request.Context(), cfg)
	if err != nil {
		errorResponse(c, forecastStatus(err), err.Error())
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="demand_forecast.csv"`)
		if err := export.WriteForecast(c.Writer, result.Points); err != nil {
			log.Error().Err(err).Msg("export forecast")
		}
		return
	}

	snapshotPath := ""
	if path, err := h.service.SaveSnapshot(result.Snapshot); err != nil {
		log.Warn().Err(err).Msg("could not persist forecast model snapshot")
	} else {
		snapshotPath = path
	}

	c.JSON(http.StatusOK, gin.H{
		"points":   result.Points,
		"horizon":  cfg.Horizon,
		"snapshot": snapshotPath,
	})
}

// GetOverview returns the procurement planning header metrics.
func (h *ForecastHandler) GetOverview(c *gin.Context) {
	overview, utilization, err := h.service.Overview(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overview":           overview,
		"budget_utilization": utilization,
	})
}

// GetTrend returns the monthly demand series behind the forecast.
func (h *ForecastHandler) GetTrend(c *gin.Context) {
	trend, err := h.service.Trend(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

func forecastStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
