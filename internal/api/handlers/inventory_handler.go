package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/export"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/service"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// GetItems returns the item-level inventory. format=csv streams the
// table as a download instead of JSON.
func (h *InventoryHandler) GetItems(c *gin.Context) {
	items := h.service.Items(c.Request.Context())

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="inventory_items.csv"`)
		if err := export.WriteItems(c.Writer, items); err != nil {
			log.Error().Err(err).Msg("export inventory items")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetSummary returns the material-level rollup.
func (h *InventoryHandler) GetSummary(c *gin.Context) {
	summaries, err := h.service.Summary(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="material_summary.csv"`)
		if err := export.WriteSummaries(c.Writer, summaries); err != nil {
			log.Error().Err(err).Msg("export material summaries")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summaries})
}

// GetAlerts lists items below their reorder point.
func (h *InventoryHandler) GetAlerts(c *gin.Context) {
	alerts := h.service.Alerts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "total": len(alerts)})
}

// EnrichItems derives replenishment metrics for externally supplied item
// data, the path real inventory feeds take instead of the generator.
func (h *InventoryHandler) EnrichItems(c *gin.Context) {
	var payload struct {
		Items []domain.ItemBase `json:"items"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	records, err := h.service.EnrichBatch(c.Request.Context(), payload.Items)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": records, "total": len(records)})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	log.Error().Msg(message)
	c.JSON(statusCode, gin.H{"error": message})
}
