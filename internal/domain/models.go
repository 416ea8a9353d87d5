// internal/domain/models.go
package domain

import "time"

// ItemBase holds the externally supplied demand parameters for one SKU,
// before any replenishment metrics are derived. Real inventory feeds
// provide these directly; the synthetic generator fabricates them.
type ItemBase struct {
	ID           string  `json:"id"`
	Material     string  `json:"material"`
	AvgDemand    float64 `json:"avg_daily_demand"`
	DemandStdDev float64 `json:"demand_std_dev"`
	LeadTimeDays int     `json:"lead_time_days"`
	UnitCost     float64 `json:"unit_cost"`
	Supplier     string  `json:"supplier"`
	CurrentStock int     `json:"current_stock"`
}

// ItemRecord is one SKU-level inventory row with derived replenishment
// metrics attached. Once derived it is never mutated within a run.
type ItemRecord struct {
	ID           string      `json:"id"`
	Material     string      `json:"material"`
	AvgDemand    float64     `json:"avg_daily_demand"`
	DemandStdDev float64     `json:"demand_std_dev"`
	LeadTimeDays int         `json:"lead_time_days"`
	UnitCost     float64     `json:"unit_cost"`
	Supplier     string      `json:"supplier"`
	CurrentStock int         `json:"current_stock"`
	SafetyStock  int         `json:"safety_stock"`
	ReorderPoint int         `json:"reorder_point"`
	ServiceLevel float64     `json:"service_level"`
	Status       StockStatus `json:"status"`

	// Fallback is set when the replenishment metrics came from the
	// conservative default pair instead of a computed quantile.
	Fallback bool `json:"fallback,omitempty"`
}

// MaterialSummary is the per-category rollup shown on the dashboard.
// Status is re-derived from the summed stock against the representative
// reorder point, never combined from member item statuses.
type MaterialSummary struct {
	Material     string      `json:"material"`
	TotalStock   int         `json:"total_stock"`
	ReorderPoint int         `json:"reorder_point"`
	Status       StockStatus `json:"status"`
}

// ReorderAlert flags an item sitting below its reorder point.
type ReorderAlert struct {
	ItemID    string      `json:"item_id"`
	Material  string      `json:"material"`
	Status    StockStatus `json:"status"`
	QtyNeeded int         `json:"qty_needed"`
	EstCost   float64     `json:"est_cost"`
}

// DemandPoint is one bucket of the historical demand series.
type DemandPoint struct {
	Date     time.Time `json:"date"`
	Quantity float64   `json:"quantity"`
}

// ForecastPoint is one projected future bucket with its uncertainty band.
// Lower <= Point <= Upper holds for every point.
type ForecastPoint struct {
	Period time.Time `json:"period"`
	Point  float64   `json:"point"`
	Lower  float64   `json:"lower"`
	Upper  float64   `json:"upper"`
}

// ProcurementRecord is one row of the flat historical procurement set.
type ProcurementRecord struct {
	Date        time.Time `json:"date"`
	Quantity    float64   `json:"quantity_procured"`
	State       string    `json:"state"`
	ProjectType string    `json:"project_type"`
	GSTRate     float64   `json:"gst_rate"`
}

// ProcurementOverview aggregates the loaded procurement history for the
// planning page header metrics.
type ProcurementOverview struct {
	Records         int     `json:"records"`
	States          int     `json:"states"`
	ProjectTypes    int     `json:"project_types"`
	EstimatedBudget float64 `json:"estimated_budget_cr"`
	AvgGSTRate      float64 `json:"avg_gst_rate"`
}
