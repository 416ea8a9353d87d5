package inventory

import (
	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

// Enrich derives the replenishment metrics and status for one externally
// supplied item. This is the path real inventory data takes, bypassing
// the synthetic generator entirely.
func Enrich(base domain.ItemBase, serviceLevel float64) domain.ItemRecord {
	m := ComputeMetrics(base.AvgDemand, base.LeadTimeDays, base.DemandStdDev, serviceLevel)

	return domain.ItemRecord{
		ID:           base.ID,
		Material:     base.Material,
		AvgDemand:    base.AvgDemand,
		DemandStdDev: base.DemandStdDev,
		LeadTimeDays: base.LeadTimeDays,
		UnitCost:     base.UnitCost,
		Supplier:     base.Supplier,
		CurrentStock: base.CurrentStock,
		SafetyStock:  m.SafetyStock,
		ReorderPoint: m.ReorderPoint,
		ServiceLevel: serviceLevel,
		Status:       domain.Classify(base.CurrentStock, m.ReorderPoint),
		Fallback:     m.Fallback,
	}
}
