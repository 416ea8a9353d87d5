package inventory

import (
	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

// Summarize rolls item records up into one summary per distinct material
// category, in first-seen order. Stock is summed across the group while
// the representative reorder point is the group maximum; summing
// thresholds of heterogeneous SKUs would over-count. Group status is
// re-derived from the summed numbers by the shared classifier, never
// combined from member statuses: a shortage in one SKU can be masked or
// amplified by the others in its category, and only the aggregate numbers
// can tell which. Empty input yields an empty (non-nil) slice.
func Summarize(items []domain.ItemRecord) []domain.MaterialSummary {
	summaries := make([]domain.MaterialSummary, 0)
	index := make(map[string]int)

	for _, item := range items {
		pos, ok := index[item.Material]
		if !ok {
			pos = len(summaries)
			index[item.Material] = pos
			summaries = append(summaries, domain.MaterialSummary{Material: item.Material})
		}

		summaries[pos].TotalStock += item.CurrentStock
		if item.ReorderPoint > summaries[pos].ReorderPoint {
			summaries[pos].ReorderPoint = item.ReorderPoint
		}
	}

	for i := range summaries {
		summaries[i].Status = domain.Classify(summaries[i].TotalStock, summaries[i].ReorderPoint)
	}

	return summaries
}

// Alerts lists the items sitting below their reorder point, with the
// quantity needed to get back to threshold and its estimated cost.
func Alerts(items []domain.ItemRecord) []domain.ReorderAlert {
	alerts := make([]domain.ReorderAlert, 0)
	for _, item := range items {
		if item.Status == domain.StatusInStock {
			continue
		}

		qty := item.ReorderPoint - item.CurrentStock
		alerts = append(alerts, domain.ReorderAlert{
			ItemID:    item.ID,
			Material:  item.Material,
			Status:    item.Status,
			QtyNeeded: qty,
			EstCost:   float64(qty) * item.UnitCost,
		})
	}
	return alerts
}
