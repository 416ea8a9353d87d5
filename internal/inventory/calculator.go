package inventory

import (
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultServiceLevel is the target probability of not stocking out
// during lead time.
const DefaultServiceLevel = 0.95

// Conservative defaults returned when the quantile cannot be computed.
// They are deliberately non-zero so a fallback is never mistaken for a
// true zero-stock scenario.
const (
	fallbackSafetyStock  = 100
	fallbackReorderPoint = 500
)

// Metrics holds the derived replenishment pair for one item.
type Metrics struct {
	SafetyStock  int
	ReorderPoint int
	ZScore       float64

	// Fallback reports that the values are the documented defaults
	// rather than a computed result.
	Fallback bool
}

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ComputeMetrics sizes safety stock and reorder point from per-item
// demand statistics using the z-score method:
//
//	z  = Phi^-1(serviceLevel)
//	ss = z * stdDev * sqrt(leadTimeDays)
//	rop = avgDemand * leadTimeDays + ss
//
// Both outputs are floored and clamped at zero. An out-of-range service
// level or a non-finite quantile yields the fallback pair with the
// Fallback flag set; the condition is logged but never propagated as an
// error. Pure function, safe for concurrent use.
func ComputeMetrics(avgDemand float64, leadTimeDays int, stdDev, serviceLevel float64) Metrics {
	if serviceLevel <= 0 || serviceLevel >= 1 {
		log.Warn().
			Float64("service_level", serviceLevel).
			Msg("service level outside (0,1), using fallback replenishment metrics")
		return Metrics{SafetyStock: fallbackSafetyStock, ReorderPoint: fallbackReorderPoint, Fallback: true}
	}

	z := stdNormal.Quantile(serviceLevel)
	safetyStock := z * stdDev * math.Sqrt(float64(leadTimeDays))
	reorderPoint := avgDemand*float64(leadTimeDays) + safetyStock

	if math.IsNaN(safetyStock) || math.IsInf(safetyStock, 0) ||
		math.IsNaN(reorderPoint) || math.IsInf(reorderPoint, 0) {
		log.Warn().
			Float64("avg_demand", avgDemand).
			Int("lead_time_days", leadTimeDays).
			Float64("std_dev", stdDev).
			Msg("non-finite replenishment metrics, using fallback")
		return Metrics{SafetyStock: fallbackSafetyStock, ReorderPoint: fallbackReorderPoint, Fallback: true}
	}

	return Metrics{
		SafetyStock:  int(math.Max(safetyStock, 0)),
		ReorderPoint: int(math.Max(reorderPoint, 0)),
		ZScore:       z,
	}
}

// EOQ returns the economic order quantity for an item:
// sqrt(2 * annualDemand * orderingCost / (unitCost * holdingRate)).
// A non-positive holding cost yields zero.
func EOQ(annualDemand, orderingCost, unitCost, holdingRate float64) int {
	holdingCost := unitCost * holdingRate
	if holdingCost <= 0 || annualDemand <= 0 || orderingCost <= 0 {
		return 0
	}
	return int(math.Sqrt((2 * annualDemand * orderingCost) / holdingCost))
}
