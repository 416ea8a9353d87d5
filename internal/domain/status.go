package domain

// StockStatus is the three-state stock condition used at both item and
// aggregate granularity.
type StockStatus string

const (
	StatusInStock  StockStatus = "In Stock"
	StatusLowStock StockStatus = "Low Stock"
	StatusCritical StockStatus = "Critical"
)

// Classify maps an on-hand stock level against a reorder point. The same
// rule applies to a single SKU and to a material-level rollup: at or above
// the reorder point is healthy, below half of it is critical, anything in
// between is low. A zero reorder point makes every stock level In Stock.
func Classify(stock, reorderPoint int) StockStatus {
	switch {
	case stock >= reorderPoint:
		return StatusInStock
	case float64(stock) < float64(reorderPoint)*0.5:
		return StatusCritical
	default:
		return StatusLowStock
	}
}
