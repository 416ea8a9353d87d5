package inventory

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

// StockPolicy controls how the generator sets on-hand stock relative to
// each item's derived reorder point. Biasing certain categories below
// their threshold is a fixture-construction policy used to make every
// status class show up in demo data; it is not a business rule, and real
// data bypasses the generator entirely via Enrich.
type StockPolicy struct {
	// BiasRatios maps a material to the stock/reorder-point ratios its
	// items cycle through. A material absent from the map gets healthy
	// stock drawn uniformly from [HealthyMin, HealthyMax) times the
	// reorder point.
	BiasRatios map[string][]float64
	HealthyMin float64
	HealthyMax float64
}

// DefaultStockPolicy mirrors the reference demo fixture: Cement lands in
// Low Stock, Equipment in Critical, everything else comfortably In Stock.
func DefaultStockPolicy() StockPolicy {
	return StockPolicy{
		BiasRatios: map[string][]float64{
			"Cement":    {0.3, 0.5, 0.6, 0.7, 0.65},
			"Equipment": {0.2, 0.3, 0.35, 0.4, 0.25},
		},
		HealthyMin: 1.2,
		HealthyMax: 2.5,
	}
}

// GeneratorParams configure one synthetic inventory run.
type GeneratorParams struct {
	Materials        []string
	ItemsPerMaterial int
	Seed             int64
	ServiceLevel     float64
	Policy           StockPolicy
}

// DefaultMaterials is the category set of the reference scenario.
func DefaultMaterials() []string {
	return []string{"Steel", "Cement", "Conductors", "Equipment"}
}

// WithDefaults fills unset parameters with the reference scenario's
// values so partially specified params still generate a sane inventory.
func (p GeneratorParams) WithDefaults() GeneratorParams {
	if len(p.Materials) == 0 {
		p.Materials = DefaultMaterials()
	}
	if p.ItemsPerMaterial <= 0 {
		p.ItemsPerMaterial = 5
	}
	if p.ServiceLevel <= 0 || p.ServiceLevel >= 1 {
		p.ServiceLevel = DefaultServiceLevel
	}
	if p.Policy.HealthyMax <= p.Policy.HealthyMin {
		p.Policy = DefaultStockPolicy()
	}
	return p
}

// Generate produces a deterministic synthetic inventory: identical params
// and seed always yield the identical record sequence. Demand is drawn
// from a bounded uniform range, the standard deviation is a fixed 30% of
// the mean, lead time and unit cost come from bounded ranges and the
// supplier from a fixed five-name pool. Stock is then set by the policy
// so the fixture exercises all three status classes.
func Generate(params GeneratorParams) []domain.ItemRecord {
	p := params.WithDefaults()
	rng := rand.New(rand.NewSource(p.Seed))

	records := make([]domain.ItemRecord, 0, len(p.Materials)*p.ItemsPerMaterial)
	for i, material := range p.Materials {
		for j := 0; j < p.ItemsPerMaterial; j++ {
			avgDemand := float64(20 + rng.Intn(60))
			stdDev := avgDemand * 0.3
			leadTime := 15 + rng.Intn(30)
			unitCost := math.Round((50+rng.Float64()*450)*100) / 100
			supplier := fmt.Sprintf("Supplier %c", 'A'+rng.Intn(5))

			m := ComputeMetrics(avgDemand, leadTime, stdDev, p.ServiceLevel)
			stock := p.Policy.stockFor(material, j, m.ReorderPoint, rng)

			records = append(records, domain.ItemRecord{
				ID:           fmt.Sprintf("M%d%03d", i, j),
				Material:     material,
				AvgDemand:    avgDemand,
				DemandStdDev: stdDev,
				LeadTimeDays: leadTime,
				UnitCost:     unitCost,
				Supplier:     supplier,
				CurrentStock: stock,
				SafetyStock:  m.SafetyStock,
				ReorderPoint: m.ReorderPoint,
				ServiceLevel: p.ServiceLevel,
				Status:       domain.Classify(stock, m.ReorderPoint),
				Fallback:     m.Fallback,
			})
		}
	}

	return records
}

func (sp StockPolicy) stockFor(material string, idx, reorderPoint int, rng *rand.Rand) int {
	if ratios, ok := sp.BiasRatios[material]; ok && len(ratios) > 0 {
		return int(float64(reorderPoint) * ratios[idx%len(ratios)])
	}

	lo := float64(reorderPoint) * sp.HealthyMin
	hi := float64(reorderPoint) * sp.HealthyMax
	if hi <= lo {
		return int(lo)
	}
	return int(lo + rng.Float64()*(hi-lo))
}
