package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

func TestGenerateReproducible(t *testing.T) {
	params := GeneratorParams{Seed: 42}

	first := Generate(params)
	second := Generate(params)

	assert.Equal(t, first, second)
}

func TestGenerateDifferentSeeds(t *testing.T) {
	first := Generate(GeneratorParams{Seed: 42})
	second := Generate(GeneratorParams{Seed: 43})

	assert.NotEqual(t, first, second)
}

func TestGenerateShape(t *testing.T) {
	records := Generate(GeneratorParams{
		Materials:        []string{"Steel", "Cement"},
		ItemsPerMaterial: 3,
		Seed:             7,
	})

	require.Len(t, records, 6)
	assert.Equal(t, "M0000", records[0].ID)
	assert.Equal(t, "M1002", records[5].ID)
	assert.Equal(t, "Steel", records[0].Material)
	assert.Equal(t, "Cement", records[3].Material)
}

func TestGenerateParameterRanges(t *testing.T) {
	for _, item := range Generate(GeneratorParams{Seed: 42}) {
		assert.GreaterOrEqual(t, item.AvgDemand, 20.0)
		assert.Less(t, item.AvgDemand, 80.0)
		assert.InDelta(t, item.AvgDemand*0.3, item.DemandStdDev, 1e-9)
		assert.GreaterOrEqual(t, item.LeadTimeDays, 15)
		assert.Less(t, item.LeadTimeDays, 45)
		assert.GreaterOrEqual(t, item.UnitCost, 50.0)
		assert.LessOrEqual(t, item.UnitCost, 500.0)
		assert.Regexp(t, `^Supplier [A-E]$`, item.Supplier)
		assert.GreaterOrEqual(t, item.ReorderPoint, item.SafetyStock)
		assert.False(t, item.Fallback)
	}
}

func TestGenerateDefaultPolicyBias(t *testing.T) {
	records := Generate(GeneratorParams{Seed: 42})

	byMaterial := make(map[string][]domain.ItemRecord)
	for _, item := range records {
		byMaterial[item.Material] = append(byMaterial[item.Material], item)
	}

	for _, item := range byMaterial["Cement"] {
		assert.NotEqual(t, domain.StatusInStock, item.Status,
			"cement item %s should sit below its reorder point", item.ID)
	}
	for _, item := range byMaterial["Equipment"] {
		assert.Equal(t, domain.StatusCritical, item.Status,
			"equipment item %s should be critical", item.ID)
	}
	for _, material := range []string{"Steel", "Conductors"} {
		for _, item := range byMaterial[material] {
			assert.Equal(t, domain.StatusInStock, item.Status,
				"%s item %s should be healthy", material, item.ID)
		}
	}
}

func TestGenerateUnbiasedPolicy(t *testing.T) {
	// without bias ratios every category gets healthy stock, showing the
	// demo bias is policy rather than calculator behavior
	records := Generate(GeneratorParams{
		Seed:   42,
		Policy: StockPolicy{HealthyMin: 1.2, HealthyMax: 2.5},
	})

	for _, item := range records {
		assert.Equal(t, domain.StatusInStock, item.Status)
	}
}

func TestEnrichBypassesGenerator(t *testing.T) {
	base := domain.ItemBase{
		ID:           "EXT-1",
		Material:     "Steel",
		AvgDemand:    40,
		DemandStdDev: 12,
		LeadTimeDays: 20,
		UnitCost:     99.5,
		Supplier:     "Supplier X",
		CurrentStock: 900,
	}

	record := Enrich(base, 0.95)

	assert.Equal(t, "EXT-1", record.ID)
	assert.Equal(t, 900, record.CurrentStock)
	assert.Equal(t, 0.95, record.ServiceLevel)
	assert.GreaterOrEqual(t, record.ReorderPoint, record.SafetyStock)
	assert.Equal(t, domain.Classify(900, record.ReorderPoint), record.Status)
}
