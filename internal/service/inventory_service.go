package service

import (
	"context"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/cache"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/inventory"
)

// InventoryService wires the generator, calculator and aggregation engine
// behind the API. The analytics themselves are pure value-passing
// functions; this layer only adds caching and parallelism at the edges.
type InventoryService struct {
	params inventory.GeneratorParams
	cache  cache.SummaryCache
}

func NewInventoryService(params inventory.GeneratorParams, cacheImpl cache.SummaryCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopSummaryCache()
	}
	return &InventoryService{params: params.WithDefaults(), cache: cacheImpl}
}

// Items returns the full synthetic inventory with derived metrics.
func (s *InventoryService) Items(ctx context.Context) []domain.ItemRecord {
	return inventory.Generate(s.params)
}

// Summary returns the material-level rollup, served from the cache when
// the generation parameters are unchanged.
func (s *InventoryService) Summary(ctx context.Context) ([]domain.MaterialSummary, error) {
	if summaries, ok, err := s.cache.Get(ctx, s.params); err == nil && ok {
		return summaries, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("inventory: cache get summary failed")
	}

	summaries := inventory.Summarize(inventory.Generate(s.params))

	if err := s.cache.Set(ctx, s.params, summaries); err != nil {
		log.Warn().Err(err).Msg("inventory: cache set summary failed")
	}

	return summaries, nil
}

// Alerts lists items below their reorder point.
func (s *InventoryService) Alerts(ctx context.Context) []domain.ReorderAlert {
	return inventory.Alerts(inventory.Generate(s.params))
}

// EnrichBatch derives replenishment metrics for externally supplied item
// data, bypassing the synthetic generator. Items are independent, so the
// work fans out across CPUs; output order matches input order.
func (s *InventoryService) EnrichBatch(ctx context.Context, bases []domain.ItemBase) ([]domain.ItemRecord, error) {
	records := make([]domain.ItemRecord, len(bases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, base := range bases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i] = inventory.Enrich(base, s.params.ServiceLevel)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
