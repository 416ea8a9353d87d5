package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/config"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/inventory"
)

const (
	summaryKeyPrefix     = "material:summary"
	summaryScanBatchSize = 100
)

// SummaryCache caches material rollups keyed by a fingerprint of the
// generation parameters, so an unchanged input set never recomputes. The
// analytics core itself stays value-passing; all caching lives here, at
// the boundary.
type SummaryCache interface {
	Get(ctx context.Context, params inventory.GeneratorParams) ([]domain.MaterialSummary, bool, error)
	Set(ctx context.Context, params inventory.GeneratorParams, summaries []domain.MaterialSummary) error
	InvalidateAll(ctx context.Context) error
}

type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopSummaryCache struct{}

func NewSummaryCache(cfg config.CacheConfig) (SummaryCache, error) {
	if !cfg.Enabled {
		return &noopSummaryCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisSummaryCache{client: client, ttl: ttl}, nil
}

func NewNoopSummaryCache() SummaryCache {
	return &noopSummaryCache{}
}

func (c *redisSummaryCache) Get(ctx context.Context, params inventory.GeneratorParams) ([]domain.MaterialSummary, bool, error) {
	key := buildSummaryKey(params)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var summaries []domain.MaterialSummary
	if err := json.Unmarshal(payload, &summaries); err != nil {
		return nil, false, fmt.Errorf("decode material summary cache: %w", err)
	}

	return summaries, true, nil
}

func (c *redisSummaryCache) Set(ctx context.Context, params inventory.GeneratorParams, summaries []domain.MaterialSummary) error {
	key := buildSummaryKey(params)
	payload, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("encode material summary cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisSummaryCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, summaryKeyPrefix, summaryScanBatchSize)
}

func (n *noopSummaryCache) Get(ctx context.Context, params inventory.GeneratorParams) ([]domain.MaterialSummary, bool, error) {
	return nil, false, nil
}

func (n *noopSummaryCache) Set(ctx context.Context, params inventory.GeneratorParams, summaries []domain.MaterialSummary) error {
	return nil
}

func (n *noopSummaryCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildSummaryKey(params inventory.GeneratorParams) string {
	return fmt.Sprintf("%s:%s", summaryKeyPrefix, Fingerprint(params))
}

// Fingerprint hashes the inputs that determine a generated inventory.
// Identical parameters always produce the same key, and any change to
// the material list, item count, seed, service level or stock policy
// produces a new one, so stale rollups can never be served for changed
// inputs.
func Fingerprint(params inventory.GeneratorParams) string {
	materials := append([]string(nil), params.Materials...)
	sort.Strings(materials)

	parts := []string{
		"materials=" + strings.Join(materials, ","),
		fmt.Sprintf("items=%d", params.ItemsPerMaterial),
		fmt.Sprintf("seed=%d", params.Seed),
		fmt.Sprintf("service_level=%.4f", params.ServiceLevel),
		"policy=" + policyKey(params.Policy),
	}

	raw := strings.Join(parts, "|")
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// policyKey flattens a stock policy into a stable string: bias ratios in
// sorted material order plus the healthy range. The policy sets every
// item's on-hand stock, so it must participate in the cache key.
func policyKey(policy inventory.StockPolicy) string {
	biased := make([]string, 0, len(policy.BiasRatios))
	for material := range policy.BiasRatios {
		biased = append(biased, material)
	}
	sort.Strings(biased)

	var b strings.Builder
	for _, material := range biased {
		b.WriteString(material)
		b.WriteByte('=')
		for i, ratio := range policy.BiasRatios[material] {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%.4f", ratio)
		}
		b.WriteByte(';')
	}
	fmt.Fprintf(&b, "healthy=%.4f-%.4f", policy.HealthyMin, policy.HealthyMax)
	return b.String()
}
