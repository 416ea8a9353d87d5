package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/forecast"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/procurement"
)

// ForecastResult bundles one forecast invocation's output with the
// opaque snapshot of the model that produced it.
type ForecastResult struct {
	Points   []domain.ForecastPoint `json:"points"`
	Snapshot []byte                 `json:"-"`
}

// ForecastService runs the demand forecast over the flat procurement
// history. Every call refits from scratch; no model state is shared
// between invocations, so concurrent forecasts are safe.
type ForecastService struct {
	historyPath   string
	snapshotDir   string
	plannedBudget float64
}

func NewForecastService(historyPath, snapshotDir string, plannedBudget float64) *ForecastService {
	return &ForecastService{
		historyPath:   historyPath,
		snapshotDir:   snapshotDir,
		plannedBudget: plannedBudget,
	}
}

// Forecast loads the history, fits a fresh model and projects the
// configured horizon. The context is checked between the load and the
// fit so a cancelled request abandons the expensive step.
func (s *ForecastService) Forecast(ctx context.Context, cfg forecast.Config) (*ForecastResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records, err := procurement.LoadHistory(s.historyPath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.ForecastSeries(procurement.MonthlyDemand(records), cfg)
}

// ForecastSeries fits and predicts over an already-prepared series.
func (s *ForecastService) ForecastSeries(series []domain.DemandPoint, cfg forecast.Config) (*ForecastResult, error) {
	model, err := forecast.Fit(series)
	if err != nil {
		return nil, err
	}

	points, err := model.Predict(cfg)
	if err != nil {
		return nil, err
	}

	snapshot, err := model.Snapshot()
	if err != nil {
		return nil, err
	}

	return &ForecastResult{Points: points, Snapshot: snapshot}, nil
}

// SaveSnapshot persists a fitted model blob for later re-prediction.
func (s *ForecastService) SaveSnapshot(snapshot []byte) (string, error) {
	path := filepath.Join(s.snapshotDir, fmt.Sprintf("model_%s.msgpack", time.Now().UTC().Format("20060102T150405")))
	if err := os.WriteFile(path, snapshot, 0644); err != nil {
		return "", fmt.Errorf("write model snapshot: %w", err)
	}
	log.Info().Str("path", path).Msg("saved forecast model snapshot")
	return path, nil
}

// PredictFromSnapshot reloads a persisted model and re-predicts. The
// output for an unchanged horizon and confidence is identical to the
// original fit's.
func (s *ForecastService) PredictFromSnapshot(snapshot []byte, cfg forecast.Config) ([]domain.ForecastPoint, error) {
	model, err := forecast.LoadSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	return model.Predict(cfg)
}

// Overview returns the procurement planning header metrics plus the
// budget utilization percentage.
func (s *ForecastService) Overview(ctx context.Context) (domain.ProcurementOverview, int, error) {
	records, err := procurement.LoadHistory(s.historyPath)
	if err != nil {
		return domain.ProcurementOverview{}, 0, err
	}

	overview := procurement.Overview(records)
	return overview, procurement.BudgetUtilization(overview, s.plannedBudget), nil
}

// Trend returns the monthly demand series used as forecast input, for
// charting alongside the projection.
func (s *ForecastService) Trend(ctx context.Context) ([]domain.DemandPoint, error) {
	records, err := procurement.LoadHistory(s.historyPath)
	if err != nil {
		return nil, err
	}
	return procurement.MonthlyDemand(records), nil
}
