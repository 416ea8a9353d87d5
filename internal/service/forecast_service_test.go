package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
	"github.com/NehaAnalyzes/Demand-forecasting/internal/forecast"
)

func writeHistoryFile(t *testing.T, months int) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "history.csv")

	content := "Date,Quantity_Procured,State,Project_Type,GST_Rate\n"
	start := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		date := start.AddDate(0, i, 0)
		qty := 1000 + 10*i + 50*int(date.Month()) + (i%5)*7
		content += fmt.Sprintf("%s,%d,Gujarat,Transmission,18\n", date.Format("2006-01-02"), qty)
	}

	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestForecastService(t *testing.T, months int) *ForecastService {
	return NewForecastService(writeHistoryFile(t, months), t.TempDir(), 4000)
}

func TestForecastServiceEndToEnd(t *testing.T) {
	s := newTestForecastService(t, 36)
	cfg := forecast.Config{Horizon: 12, Confidence: 0.95}

	result, err := s.Forecast(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, result.Points, 12)
	require.NotEmpty(t, result.Snapshot)

	for _, p := range result.Points {
		assert.LessOrEqual(t, p.Lower, p.Point)
		assert.LessOrEqual(t, p.Point, p.Upper)
	}
}

func TestForecastServiceSnapshotReplay(t *testing.T) {
	s := newTestForecastService(t, 36)
	cfg := forecast.Config{Horizon: 12, Confidence: 0.95}

	result, err := s.Forecast(context.Background(), cfg)
	require.NoError(t, err)

	replayed, err := s.PredictFromSnapshot(result.Snapshot, cfg)
	require.NoError(t, err)
	assert.Equal(t, result.Points, replayed)
}

func TestForecastServiceSaveSnapshot(t *testing.T) {
	s := newTestForecastService(t, 36)

	result, err := s.Forecast(context.Background(), forecast.Config{Horizon: 6, Confidence: 0.90})
	require.NoError(t, err)

	path, err := s.SaveSnapshot(result.Snapshot)
	require.NoError(t, err)

	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, result.Snapshot, blob)
}

func TestForecastServiceInsufficientHistory(t *testing.T) {
	s := newTestForecastService(t, 6)

	_, err := s.Forecast(context.Background(), forecast.Config{Horizon: 12, Confidence: 0.95})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestForecastServiceRejectsBadConfigBeforeLoading(t *testing.T) {
	s := NewForecastService("does-not-exist.csv", t.TempDir(), 4000)

	_, err := s.Forecast(context.Background(), forecast.Config{Horizon: 0, Confidence: 0.95})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestForecastServiceCancelled(t *testing.T) {
	s := newTestForecastService(t, 36)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Forecast(ctx, forecast.Config{Horizon: 12, Confidence: 0.95})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForecastServiceOverviewAndTrend(t *testing.T) {
	s := newTestForecastService(t, 36)
	ctx := context.Background()

	overview, utilization, err := s.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 36, overview.Records)
	assert.Equal(t, 1, overview.States)
	assert.Equal(t, 1, overview.ProjectTypes)
	assert.InDelta(t, 18.0, overview.AvgGSTRate, 1e-9)
	assert.GreaterOrEqual(t, utilization, 0)
	assert.LessOrEqual(t, utilization, 100)

	trend, err := s.Trend(ctx)
	require.NoError(t, err)
	require.Len(t, trend, 36)
	for i := 1; i < len(trend); i++ {
		assert.True(t, trend[i-1].Date.Before(trend[i].Date))
	}
}
