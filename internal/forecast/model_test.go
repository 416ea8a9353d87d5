package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

// monthlyHistory builds a deterministic series with trend, yearly
// seasonality and a residual component the seasonal means cannot fully
// absorb, so the fitted sigma is non-zero.
func monthlyHistory(months int) []domain.DemandPoint {
	points := make([]domain.DemandPoint, 0, months)
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		date := start.AddDate(0, i, 0)
		qty := 1000 + 12*float64(i) +
			150*math.Sin(2*math.Pi*float64(date.Month())/12) +
			float64(i%7)*9
		points = append(points, domain.DemandPoint{Date: date, Quantity: qty})
	}
	return points
}

func TestForecastDeterministic(t *testing.T) {
	history := monthlyHistory(36)
	cfg := Config{Horizon: 12, Confidence: 0.95}

	first, err := Forecast(history, cfg)
	require.NoError(t, err)
	second, err := Forecast(history, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestForecastIntervalOrdering(t *testing.T) {
	points, err := Forecast(monthlyHistory(48), Config{Horizon: 36, Confidence: 0.90})
	require.NoError(t, err)
	require.Len(t, points, 36)

	for _, p := range points {
		assert.LessOrEqual(t, p.Lower, p.Point, "period %s", p.Period)
		assert.LessOrEqual(t, p.Point, p.Upper, "period %s", p.Period)
	}
}

func TestForecastHorizonBuckets(t *testing.T) {
	history := monthlyHistory(30)
	points, err := Forecast(history, Config{Horizon: 6, Confidence: 0.95})
	require.NoError(t, err)
	require.Len(t, points, 6)

	last := history[len(history)-1].Date
	for i, p := range points {
		expected := time.Date(last.Year(), last.Month()+time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, expected.Equal(p.Period), "bucket %d: want %s got %s", i, expected, p.Period)
	}
}

func TestForecastWideningConfidence(t *testing.T) {
	history := monthlyHistory(36)

	narrow, err := Forecast(history, Config{Horizon: 12, Confidence: 0.80})
	require.NoError(t, err)
	wide, err := Forecast(history, Config{Horizon: 12, Confidence: 0.99})
	require.NoError(t, err)

	for i := range narrow {
		assert.Equal(t, narrow[i].Point, wide[i].Point)
		assert.LessOrEqual(t, wide[i].Lower, narrow[i].Lower)
		assert.GreaterOrEqual(t, wide[i].Upper, narrow[i].Upper)
	}
}

func TestFitInsufficientData(t *testing.T) {
	_, err := Fit(monthlyHistory(MinHistoryPoints - 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestFitNonIncreasingDates(t *testing.T) {
	history := monthlyHistory(30)
	history[10].Date = history[9].Date

	_, err := Fit(history)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestConfigValidation(t *testing.T) {
	history := monthlyHistory(30)

	for _, cfg := range []Config{
		{Horizon: 0, Confidence: 0.95},
		{Horizon: 37, Confidence: 0.95},
		{Horizon: 12, Confidence: 0.5},
		{Horizon: 12, Confidence: 1.0},
	} {
		_, err := Forecast(history, cfg)
		require.Error(t, err, "config %+v", cfg)
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	model, err := Fit(monthlyHistory(36))
	require.NoError(t, err)

	cfg := Config{Horizon: 12, Confidence: 0.95}
	original, err := model.Predict(cfg)
	require.NoError(t, err)

	blob, err := model.Snapshot()
	require.NoError(t, err)

	restored, err := LoadSnapshot(blob)
	require.NoError(t, err)

	replayed, err := restored.Predict(cfg)
	require.NoError(t, err)

	assert.Equal(t, original, replayed)
}

func TestLoadSnapshotRejectsGarbage(t *testing.T) {
	_, err := LoadSnapshot([]byte("not a snapshot"))
	assert.Error(t, err)
}

func TestFitPicksUpTrend(t *testing.T) {
	model, err := Fit(monthlyHistory(48))
	require.NoError(t, err)

	// the synthetic series grows ~12 units per month
	assert.InDelta(t, 12, model.Slope, 2)
	assert.Greater(t, model.Sigma, 0.0)
}
