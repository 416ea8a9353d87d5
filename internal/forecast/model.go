// Package forecast fits an additive trend + yearly-seasonality model to a
// monthly demand series and projects it forward with an uncertainty band.
// Each Fit builds a fresh model from scratch; nothing is shared between
// invocations, so independent forecasts may run concurrently.
package forecast

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/NehaAnalyzes/Demand-forecasting/internal/domain"
)

const (
	// MinHistoryPoints is the fewest distinct monthly observations that
	// give the yearly seasonal component two full cycles to learn from.
	MinHistoryPoints = 24

	MaxHorizon    = 36
	MinConfidence = 0.80
	MaxConfidence = 0.99
)

// Config selects the projection horizon and the width of the uncertainty
// band, matching the reference dashboard's sliders.
type Config struct {
	Horizon    int     `json:"horizon"`
	Confidence float64 `json:"confidence"`
}

// Validate rejects out-of-range configuration before any fitting starts.
func (c Config) Validate() error {
	if c.Horizon < 1 || c.Horizon > MaxHorizon {
		return fmt.Errorf("%w: horizon %d outside [1, %d]", domain.ErrInvalidParameter, c.Horizon, MaxHorizon)
	}
	if c.Confidence < MinConfidence || c.Confidence > MaxConfidence {
		return fmt.Errorf("%w: confidence %.2f outside [%.2f, %.2f]",
			domain.ErrInvalidParameter, c.Confidence, MinConfidence, MaxConfidence)
	}
	return nil
}

// Model is a fitted additive decomposition: a linear trend over the
// observation index plus a month-of-year seasonal offset, with the
// residual spread driving the uncertainty band. Exported fields are what
// Snapshot serializes; restoring them reproduces predictions exactly.
type Model struct {
	Intercept float64     `msgpack:"intercept"`
	Slope     float64     `msgpack:"slope"`
	Seasonal  [12]float64 `msgpack:"seasonal"`
	Sigma     float64     `msgpack:"sigma"`
	Observed  int         `msgpack:"observed"`
	LastYear  int         `msgpack:"last_year"`
	LastMonth int         `msgpack:"last_month"`
}

// Fit builds a model from a monthly history. Dates must be strictly
// increasing; fewer than MinHistoryPoints observations fail with
// ErrInsufficientData rather than producing a degenerate forecast.
func Fit(history []domain.DemandPoint) (*Model, error) {
	if len(history) < MinHistoryPoints {
		return nil, fmt.Errorf("%w: %d points, need at least %d",
			domain.ErrInsufficientData, len(history), MinHistoryPoints)
	}
	for i := 1; i < len(history); i++ {
		if !history[i].Date.After(history[i-1].Date) {
			return nil, fmt.Errorf("%w: history dates not strictly increasing at index %d",
				domain.ErrInvalidParameter, i)
		}
	}

	n := len(history)
	ts := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range history {
		ts[i] = float64(i)
		ys[i] = p.Quantity
	}

	intercept, slope := stat.LinearRegression(ts, ys, nil, false)

	// Seasonal offsets are the per-month means of the detrended series.
	var sums, counts [12]float64
	for i, p := range history {
		m := int(p.Date.Month()) - 1
		sums[m] += ys[i] - (intercept + slope*ts[i])
		counts[m]++
	}

	model := &Model{
		Intercept: intercept,
		Slope:     slope,
		Observed:  n,
		LastYear:  history[n-1].Date.Year(),
		LastMonth: int(history[n-1].Date.Month()),
	}
	for m := 0; m < 12; m++ {
		if counts[m] > 0 {
			model.Seasonal[m] = sums[m] / counts[m]
		}
	}

	residuals := make([]float64, n)
	for i, p := range history {
		m := int(p.Date.Month()) - 1
		residuals[i] = ys[i] - (intercept + slope*ts[i] + model.Seasonal[m])
	}
	model.Sigma = stat.StdDev(residuals, nil)

	return model, nil
}

// Predict extrapolates the fitted components over cfg.Horizon future
// monthly buckets. The band is point +/- z(confidence) * sigma, so
// lower <= point <= upper always holds and a wider confidence setting
// can only widen intervals. Deterministic for a given model and config.
func (m *Model) Predict(cfg Config) ([]domain.ForecastPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + cfg.Confidence/2)
	half := z * m.Sigma

	points := make([]domain.ForecastPoint, 0, cfg.Horizon)
	for h := 1; h <= cfg.Horizon; h++ {
		period := time.Date(m.LastYear, time.Month(m.LastMonth+h), 1, 0, 0, 0, 0, time.UTC)
		t := float64(m.Observed - 1 + h)
		point := m.Intercept + m.Slope*t + m.Seasonal[period.Month()-1]

		points = append(points, domain.ForecastPoint{
			Period: period,
			Point:  point,
			Lower:  point - half,
			Upper:  point + half,
		})
	}

	return points, nil
}

// Forecast is the one-shot path: validate, fit from scratch, predict.
func Forecast(history []domain.DemandPoint, cfg Config) ([]domain.ForecastPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model, err := Fit(history)
	if err != nil {
		return nil, err
	}

	return model.Predict(cfg)
}

// Snapshot serializes the fitted model state as an opaque blob. Loading
// it back and predicting the same horizon and confidence yields output
// identical to the original fit.
func (m *Model) Snapshot() ([]byte, error) {
	blob, err := msgpack.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode model snapshot: %w", err)
	}
	return blob, nil
}

// LoadSnapshot restores a model serialized by Snapshot.
func LoadSnapshot(blob []byte) (*Model, error) {
	var m Model
	if err := msgpack.Unmarshal(blob, &m); err != nil {
		return nil, fmt.Errorf("decode model snapshot: %w", err)
	}
	return &m, nil
}
