// Package forecast turns a raw daily price history into a short-horizon
// price prediction: it builds a supervised feature matrix over a trailing
// window, fits a random-forest regressor, and rolls the fitted model forward
// one simulated business day at a time.
package forecast

import (
	"github.com/rs/zerolog/log"

	"stockdash/internal/model"
)

// Engine defaults. The fixed seed keeps a forecast reproducible for a given
// input history.
const (
	DefaultHorizon  = 7
	DefaultNumTrees = 100
	DefaultSeed     = 42
)

// Engine produces multi-day price forecasts. The zero value is not usable;
// construct with NewEngine.
type Engine struct {
	Lookback int
	Horizon  int
	NumTrees int
	Seed     int64
}

// NewEngine returns an engine with the default lookback, horizon, tree
// count, and seed.
func NewEngine() *Engine {
	return &Engine{
		Lookback: DefaultLookback,
		Horizon:  DefaultHorizon,
		NumTrees: DefaultNumTrees,
		Seed:     DefaultSeed,
	}
}

// Forecast predicts the close for the next Horizon business days after the
// last historical bar. The model is retrained from scratch on every call;
// nothing is cached between invocations.
//
// Any failure — short history, unusable columns, degenerate fit — is logged
// and collapses to an empty result. Callers must treat an empty slice as the
// uniform "unable to predict" signal; Forecast never panics and has no error
// return.
func (e *Engine) Forecast(bars []model.OHLCV) []model.ForecastPoint {
	fs, err := BuildFeatures(bars, e.Lookback)
	if err != nil {
		log.Warn().Err(err).Int("bars", len(bars)).Msg("forecast: feature build failed")
		return nil
	}
	if len(fs.X) == 0 {
		log.Warn().Int("bars", len(bars)).Msg("forecast: no training windows available")
		return nil
	}

	forest := NewForest(e.NumTrees, e.Seed)
	if err := forest.Fit(fs.X, fs.Y); err != nil {
		log.Warn().Err(err).Msg("forecast: model fit failed")
		return nil
	}

	// Recursive rollout. window is the most recent flattened lookback×3
	// block; each step drops the oldest row and appends a synthetic row
	// holding the new scaled prediction in every column. The moving-average
	// columns are deliberately not recomputed for synthetic rows — the
	// window just shifts their shape forward, an intentional approximation.
	window := make([]float64, len(fs.X[len(fs.X)-1]))
	copy(window, fs.X[len(fs.X)-1])

	date := bars[len(bars)-1].Time
	points := make([]model.ForecastPoint, 0, e.Horizon)

	for i := 0; i < e.Horizon; i++ {
		date = NextBusinessDay(date)

		scaled, err := forest.Predict(window)
		if err != nil {
			log.Warn().Err(err).Msg("forecast: predict failed")
			return nil
		}

		points = append(points, model.ForecastPoint{
			Date:  date,
			Price: fs.Scaler.Inverse(colClose, scaled),
		})

		copy(window, window[numColumns:])
		tail := window[len(window)-numColumns:]
		for c := range tail {
			tail[c] = scaled
		}
	}

	return points
}
