package recorder

import "stockdash/internal/model"

// AnalysisSnapshot holds one analysis run for a symbol: the latest quote,
// indicator values, interpreted bias, and the forecast it produced.
type AnalysisSnapshot struct {
	Symbol     string
	Period     string
	Price      float64
	RSI        float64
	MACD       float64
	SignalLine float64
	Bias       string
	Forecast   []model.ForecastPoint
}

// Recorder persists analysis history for later review.
type Recorder interface {
	RecordAnalysis(snap *AnalysisSnapshot) error
	Close() error
}
