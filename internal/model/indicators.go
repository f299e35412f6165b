package model

// TechnicalIndicators holds the latest-day scalar indicator values shown on
// the dashboard.
type TechnicalIndicators struct {
	RSI        float64 `json:"rsi"`
	MACD       float64 `json:"macd"`
	SignalLine float64 `json:"signal_line"`
}
