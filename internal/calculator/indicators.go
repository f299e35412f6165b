package calculator

import (
	"github.com/rs/zerolog/log"

	"stockdash/internal/model"
)

// rsiPeriod is the standard 14-day RSI lookback.
const rsiPeriod = 14

// Indicators computes the latest-day RSI, MACD, and signal line values for
// the dashboard. Individual indicator failures fall back to neutral defaults
// with a warning rather than failing the whole set.
func Indicators(bars []model.OHLCV) model.TechnicalIndicators {
	ind := model.TechnicalIndicators{RSI: 50}

	if rsi, err := CalculateRSI(bars, rsiPeriod); err != nil {
		log.Warn().Err(err).Msg("RSI calculation failed, defaulting to 50")
	} else {
		ind.RSI = rsi
	}

	if macd, signal, err := CalculateMACD(bars); err != nil {
		log.Warn().Err(err).Msg("MACD calculation failed, defaulting to 0")
	} else {
		ind.MACD = macd
		ind.SignalLine = signal
	}

	return ind
}
