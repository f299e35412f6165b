package strategy

import (
	"math"

	"stockdash/internal/model"
)

// RSI zone boundaries follow the classic 30/70 convention.
const (
	rsiOversold    = 30.0
	rsiOverbought  = 70.0
	rsiExtremeLow  = 15.0
	rsiExtremeHigh = 85.0

	// macdFlatEps treats MACD readings this close to the signal line as flat
	// rather than a cross.
	macdFlatEps = 1e-9
)

func rsiZone(rsi float64) model.RSIZone {
	switch {
	case rsi < rsiOversold:
		return model.RSIOversold
	case rsi > rsiOverbought:
		return model.RSIOverbought
	default:
		return model.RSINeutral
	}
}

func macdCross(macd, signal float64) model.MACDCross {
	diff := macd - signal
	if math.Abs(diff) <= macdFlatEps {
		return model.MACDFlat
	}
	if diff > 0 {
		return model.MACDBullish
	}
	return model.MACDBearish
}
