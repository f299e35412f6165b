package calculator

import (
	"errors"

	"stockdash/internal/model"
)

// MACD spans follow the standard 12/26/9 convention.
const (
	macdFastSpan   = 12
	macdSlowSpan   = 26
	macdSignalSpan = 9
)

// CalculateMACD computes the MACD line (EMA12 - EMA26 of closes) and its
// 9-period EMA signal line, returning the latest value of each.
func CalculateMACD(bars []model.OHLCV) (macd, signal float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}

	closes := extractCloses(bars)
	fast := EMA(closes, macdFastSpan)
	slow := EMA(closes, macdSlowSpan)

	macdSeries := make([]float64, len(closes))
	for i := range closes {
		macdSeries[i] = fast[i] - slow[i]
	}
	signalSeries := EMA(macdSeries, macdSignalSpan)

	return macdSeries[len(macdSeries)-1], signalSeries[len(signalSeries)-1], nil
}
