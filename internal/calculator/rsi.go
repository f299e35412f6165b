package calculator

import (
	"errors"

	"stockdash/internal/model"
)

// CalculateRSI computes the RSI over the given period using simple rolling
// means of gains and losses. Requires at least period+1 bars; returns the
// neutral value 50.0 when data is insufficient. A zero average loss saturates
// the oscillator at 100 rather than dividing by zero.
func CalculateRSI(bars []model.OHLCV, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < period+1 {
		return 50.0, nil // default when data insufficient
	}

	closes := extractCloses(bars)

	// Average gain/loss over the most recent `period` day-over-day deltas.
	var avgGain, avgLoss float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0, nil // flat series, no direction
		}
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
