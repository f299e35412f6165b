package calculator

import (
	"errors"
	"math"

	"stockdash/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// RollingMean returns the trailing mean series over the given window. The
// first window-1 positions have no full window and are NaN.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// EMA returns the exponential moving average series with smoothing factor
// alpha = 2/(span+1), seeded with the first value.
func EMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// ExtractCloses returns the Close column of the given bars.
func ExtractCloses(bars []model.OHLCV) []float64 {
	return extractCloses(bars)
}
