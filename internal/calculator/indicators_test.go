package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdash/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: day, Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000}
		day = day.AddDate(0, 0, 1)
	}
	return bars
}

func TestCalculateRSI_SaturatesAt100(t *testing.T) {
	// Strictly rising closes: average loss is zero, RSI pins at 100 instead
	// of faulting on the division.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi, err := CalculateRSI(barsFromCloses(closes), 14)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rsi)
}

func TestCalculateRSI_ZeroOnPureDecline(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	rsi, err := CalculateRSI(barsFromCloses(closes), 14)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, rsi, 1e-9)
}

func TestCalculateRSI_InsufficientDataDefaults(t *testing.T) {
	rsi, err := CalculateRSI(barsFromCloses([]float64{100, 101}), 14)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rsi)
}

func TestCalculateRSI_BalancedMoves(t *testing.T) {
	// Alternating +1/-1 deltas: equal average gain and loss, RSI = 50.
	closes := []float64{100}
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			closes = append(closes, closes[len(closes)-1]+1)
		} else {
			closes = append(closes, closes[len(closes)-1]-1)
		}
	}
	rsi, err := CalculateRSI(barsFromCloses(closes), 14)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, rsi, 1e-9)
}

func TestCalculateMACD_ConstantSeriesIsZero(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 250
	}
	macd, signal, err := CalculateMACD(barsFromCloses(closes))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, macd, 1e-9)
	assert.InDelta(t, 0.0, signal, 1e-9)
}

func TestCalculateMACD_RisingSeriesIsPositive(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	macd, _, err := CalculateMACD(barsFromCloses(closes))
	require.NoError(t, err)
	assert.Greater(t, macd, 0.0, "fast EMA leads slow EMA in an uptrend")
}

func TestEMA_SeedsWithFirstValue(t *testing.T) {
	out := EMA([]float64{10, 20}, 9)
	require.Len(t, out, 2)
	assert.Equal(t, 10.0, out[0])
	alpha := 2.0 / 10.0
	assert.InDelta(t, alpha*20+(1-alpha)*10, out[1], 1e-12)
}

func TestRollingMean(t *testing.T) {
	out := RollingMean([]float64{1, 2, 3, 4}, 3)
	require.Len(t, out, 4)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, 2.0, out[2], 1e-12)
	assert.InDelta(t, 3.0, out[3], 1e-12)
}

func TestIndicators_ProducesAllThree(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i%7)
	}
	ind := Indicators(barsFromCloses(closes))
	assert.GreaterOrEqual(t, ind.RSI, 0.0)
	assert.LessOrEqual(t, ind.RSI, 100.0)
	assert.False(t, math.IsNaN(ind.MACD))
	assert.False(t, math.IsNaN(ind.SignalLine))
}

func TestCalculate52WeekRange(t *testing.T) {
	bars := barsFromCloses([]float64{100, 120, 90, 110})
	high, low, err := Calculate52WeekRange(bars)
	require.NoError(t, err)
	assert.Equal(t, 121.0, high) // High = Close + 1
	assert.Equal(t, 89.0, low)   // Low = Close - 1

	_, _, err = Calculate52WeekRange(nil)
	assert.Error(t, err)
}
