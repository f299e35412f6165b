package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdash/internal/model"
)

// linearBars builds n business-day bars with closes rising by step from start.
func linearBars(n int, start, step float64) []model.OHLCV {
	bars := make([]model.OHLCV, 0, n)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
	for i := 0; i < n; i++ {
		for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			day = day.AddDate(0, 0, 1)
		}
		c := start + float64(i)*step
		bars = append(bars, model.OHLCV{
			Time:   day,
			Open:   c * 0.999,
			High:   c * 1.004,
			Low:    c * 0.996,
			Close:  c,
			Volume: 1_000_000,
		})
		day = day.AddDate(0, 0, 1)
	}
	return bars
}

func TestBuildFeatures_InsufficientData(t *testing.T) {
	for _, n := range []int{0, 1, 10, 29} {
		_, err := BuildFeatures(linearBars(n, 100, 1), DefaultLookback)
		require.Error(t, err, "len=%d", n)
		assert.True(t, IsInsufficientData(err), "len=%d", n)
		assert.Contains(t, err.Error(), "30", "error must name the minimum length")
	}
}

func TestBuildFeatures_WindowShapes(t *testing.T) {
	fs, err := BuildFeatures(linearBars(40, 100, 1), DefaultLookback)
	require.NoError(t, err)

	require.Len(t, fs.X, 10) // 40 bars - 30 lookback
	require.Len(t, fs.Y, 10)
	assert.Equal(t, DefaultLookback, fs.Lookback())
	for _, window := range fs.X {
		assert.Len(t, window, DefaultLookback*numColumns)
	}
	assert.Equal(t, []string{"Close", "MA5", "MA20"}, fs.Columns)
}

func TestBuildFeatures_ScaledRangeAndOrder(t *testing.T) {
	fs, err := BuildFeatures(linearBars(60, 100, 1), DefaultLookback)
	require.NoError(t, err)

	for _, window := range fs.X {
		for _, v := range window {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	// Targets of a rising series stay chronological: each scaled next-day
	// close exceeds the previous one.
	for i := 1; i < len(fs.Y); i++ {
		assert.Greater(t, fs.Y[i], fs.Y[i-1])
	}
}

func TestBuildFeatures_NoWindowsAtExactLookback(t *testing.T) {
	fs, err := BuildFeatures(linearBars(DefaultLookback, 100, 1), DefaultLookback)
	require.NoError(t, err)
	assert.Empty(t, fs.X)
	assert.Empty(t, fs.Y)
}

func TestMinMaxScaler_RoundTrip(t *testing.T) {
	rows := [][]float64{
		{100, 101, 99},
		{110, 105, 101.5},
		{95.25, 103, 100},
	}
	s := FitMinMax(rows, 3)

	for _, row := range rows {
		for c, v := range row {
			scaled := s.Scale(c, v)
			assert.InDelta(t, v, s.Inverse(c, scaled), 1e-9)
		}
	}
}

func TestMinMaxScaler_ZeroRangeColumn(t *testing.T) {
	rows := [][]float64{{5}, {5}, {5}}
	s := FitMinMax(rows, 1)
	assert.Equal(t, 0.0, s.Scale(0, 5))
	assert.Equal(t, 5.0, s.Inverse(0, 0))
}

func TestFillMissing(t *testing.T) {
	nan := math.NaN()

	got := fillMissing([]float64{nan, nan, 3, nan, 5})
	assert.Equal(t, []float64{3, 3, 3, 3, 5}, got)

	allNaN := fillMissing([]float64{nan, nan})
	for _, v := range allNaN {
		assert.True(t, math.IsNaN(v))
	}
}
