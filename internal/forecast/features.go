package forecast

import (
	"math"

	"stockdash/internal/calculator"
	"stockdash/internal/model"
)

// Feature column layout. Close must stay in column 0: it is the prediction
// target and the only column inverse-transformed during rollout.
const (
	colClose = 0
	colMA5   = 1
	colMA20  = 2

	numColumns = 3

	ma5Window  = 5
	ma20Window = 20
)

// DefaultLookback is the window size fed to the model, in trading days.
const DefaultLookback = 30

// FeatureSet is the supervised-learning view of a price history. Each X row
// is a lookback-day window of scaled {Close, MA5, MA20} rows flattened into a
// single vector; Y holds the scaled next-day Close aligned with each window.
type FeatureSet struct {
	X       [][]float64
	Y       []float64
	Scaler  *MinMaxScaler
	Columns []string
}

// Lookback returns the window size this set was built with.
func (fs *FeatureSet) Lookback() int {
	if len(fs.X) == 0 {
		return 0
	}
	return len(fs.X[0]) / numColumns
}

// BuildFeatures converts a price history into a chronologically ordered
// feature matrix plus aligned targets. Rows are never shuffled: shuffling a
// time series would leak future information into training.
func BuildFeatures(bars []model.OHLCV, lookback int) (*FeatureSet, error) {
	if len(bars) < lookback {
		return nil, &InsufficientDataError{Got: len(bars), Need: lookback}
	}

	closes := calculator.ExtractCloses(bars)

	// Derived columns: raw Close plus its 5- and 20-day trailing means. The
	// leading positions of the mean columns have no full window yet.
	cols := [numColumns][]float64{
		colClose: closes,
		colMA5:   calculator.RollingMean(closes, ma5Window),
		colMA20:  calculator.RollingMean(closes, ma20Window),
	}
	names := []string{"Close", "MA5", "MA20"}

	rows := make([][]float64, len(bars))
	for i := range rows {
		rows[i] = make([]float64, numColumns)
	}
	for c, col := range cols {
		filled := fillMissing(col)
		for i, v := range filled {
			if math.IsNaN(v) {
				return nil, &DataQualityError{Column: names[c]}
			}
			rows[i][c] = v
		}
	}

	// Fit once over the whole derived series, not per window.
	scaler := FitMinMax(rows, numColumns)
	scaled := make([][]float64, len(rows))
	for i, row := range rows {
		scaled[i] = make([]float64, numColumns)
		for c, v := range row {
			scaled[i][c] = scaler.Scale(c, v)
		}
	}

	fs := &FeatureSet{Scaler: scaler, Columns: names}
	for i := lookback; i < len(scaled); i++ {
		window := make([]float64, 0, lookback*numColumns)
		for _, row := range scaled[i-lookback : i] {
			window = append(window, row...)
		}
		fs.X = append(fs.X, window)
		fs.Y = append(fs.Y, scaled[i][colClose])
	}

	return fs, nil
}

// fillMissing forward-fills then backward-fills NaN values, mirroring a
// ffill/bfill pass. A column with no valid value at all stays NaN.
func fillMissing(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	last := math.NaN()
	for i, v := range out {
		if math.IsNaN(v) {
			out[i] = last
		} else {
			last = v
		}
	}

	next := math.NaN()
	for i := len(out) - 1; i >= 0; i-- {
		if math.IsNaN(out[i]) {
			out[i] = next
		} else {
			next = out[i]
		}
	}

	return out
}
