package forecast

// MinMaxScaler maps each feature column into [0,1] independently. The fitted
// per-column min/max are retained so predictions can be mapped back to price
// units.
type MinMaxScaler struct {
	Min []float64
	Max []float64
}

// FitMinMax fits a scaler over the full column-major feature matrix
// (rows × columns) in one pass.
func FitMinMax(rows [][]float64, cols int) *MinMaxScaler {
	s := &MinMaxScaler{
		Min: make([]float64, cols),
		Max: make([]float64, cols),
	}
	for c := 0; c < cols; c++ {
		s.Min[c] = rows[0][c]
		s.Max[c] = rows[0][c]
	}
	for _, row := range rows {
		for c := 0; c < cols; c++ {
			if row[c] < s.Min[c] {
				s.Min[c] = row[c]
			}
			if row[c] > s.Max[c] {
				s.Max[c] = row[c]
			}
		}
	}
	return s
}

// Scale maps a raw value in column c into [0,1]. A zero-range column maps to 0.
func (s *MinMaxScaler) Scale(c int, v float64) float64 {
	rng := s.Max[c] - s.Min[c]
	if rng == 0 {
		return 0
	}
	return (v - s.Min[c]) / rng
}

// Inverse maps a scaled value in column c back to original units. A
// zero-range column inverts to the column minimum.
func (s *MinMaxScaler) Inverse(c int, v float64) float64 {
	rng := s.Max[c] - s.Min[c]
	if rng == 0 {
		return s.Min[c]
	}
	return s.Min[c] + v*rng
}
