package collector

import (
	"context"
	"time"

	"stockdash/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, _ string, period model.Period) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, periodDays[period]), nil
}

// GenerateMockBars produces a gently drifting business-day series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, 0, count)
	day := time.Now().UTC().AddDate(0, 0, -count*7/5) // rough calendar span for count trading days
	for len(bars) < count {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			i := len(bars)
			p := basePrice * (1 + float64(i-count/2)*0.001)
			bars = append(bars, model.OHLCV{
				Time:   day,
				Open:   p * 0.999,
				High:   p * 1.005,
				Low:    p * 0.995,
				Close:  p,
				Volume: 1_000_000,
			})
		}
		day = day.AddDate(0, 0, 1)
	}
	return bars
}
