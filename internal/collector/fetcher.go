package collector

import (
	"context"
	"errors"

	"stockdash/internal/model"
)

// ErrNoData signals that the upstream returned nothing usable for the
// requested symbol and period. Callers treat it as "no usable data" and do
// not retry; transient retries happen inside the fetcher.
var ErrNoData = errors.New("no data found or request was rate-limited")

// Fetcher defines the interface for fetching historical market data.
type Fetcher interface {
	// FetchHistory returns the daily bars for one of the accepted periods,
	// sorted chronologically.
	FetchHistory(ctx context.Context, symbol string, period model.Period) ([]model.OHLCV, error)
	Name() string
}
