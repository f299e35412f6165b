package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"stockdash/internal/model"
)

// periodDays maps a period to an approximate trading-day count for sources
// that take a row limit instead of a range string.
var periodDays = map[model.Period]int{
	model.Period1Mo: 22,
	model.Period3Mo: 66,
	model.Period6Mo: 132,
	model.Period1Y:  252,
	model.Period2Y:  504,
	model.Period5Y:  1260,
}

// DataProxyFetcher implements Fetcher against a self-hosted market-data
// proxy, for deployments that cannot reach Yahoo directly.
type DataProxyFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewDataProxyFetcher creates a new fetcher with optional proxy support.
func NewDataProxyFetcher(baseURL, apiKey, proxyURL string) *DataProxyFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &DataProxyFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *DataProxyFetcher) Name() string { return "dataproxy" }

// proxyBar is the expected JSON shape from the data proxy.
type proxyBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// FetchHistory fetches daily bars covering the given period.
func (f *DataProxyFetcher) FetchHistory(ctx context.Context, symbol string, period model.Period) ([]model.OHLCV, error) {
	days, ok := periodDays[period]
	if !ok {
		return nil, fmt.Errorf("dataproxy: unsupported period %q", period)
	}

	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&limit=%d", f.BaseURL, url.QueryEscape(symbol), days)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}

	var proxyBars []proxyBar
	if err := json.NewDecoder(resp.Body).Decode(&proxyBars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	if len(proxyBars) == 0 {
		return nil, ErrNoData
	}

	bars := make([]model.OHLCV, len(proxyBars))
	for i, pb := range proxyBars {
		bars[i] = model.OHLCV{
			Time:   time.Unix(pb.Timestamp, 0).UTC(),
			Open:   pb.Open,
			High:   pb.High,
			Low:    pb.Low,
			Close:  pb.Close,
			Volume: pb.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
