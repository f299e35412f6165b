// Package collector fetches historical price data from upstream sources.
// The Yahoo fetcher spoofs a desktop browser session and wraps each request
// in a rate limiter, retry with exponential backoff, and a circuit breaker,
// because the public chart endpoint rate-limits plain clients aggressively.
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

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"stockdash/internal/model"
	"stockdash/internal/util"
)

// browserHeaders mimic a desktop Chrome session; without them the chart
// endpoint starts returning 429s within a handful of requests.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Connection":      "keep-alive",
}

const (
	fetchAttempts  = 3
	fetchBackoff   = time.Second
	requestsPerSec = 2
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
	Backoff   time.Duration     // initial retry delay, doubled per attempt

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: "https://query1.finance.yahoo.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
		Backoff: fetchBackoff,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), requestsPerSec),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:     "yahoo",
			Interval: time.Minute,
			Timeout:  30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			},
		}),
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchHistory fetches daily bars for the given period. The returned bars
// are chronological; null bars (holidays) are dropped.
func (f *YahooFetcher) FetchHistory(ctx context.Context, symbol string, period model.Period) ([]model.OHLCV, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("yahoo: unsupported period %q", period)
	}

	var bars []model.OHLCV
	err := util.Retry(ctx, fetchAttempts, f.Backoff, func() error {
		var err error
		bars, err = f.fetchChart(ctx, symbol, "1d", string(period))
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	return bars, nil
}

func (f *YahooFetcher) fetchChart(ctx context.Context, symbol, interval, rng string) ([]model.OHLCV, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		f.BaseURL, url.PathEscape(f.yahooSymbol(symbol)), interval, rng)

	body, err := f.breaker.Execute(func() (interface{}, error) {
		return f.doRequest(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body.([]byte), &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, ErrNoData
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, ErrNoData
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(toFloat(quote.Volume[i])),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *YahooFetcher) doRequest(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
