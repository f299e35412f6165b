package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdash/internal/collector"
	"stockdash/internal/dashboard"
	"stockdash/internal/forecast"
	"stockdash/internal/model"
	"stockdash/internal/recorder"
)

func testBars(n int) []model.OHLCV {
	bars := make([]model.OHLCV, 0, n)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
	price := 100.0
	for len(bars) < n {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			bars = append(bars, model.OHLCV{
				Time:   day,
				Open:   price,
				High:   price + 1,
				Low:    price - 1,
				Close:  price,
				Volume: 1_000_000,
			})
			price++
		}
		day = day.AddDate(0, 0, 1)
	}
	return bars
}

func newTestServer(f collector.Fetcher) *Server {
	svc := dashboard.NewService(f, forecast.NewEngine(), nil, recorder.NewNoopRecorder())
	return NewServer("127.0.0.1", 0, svc)
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestHandleSummary(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	rr := doGet(t, s, "/api/v1/stocks/AAPL/summary?period=3mo")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var q model.Quote
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &q))
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, 139.0, q.Price)
	assert.Equal(t, 1.0, q.Change)
}

func TestHandleSummaryUnknownPeriod(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	rr := doGet(t, s, "/api/v1/stocks/AAPL/summary?period=3d")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "3d")
}

func TestHandleSummaryDefaultPeriod(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	rr := doGet(t, s, "/api/v1/stocks/AAPL/summary")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleIndicators(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	rr := doGet(t, s, "/api/v1/stocks/INFY.NS/indicators?period=6mo")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Symbol     string                    `json:"symbol"`
		Indicators model.TechnicalIndicators `json:"indicators"`
		Signal     model.AnalysisSignal      `json:"signal"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "INFY.NS", resp.Symbol)
	// Forty straight gains saturate the RSI.
	assert.Equal(t, 100.0, resp.Indicators.RSI)
	assert.NotEmpty(t, resp.Signal.Bias)
}

func TestHandleForecast(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	rr := doGet(t, s, "/api/v1/stocks/AAPL/forecast?period=1y")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Points []model.ForecastPoint `json:"points"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Points, forecast.DefaultHorizon)
}

func TestHandleForecastShortHistory(t *testing.T) {
	// Too few bars for the lookback window: the endpoint still answers 200
	// with an empty points array rather than an error.
	s := newTestServer(&collector.MockFetcher{Bars: testBars(10)})

	rr := doGet(t, s, "/api/v1/stocks/AAPL/forecast")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"points":[]`)
}

func TestHandleHistoryFetchFailure(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Err: errors.New("connection refused")})

	rr := doGet(t, s, "/api/v1/stocks/AAPL/history")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestHandleHistoryNoData(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Err: collector.ErrNoData})

	rr := doGet(t, s, "/api/v1/stocks/NOPE/history")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleNewsDisabled(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	rr := doGet(t, s, "/api/v1/stocks/AAPL/news")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"items":[]`)
}

func TestHandleAnalysis(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	rr := doGet(t, s, "/api/v1/stocks/AAPL/analysis?period=1y")
	require.Equal(t, http.StatusOK, rr.Code)

	var a dashboard.Analysis
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &a))
	assert.Equal(t, "AAPL", a.Quote.Symbol)
	assert.Len(t, a.Forecast, forecast.DefaultHorizon)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	rr := doGet(t, s, "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRequestIDEchoAndGenerate(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))

	rr2 := doGet(t, s, "/healthz")
	assert.NotEmpty(t, rr2.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(&collector.MockFetcher{Bars: testBars(40)})

	doGet(t, s, "/api/v1/stocks/AAPL/summary")
	rr := doGet(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "dash_http_requests_total")
}
