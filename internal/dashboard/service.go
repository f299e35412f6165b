// Package dashboard composes data fetching, indicator computation,
// forecasting, and news sentiment into the per-symbol views the display
// layer renders.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"stockdash/internal/calculator"
	"stockdash/internal/collector"
	"stockdash/internal/forecast"
	"stockdash/internal/metrics"
	"stockdash/internal/model"
	"stockdash/internal/news"
	"stockdash/internal/recorder"
	"stockdash/internal/strategy"
)

// Service answers dashboard requests for one symbol at a time. Every call is
// independent and stateless: histories are fetched per request and the
// forecast model is retrained from scratch each time.
type Service struct {
	Fetcher  collector.Fetcher
	Engine   *forecast.Engine
	News     *news.Client // nil disables the news feed
	Recorder recorder.Recorder
}

// NewService wires a Service. rec may be a NoopRecorder.
func NewService(f collector.Fetcher, e *forecast.Engine, n *news.Client, rec recorder.Recorder) *Service {
	return &Service{Fetcher: f, Engine: e, News: n, Recorder: rec}
}

// Analysis is the full dashboard view for one symbol.
type Analysis struct {
	Quote      model.Quote               `json:"quote"`
	Indicators model.TechnicalIndicators `json:"indicators"`
	Signal     model.AnalysisSignal      `json:"signal"`
	Forecast   []model.ForecastPoint     `json:"forecast"`
}

// History fetches the raw daily bars for a symbol and period.
func (s *Service) History(ctx context.Context, symbol string, period model.Period) ([]model.OHLCV, error) {
	start := time.Now()
	bars, err := s.Fetcher.FetchHistory(ctx, symbol, period)
	metrics.ObserveFetch(s.Fetcher.Name(), err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", symbol, period, err)
	}
	return bars, nil
}

// Summary builds the quote metric card from a fetched history.
func (s *Service) Summary(ctx context.Context, symbol string, period model.Period) (*model.Quote, error) {
	bars, err := s.History(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	q := QuoteFromBars(symbol, bars)
	return &q, nil
}

// Indicators fetches a history and computes the latest indicator values plus
// their interpreted signal.
func (s *Service) Indicators(ctx context.Context, symbol string, period model.Period) (model.TechnicalIndicators, model.AnalysisSignal, error) {
	bars, err := s.History(ctx, symbol, period)
	if err != nil {
		return model.TechnicalIndicators{}, model.AnalysisSignal{}, err
	}
	ind := calculator.Indicators(bars)
	return ind, strategy.Evaluate(ind), nil
}

// Forecast fetches a history and runs the forecast engine. The error covers
// the fetch only; model failures surface as an empty forecast, which callers
// must present as "unable to predict".
func (s *Service) Forecast(ctx context.Context, symbol string, period model.Period) ([]model.ForecastPoint, error) {
	bars, err := s.History(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	points := s.Engine.Forecast(bars)
	metrics.ObserveForecast(len(points), time.Since(start))
	return points, nil
}

// NewsFeed returns recent labeled headlines for the symbol's company token
// (the part before any exchange suffix, so RELIANCE.NS queries RELIANCE).
func (s *Service) NewsFeed(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	if s.News == nil {
		return nil, nil
	}
	company, _, _ := strings.Cut(symbol, ".")
	return s.News.Fetch(ctx, company)
}

// Analyze produces the full dashboard view in one pass over a single fetched
// history and records a snapshot when a recorder is configured.
func (s *Service) Analyze(ctx context.Context, symbol string, period model.Period) (*Analysis, error) {
	bars, err := s.History(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	ind := calculator.Indicators(bars)

	start := time.Now()
	points := s.Engine.Forecast(bars)
	metrics.ObserveForecast(len(points), time.Since(start))

	a := &Analysis{
		Quote:      QuoteFromBars(symbol, bars),
		Indicators: ind,
		Signal:     strategy.Evaluate(ind),
		Forecast:   points,
	}

	if s.Recorder != nil {
		if err := s.Recorder.RecordAnalysis(&recorder.AnalysisSnapshot{
			Symbol:     symbol,
			Period:     string(period),
			Price:      a.Quote.Price,
			RSI:        ind.RSI,
			MACD:       ind.MACD,
			SignalLine: ind.SignalLine,
			Bias:       string(a.Signal.Bias),
			Forecast:   points,
		}); err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("record analysis failed")
		}
	}

	return a, nil
}

// QuoteFromBars summarises the latest bar against the one before it.
func QuoteFromBars(symbol string, bars []model.OHLCV) model.Quote {
	q := model.Quote{Symbol: symbol}
	if len(bars) == 0 {
		return q
	}

	last := bars[len(bars)-1]
	q.Price = last.Close
	q.Volume = last.Volume
	q.AsOf = last.Time

	if len(bars) > 1 {
		prev := bars[len(bars)-2]
		q.Change = last.Close - prev.Close
		if prev.Close != 0 {
			q.ChangePct = q.Change / prev.Close * 100
		}
		if prev.Volume != 0 {
			q.VolumeChangePct = float64(last.Volume-prev.Volume) / float64(prev.Volume) * 100
		}
	}

	if high, low, err := calculator.Calculate52WeekRange(bars); err == nil {
		q.High52w = high
		q.Low52w = low
	}

	return q
}
