// Package metrics exposes Prometheus collectors for the dashboard service:
//
//	dash_fetch_requests_total{source,outcome} – upstream data fetches
//	dash_fetch_duration_seconds{source}       – upstream fetch latency
//	dash_forecasts_total{outcome}             – forecast runs (ok|empty)
//	dash_forecast_duration_seconds            – model fit + rollout latency
//	dash_http_requests_total{route,code}      – API requests
//	dash_http_duration_seconds{route}         – API latency
//
// Registered in init() and served by the HTTP server at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	FetchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dash_fetch_requests_total",
			Help: "Upstream data fetches by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	FetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dash_fetch_duration_seconds",
			Help:    "Upstream fetch latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	Forecasts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dash_forecasts_total",
			Help: "Forecast runs by outcome (ok or empty)",
		},
		[]string{"outcome"},
	)

	ForecastDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dash_forecast_duration_seconds",
			Help:    "Model fit plus rollout latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dash_http_requests_total",
			Help: "API requests by route and status code",
		},
		[]string{"route", "code"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dash_http_duration_seconds",
			Help:    "API request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(
		FetchRequests,
		FetchDuration,
		Forecasts,
		ForecastDuration,
		HTTPRequests,
		HTTPDuration,
	)
}

// ObserveFetch records one upstream fetch.
func ObserveFetch(source string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	FetchRequests.WithLabelValues(source, outcome).Inc()
	FetchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ObserveForecast records one forecast run.
func ObserveForecast(points int, elapsed time.Duration) {
	outcome := "ok"
	if points == 0 {
		outcome = "empty"
	}
	Forecasts.WithLabelValues(outcome).Inc()
	ForecastDuration.Observe(elapsed.Seconds())
}
