// Package server exposes the dashboard HTTP API consumed by the display
// layer.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"stockdash/internal/dashboard"
)

// Server hosts the JSON API.
type Server struct {
	router  *mux.Router
	httpSrv *http.Server
	svc     *dashboard.Service
}

// NewServer creates a server bound to host:port, serving the given service.
func NewServer(host string, port int, svc *dashboard.Service) *Server {
	s := &Server{
		router: mux.NewRouter(),
		svc:    svc,
	}
	s.routes()

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // forecast requests retrain a model
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.Use(requestIDMiddleware, accessLogMiddleware, metricsMiddleware)

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/stocks/{symbol}/history", s.handleHistory).Methods(http.MethodGet)
	api.HandleFunc("/stocks/{symbol}/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/stocks/{symbol}/indicators", s.handleIndicators).Methods(http.MethodGet)
	api.HandleFunc("/stocks/{symbol}/forecast", s.handleForecast).Methods(http.MethodGet)
	api.HandleFunc("/stocks/{symbol}/news", s.handleNews).Methods(http.MethodGet)
	api.HandleFunc("/stocks/{symbol}/analysis", s.handleAnalysis).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts the HTTP listener and blocks until the server stops.
func (s *Server) ListenAndServe() error {
	log.Info().Str("addr", s.httpSrv.Addr).Msg("http server listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown performs a graceful shutdown, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("http server shutting down")
	return s.httpSrv.Shutdown(ctx)
}
