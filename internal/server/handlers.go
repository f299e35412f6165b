package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"stockdash/internal/collector"
	"stockdash/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// requestParams pulls the symbol path variable and the period query
// parameter, defaulting to 1y. Unknown periods are rejected.
func requestParams(w http.ResponseWriter, r *http.Request) (string, model.Period, bool) {
	symbol := mux.Vars(r)["symbol"]
	period := model.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = model.Period1Y
	}
	if !period.Valid() {
		writeError(w, http.StatusBadRequest, "unknown period: "+string(period))
		return "", "", false
	}
	return symbol, period, true
}

func upstreamStatus(err error) int {
	if errors.Is(err, collector.ErrNoData) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	symbol, period, ok := requestParams(w, r)
	if !ok {
		return
	}
	bars, err := s.svc.History(r.Context(), symbol, period)
	if err != nil {
		writeError(w, upstreamStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol": symbol,
		"period": period,
		"bars":   bars,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	symbol, period, ok := requestParams(w, r)
	if !ok {
		return
	}
	quote, err := s.svc.Summary(r.Context(), symbol, period)
	if err != nil {
		writeError(w, upstreamStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (s *Server) handleIndicators(w http.ResponseWriter, r *http.Request) {
	symbol, period, ok := requestParams(w, r)
	if !ok {
		return
	}
	ind, sig, err := s.svc.Indicators(r.Context(), symbol, period)
	if err != nil {
		writeError(w, upstreamStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol":     symbol,
		"period":     period,
		"indicators": ind,
		"signal":     sig,
	})
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	symbol, period, ok := requestParams(w, r)
	if !ok {
		return
	}
	points, err := s.svc.Forecast(r.Context(), symbol, period)
	if err != nil {
		writeError(w, upstreamStatus(err), err.Error())
		return
	}
	if points == nil {
		points = []model.ForecastPoint{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol": symbol,
		"period": period,
		"points": points,
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	items, err := s.svc.NewsFeed(r.Context(), symbol)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if items == nil {
		items = []model.NewsItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol": symbol,
		"items":  items,
	})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol, period, ok := requestParams(w, r)
	if !ok {
		return
	}
	analysis, err := s.svc.Analyze(r.Context(), symbol, period)
	if err != nil {
		writeError(w, upstreamStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
