// Package scheduler runs the periodic watchlist snapshot job.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"stockdash/internal/dashboard"
	"stockdash/internal/model"
	"stockdash/internal/notifier"
)

// Scheduler records periodic analysis snapshots for every watchlist symbol
// and pushes a Telegram summary when one of them looks stretched.
type Scheduler struct {
	Cron      *cron.Cron
	Service   *dashboard.Service
	Notifier  *notifier.TelegramNotifier
	Watchlist []string
	Period    model.Period
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *dashboard.Service, tn *notifier.TelegramNotifier, watchlist []string, period model.Period) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Service:   svc,
		Notifier:  tn,
		Watchlist: watchlist,
		Period:    period,
		Ctx:       ctx,
	}
}

// Register registers the snapshot task with the given cron expression.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	return nil
}

// Start begins cron scheduling.
func (s *Scheduler) Start() { s.Cron.Start() }

// Stop halts cron scheduling.
func (s *Scheduler) Stop() { s.Cron.Stop() }

// RunNow executes the snapshot task immediately, outside the cron schedule.
func (s *Scheduler) RunNow() { s.snapshotTask() }

func (s *Scheduler) snapshotTask() {
	log.Info().Int("symbols", len(s.Watchlist)).Msg("watchlist snapshot starting")

	for _, symbol := range s.Watchlist {
		a, err := s.Service.Analyze(s.Ctx, symbol, s.Period)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("snapshot analyze failed")
			continue
		}

		log.Info().
			Str("symbol", symbol).
			Float64("price", a.Quote.Price).
			Float64("rsi", a.Indicators.RSI).
			Str("bias", string(a.Signal.Bias)).
			Int("forecast_points", len(a.Forecast)).
			Msg("snapshot recorded")

		// Only interrupt the chat for stretched readings.
		if s.Notifier != nil && s.Notifier.Enabled() && a.Signal.Note != "" {
			if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatAnalysis(a)); err != nil {
				log.Warn().Err(err).Str("symbol", symbol).Msg("telegram notify failed")
			}
		}
	}

	log.Info().Msg("watchlist snapshot finished")
}
