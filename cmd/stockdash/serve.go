package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stockdash/internal/model"
	"stockdash/internal/scheduler"
	"stockdash/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled watchlist snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := buildService(cfg)
			defer svc.Recorder.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sched := scheduler.NewScheduler(ctx, svc, buildNotifier(cfg),
				cfg.Schedule.Watchlist, model.Period(cfg.Schedule.Period))
			if len(cfg.Schedule.Watchlist) > 0 {
				if err := sched.Register(cfg.Schedule.SnapshotCron); err != nil {
					return err
				}
				sched.Start()
				defer sched.Stop()
			}

			if os.Getenv("RUN_ON_START") == "true" {
				go sched.RunNow()
			}

			srv := server.NewServer(cfg.Server.Host, cfg.Server.Port, svc)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
