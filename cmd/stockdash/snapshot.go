package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stockdash/internal/model"
	"stockdash/internal/scheduler"
)

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Run the watchlist snapshot task once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(cfg.Schedule.Watchlist) == 0 {
				return fmt.Errorf("schedule.watchlist is empty")
			}

			svc := buildService(cfg)
			defer svc.Recorder.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sched := scheduler.NewScheduler(ctx, svc, buildNotifier(cfg),
				cfg.Schedule.Watchlist, model.Period(cfg.Schedule.Period))
			sched.RunNow()
			return nil
		},
	}
}
