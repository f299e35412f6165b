package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stockdash/internal/model"
	"stockdash/internal/notifier"
)

func analyzeCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "analyze <symbol>",
		Short: "Run a one-shot analysis for a symbol and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p := model.Period(period)
			if !p.Valid() {
				return fmt.Errorf("unknown period: %s", period)
			}

			svc := buildService(cfg)
			defer svc.Recorder.Close()

			a, err := svc.Analyze(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), notifier.FormatAnalysis(a))
			return nil
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", "1y", "history period (1mo, 3mo, 6mo, 1y, 2y, 5y)")
	return cmd
}
