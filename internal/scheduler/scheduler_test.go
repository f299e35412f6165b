package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockdash/internal/collector"
	"stockdash/internal/dashboard"
	"stockdash/internal/forecast"
	"stockdash/internal/model"
	"stockdash/internal/recorder"
)

type countingRecorder struct {
	snapshots []*recorder.AnalysisSnapshot
}

func (c *countingRecorder) RecordAnalysis(s *recorder.AnalysisSnapshot) error {
	c.snapshots = append(c.snapshots, s)
	return nil
}
func (c *countingRecorder) Close() error { return nil }

func flatBars(n int) []model.OHLCV {
	bars := make([]model.OHLCV, 0, n)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for len(bars) < n {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			bars = append(bars, model.OHLCV{
				Time: day, Open: 100, High: 101, Low: 99, Close: 100, Volume: 1000,
			})
		}
		day = day.AddDate(0, 0, 1)
	}
	return bars
}

func TestSnapshotTaskRecordsEverySymbol(t *testing.T) {
	rec := &countingRecorder{}
	svc := dashboard.NewService(&collector.MockFetcher{Bars: flatBars(40)}, forecast.NewEngine(), nil, rec)
	s := NewScheduler(context.Background(), svc, nil, []string{"AAPL", "INFY.NS"}, model.Period1Y)

	s.RunNow()

	if len(rec.snapshots) != 2 {
		t.Fatalf("snapshots = %d, want 2", len(rec.snapshots))
	}
	if rec.snapshots[0].Symbol != "AAPL" || rec.snapshots[1].Symbol != "INFY.NS" {
		t.Errorf("unexpected symbols: %s, %s", rec.snapshots[0].Symbol, rec.snapshots[1].Symbol)
	}
}

func TestSnapshotTaskContinuesPastFailures(t *testing.T) {
	rec := &countingRecorder{}
	svc := dashboard.NewService(&collector.MockFetcher{Err: errors.New("down")}, forecast.NewEngine(), nil, rec)
	s := NewScheduler(context.Background(), svc, nil, []string{"AAPL", "MSFT"}, model.Period1Y)

	s.RunNow() // must not panic or abort on fetch failure

	if len(rec.snapshots) != 0 {
		t.Errorf("snapshots = %d, want 0", len(rec.snapshots))
	}
}

func TestRegisterRejectsBadCron(t *testing.T) {
	svc := dashboard.NewService(&collector.MockFetcher{Bars: flatBars(40)}, forecast.NewEngine(), nil, recorder.NewNoopRecorder())
	s := NewScheduler(context.Background(), svc, nil, nil, model.Period1Y)

	if err := s.Register("not a cron expr"); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
	if err := s.Register("0 0 22 * * 1-5"); err != nil {
		t.Fatalf("valid cron expression rejected: %v", err)
	}
}
