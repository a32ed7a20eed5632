package replacement

import (
	"errors"
	"testing"
	"time"

	"freshsprout-be/pkg/schedule"
)

func swapConfig() schedule.Config {
	return schedule.Config{
		OrderCutoff:     schedule.Cutoff{Weekday: time.Tuesday, Hour: 22},
		DeliveryWeekday: time.Friday,
		MonthlySwapCap:  2,
	}
}

func TestCheckCreate(t *testing.T) {
	cfg := swapConfig()
	open := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)   // monday, window open
	closed := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC) // wednesday, after cutoff

	tests := []struct {
		name       string
		now        time.Time
		monthCount int
		wantErr    error
	}{
		{"first request inside window", open, 0, nil},
		{"second request inside window", open, 1, nil},
		{"third request hits the cap", open, 2, ErrCapExceeded},
		{"window closed", closed, 0, ErrWindowClosed},
		{"window closed reported before cap", closed, 2, ErrWindowClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCreate(cfg, tt.now, tt.monthCount)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckCreate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckCreateDefaultsCap(t *testing.T) {
	cfg := swapConfig()
	cfg.MonthlySwapCap = 0
	open := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	if err := CheckCreate(cfg, open, 1); err != nil {
		t.Errorf("count 1 under default cap should pass, got %v", err)
	}
	if err := CheckCreate(cfg, open, 2); !errors.Is(err, ErrCapExceeded) {
		t.Errorf("count 2 should hit default cap of 2, got %v", err)
	}
}

func TestMonthBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	start, end := MonthBounds(now)

	if !start.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %s", start)
	}
	if !end.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %s", end)
	}

	// December rolls into the next year.
	start, end = MonthBounds(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC))
	if !start.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("december bounds = %s .. %s", start, end)
	}
}
