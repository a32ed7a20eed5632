// Package replacement holds the Fresh Swap creation rules: a subscriber may
// request one free replacement pack per delivery week, subject to the weekly
// cutoff and a monthly cap.
package replacement

import (
	"errors"
	"time"

	"freshsprout-be/pkg/schedule"
)

var (
	// ErrWindowClosed means the weekly swap cutoff has passed. Distinct
	// from the cap error so callers can show "window closed" rather than
	// "limit reached".
	ErrWindowClosed = errors.New("fresh swap window is closed")

	// ErrCapExceeded means the user already hit the monthly cap.
	ErrCapExceeded = errors.New("monthly replacement limit reached")
)

// CheckCreate decides whether a new request may be created at `now` given how
// many requests the user already made in the current calendar month. Window
// is checked first: a closed window is reported even when the cap is also hit.
func CheckCreate(cfg schedule.Config, now time.Time, monthCount int) error {
	if !cfg.WithinFreshSwapWindow(now) {
		return ErrWindowClosed
	}
	cap := cfg.MonthlySwapCap
	if cap <= 0 {
		cap = 2
	}
	if monthCount >= cap {
		return ErrCapExceeded
	}
	return nil
}

// MonthBounds returns the first instants of the month containing `now` and of
// the following month, for counting a user's requests in the calendar month.
func MonthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}
