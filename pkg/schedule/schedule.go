package schedule

import (
	"errors"
	"time"
)

// ErrOrderWindowClosed is returned when a checkout is attempted between the
// order cutoff and the end of the delivery day.
var ErrOrderWindowClosed = errors.New("ordering is closed for this week's delivery")

// Cutoff is a weekly deadline: a weekday plus a wall-clock time.
type Cutoff struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
}

// Config is the immutable weekly delivery cycle. It is injected into every
// rule call together with the clock value, so the rules stay pure and
// testable with arbitrary dates.
type Config struct {
	OrderCutoff           Cutoff
	SwapCutoff            Cutoff
	HarvestWeekday        time.Weekday
	DeliveryWeekday       time.Weekday
	FreeShippingThreshold float64
	DeliveryFee           float64
	MonthlySwapCap        int
	Region                string
	Currency              string
	Location              *time.Location
}

func (c Config) loc() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.UTC
}

// WithinOrderWindow reports whether an order placed at `now` still makes the
// upcoming delivery. The window closes AT the cutoff instant (exactly at the
// boundary counts as closed) and reopens at midnight after the delivery day.
func (c Config) WithinOrderWindow(now time.Time) bool {
	return !c.inBlackout(now, c.OrderCutoff)
}

// WithinFreshSwapWindow is the same check scoped to replacement requests.
// The swap cutoff may be configured independently; it defaults to the order
// cutoff.
func (c Config) WithinFreshSwapWindow(now time.Time) bool {
	cut := c.SwapCutoff
	if cut == (Cutoff{}) {
		cut = c.OrderCutoff
	}
	return !c.inBlackout(now, cut)
}

// ShippingFee returns 0 only when the subtotal strictly exceeds the
// free-shipping threshold. A subtotal equal to the threshold still pays the
// delivery fee.
func (c Config) ShippingFee(subtotal float64) float64 {
	if subtotal > c.FreeShippingThreshold {
		return 0
	}
	return c.DeliveryFee
}

// WeekStart returns the start of the delivery week containing `now`: midnight
// of the most recent day after delivery day. It identifies which delivery a
// replacement request belongs to.
func (c Config) WeekStart(now time.Time) time.Time {
	now = now.In(c.loc())
	cycleStart := (c.DeliveryWeekday + 1) % 7
	day := startOfDay(now)
	for day.Weekday() != cycleStart {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// NextCutoff returns the earliest order-cutoff instant strictly after `now`.
func (c Config) NextCutoff(now time.Time) time.Time {
	now = now.In(c.loc())
	cut := c.cutoffInWeek(now, c.OrderCutoff)
	for !cut.After(now) {
		cut = cut.AddDate(0, 0, 7)
	}
	return cut
}

// NextDelivery returns the start of the next delivery day strictly after `now`.
func (c Config) NextDelivery(now time.Time) time.Time {
	now = now.In(c.loc())
	day := startOfDay(now).AddDate(0, 0, 1)
	for day.Weekday() != c.DeliveryWeekday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// inBlackout reports whether `now` falls between the weekly cutoff and the
// reopen instant (midnight after delivery day). The interval is closed at the
// cutoff and open at the reopen.
func (c Config) inBlackout(now time.Time, cut Cutoff) bool {
	now = now.In(c.loc())
	cutoff := c.cutoffInWeek(now, cut)

	days := (int(c.DeliveryWeekday) - int(cut.Weekday) + 7) % 7
	if days == 0 {
		days = 7
	}
	reopen := startOfDay(cutoff).AddDate(0, 0, days+1)

	if !now.Before(cutoff) && now.Before(reopen) {
		return true
	}
	// The blackout may wrap the Sunday week boundary.
	prevCutoff := cutoff.AddDate(0, 0, -7)
	prevReopen := reopen.AddDate(0, 0, -7)
	return !now.Before(prevCutoff) && now.Before(prevReopen)
}

// cutoffInWeek returns the cutoff instant within the Sunday-anchored week
// containing `now`.
func (c Config) cutoffInWeek(now time.Time, cut Cutoff) time.Time {
	day := startOfDay(now).AddDate(0, 0, int(cut.Weekday)-int(now.Weekday()))
	return day.Add(time.Duration(cut.Hour)*time.Hour + time.Duration(cut.Minute)*time.Minute)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
