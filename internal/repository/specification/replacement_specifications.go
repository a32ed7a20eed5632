package specification

import (
	"time"

	"gorm.io/gorm"
)

// CreatedBetween bounds created_at to [From, To), used for the calendar-month
// replacement cap.
type CreatedBetween struct {
	From time.Time
	To   time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ? AND created_at < ?", s.From, s.To)
}

// ByWeekStart scopes replacement requests to one delivery week.
type ByWeekStart struct {
	WeekStart time.Time
}

func (s ByWeekStart) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("week_start_date = ?", s.WeekStart)
}
