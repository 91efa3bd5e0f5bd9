package model

import "time"

// DailyRecord holds one day's newly reported case count.
// Subtotal is nil when the day has not been reported yet.
type DailyRecord struct {
	Date     time.Time
	Subtotal *int
}

// WeeklyRecord holds one reporting week's pre-aggregated total.
// Weekly bucketing happens upstream, so the record is always fully formed.
type WeeklyRecord struct {
	StartDate time.Time
	EndDate   time.Time
	Subtotal  int
}

// NormalizeDate truncates a timestamp to its calendar day, preserving the
// timezone. Chart points are keyed by day, never by time of day.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
