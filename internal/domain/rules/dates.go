package rules

import (
	"fmt"
	"time"

	"github.com/attendhq/rules-engine-go/internal/pkg/validator"
)

// holidayStampLayout is the persisted holiday format: local calendar date with
// the time-of-day fixed at midnight and no timezone offset.
const holidayStampLayout = "2006-01-02T15:04:05.000"

// HolidayStamp renders a calendar date in the persisted holiday format. The
// stamp is built from the year/month/day components only, so the process
// timezone can never shift the date.
func HolidayStamp(t time.Time) string {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(holidayStampLayout)
}

// ParseCalendarDate extracts the year/month/day from a date string, accepting
// both the bare "2006-01-02" form and the persisted holiday stamp. Any
// time-of-day portion is ignored rather than parsed, which keeps the calendar
// date stable across timezones.
func ParseCalendarDate(s string) (time.Time, error) {
	if len(s) < 10 {
		return time.Time{}, fmt.Errorf("date %q is too short", s)
	}
	t, ok := validator.IsValidDate(s[:10])
	if !ok {
		return time.Time{}, fmt.Errorf("invalid calendar date %q", s)
	}
	return t, nil
}

// DateOnly truncates a date string to its "2006-01-02" portion.
func DateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
