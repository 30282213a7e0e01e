package attendance

import (
	"fmt"
	"time"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
	"github.com/attendhq/rules-engine-go/internal/domain/rules"
)

// ClassifyDate answers why the date does or does not require attendance
// under the rule set. An unparseable date returns ErrInvalidDate; it must
// never be reported as an ordinary working day.
//
// Schedule overrides trump the calendar: a date listed under generalDays or
// replaceDays is a working day even when it falls on a weekend or holiday.
// Leave is personal and is never overridden by a schedule swap.
func ClassifyDate(set *rules.SalaryRuleSet, date string) (attendance.Classification, error) {
	day, err := rules.ParseCalendarDate(date)
	if err != nil {
		return attendance.Classification{}, fmt.Errorf("%w: %q", attendance.ErrInvalidDate, date)
	}
	key := day.Format("2006-01-02")

	c := attendance.Classification{
		IsHoliday: isHoliday(set, key),
		IsWeekend: isWeekendDay(set, day.Weekday()),
		IsLeave:   isLeaveDay(set, key),
	}
	if isScheduleOverride(set, key) {
		c.IsHoliday = false
		c.IsWeekend = false
	}
	return c, nil
}

func isHoliday(set *rules.SalaryRuleSet, key string) bool {
	if set == nil {
		return false
	}
	for _, h := range set.Holidays {
		if rules.DateOnly(h) == key {
			return true
		}
	}
	return false
}

func isWeekendDay(set *rules.SalaryRuleSet, weekday time.Weekday) bool {
	if set == nil {
		return false
	}
	rule, ok := set.RuleByID(rules.RuleWeekendDays)
	if !ok {
		return false
	}
	name := weekday.String()
	for _, d := range rule.WeekendDayNames() {
		if d == name {
			return true
		}
	}
	return false
}

// isLeaveDay reports whether any category holds a leave entry dated on the
// day. Half-day leave blocks attendance the same as full-day leave here; the
// start/end window only matters for payroll, not for the blocked flag.
func isLeaveDay(set *rules.SalaryRuleSet, key string) bool {
	if set == nil {
		return false
	}
	for _, entries := range set.Leaves {
		for _, e := range entries {
			if e.Date.Date != "" && rules.DateOnly(e.Date.Date) == key {
				return true
			}
		}
	}
	return false
}

func isScheduleOverride(set *rules.SalaryRuleSet, key string) bool {
	if set == nil {
		return false
	}
	for _, d := range set.GeneralDays {
		if rules.DateOnly(d.Date) == key {
			return true
		}
	}
	for _, d := range set.ReplaceDays {
		if rules.DateOnly(d.Date) == key {
			return true
		}
	}
	return false
}

// ShiftsFor picks the day's shift windows: the weekday-named timetable when
// one exists, otherwise the default table (empty Day), otherwise none.
func ShiftsFor(set *rules.SalaryRuleSet, weekday time.Weekday) []rules.ShiftWindow {
	if set == nil {
		return nil
	}
	name := weekday.String()
	var fallback []rules.ShiftWindow
	for _, t := range set.TimeTables {
		if t.Day == name {
			return t.Shifts
		}
		if t.Day == "" && fallback == nil {
			fallback = t.Shifts
		}
	}
	return fallback
}

// WeekendAndHolidayDates lists every date in [from, to] that is a weekend or
// holiday after schedule overrides, in ascending order.
func WeekendAndHolidayDates(set *rules.SalaryRuleSet, from, to time.Time) []string {
	var dates []string
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		blocked := isHoliday(set, key) || isWeekendDay(set, day.Weekday())
		if blocked && !isScheduleOverride(set, key) {
			dates = append(dates, key)
		}
	}
	return dates
}

// FullDayLeaveDates lists every date in [from, to] covered by a leave entry
// with no start/end window, in ascending order. Half-day leave is excluded.
func FullDayLeaveDates(set *rules.SalaryRuleSet, from, to time.Time) []string {
	if set == nil {
		return nil
	}
	fullDays := make(map[string]bool)
	for _, entries := range set.Leaves {
		for _, e := range entries {
			if e.Date.Date != "" && e.Date.Start == nil && e.Date.End == nil {
				fullDays[rules.DateOnly(e.Date.Date)] = true
			}
		}
	}

	var dates []string
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		if fullDays[key] {
			dates = append(dates, key)
		}
	}
	return dates
}
