package attendance

import (
	"testing"
	"time"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
	"github.com/attendhq/rules-engine-go/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calendarRuleSet covers August 2025: Saturday/Sunday weekends, one holiday
// on the 17th, annual leave on the 20th, half-day sick leave on the 21st and
// a replacement working day on Saturday the 23rd.
func calendarRuleSet() *rules.SalaryRuleSet {
	return &rules.SalaryRuleSet{
		EmpID: "EMP-001",
		Rules: []rules.Rule{
			rules.NewWeekendDaysRule("EMP-001", []string{"Saturday", "Sunday"}),
		},
		Holidays:    []string{"2025-08-17T00:00:00.000"},
		ReplaceDays: []rules.ScheduleDay{{ID: 1, Date: "2025-08-23"}},
		TimeTables: []rules.TimeTable{
			{ID: 1, Day: "Friday", Shifts: []rules.ShiftWindow{{Start: "09:00", End: "13:00"}}},
			{ID: 2, Day: "", Shifts: []rules.ShiftWindow{{Start: "09:00", End: "17:00"}}},
		},
		Leaves: rules.LeaveSet{
			rules.LeaveAnnual: {
				{ID: 1, Date: rules.LeaveDate{Date: "2025-08-20"}},
			},
			rules.LeaveSick: {
				{ID: 1, Date: rules.LeaveDate{Date: "2025-08-21", Start: rules.StringParam("09:00"), End: rules.StringParam("13:00")}},
			},
		},
	}
}

func TestClassifyDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date string
		want attendance.Classification
	}{
		{name: "plain weekday", date: "2025-08-18", want: attendance.Classification{}},
		{name: "weekend saturday", date: "2025-08-16", want: attendance.Classification{IsWeekend: true}},
		{name: "holiday on a sunday", date: "2025-08-17", want: attendance.Classification{IsHoliday: true, IsWeekend: true}},
		{name: "full-day leave", date: "2025-08-20", want: attendance.Classification{IsLeave: true}},
		{name: "half-day leave still blocks", date: "2025-08-21", want: attendance.Classification{IsLeave: true}},
		{name: "replacement day overrides weekend", date: "2025-08-23", want: attendance.Classification{}},
		{name: "holiday stamp form accepted", date: "2025-08-17T00:00:00.000", want: attendance.Classification{IsHoliday: true, IsWeekend: true}},
	}

	set := calendarRuleSet()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ClassifyDate(set, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyDate_InvalidDateIsAnError(t *testing.T) {
	t.Parallel()

	// An unparseable date must surface as an error, never as a working day.
	for _, bad := range []string{"", "garbage", "2025-13-40", "17/08/2025"} {
		_, err := ClassifyDate(calendarRuleSet(), bad)
		assert.ErrorIs(t, err, attendance.ErrInvalidDate, "input %q", bad)
	}
}

func TestClassifyDate_NoWeekendRuleMeansNoWeekends(t *testing.T) {
	t.Parallel()

	set := &rules.SalaryRuleSet{EmpID: "EMP-001"}
	got, err := ClassifyDate(set, "2025-08-16") // a Saturday
	require.NoError(t, err)
	assert.False(t, got.IsWeekend)
	assert.True(t, got.IsValidAttendanceDay())
}

func TestClassifyDate_WeekendNamesSpreadAcrossParams(t *testing.T) {
	t.Parallel()

	set := &rules.SalaryRuleSet{
		Rules: []rules.Rule{{
			ID: 1, RuleID: rules.RuleWeekendDays, RuleStatus: 1,
			Param1: rules.StringParam("Friday"),
			Param2: rules.StringParam("Saturday,Sunday"),
		}},
	}
	for date, want := range map[string]bool{
		"2025-08-22": true,  // Friday
		"2025-08-23": true,  // Saturday
		"2025-08-24": true,  // Sunday
		"2025-08-25": false, // Monday
	} {
		got, err := ClassifyDate(set, date)
		require.NoError(t, err)
		assert.Equal(t, want, got.IsWeekend, "date %s", date)
	}
}

func TestShiftsFor(t *testing.T) {
	t.Parallel()

	set := calendarRuleSet()

	friday := ShiftsFor(set, time.Friday)
	require.Len(t, friday, 1)
	assert.Equal(t, "13:00", friday[0].End)

	// No Monday table: the default (empty Day) applies.
	monday := ShiftsFor(set, time.Monday)
	require.Len(t, monday, 1)
	assert.Equal(t, "17:00", monday[0].End)

	assert.Nil(t, ShiftsFor(&rules.SalaryRuleSet{}, time.Monday))
}

func TestWeekendAndHolidayDates(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 24, 0, 0, 0, 0, time.UTC)

	got := WeekendAndHolidayDates(calendarRuleSet(), from, to)
	// The 23rd is a Saturday but swapped into a working day.
	assert.Equal(t, []string{"2025-08-16", "2025-08-17", "2025-08-24"}, got)
}

func TestFullDayLeaveDates(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)

	got := FullDayLeaveDates(calendarRuleSet(), from, to)
	// The half-day sick leave on the 21st is excluded.
	assert.Equal(t, []string{"2025-08-20"}, got)
}
