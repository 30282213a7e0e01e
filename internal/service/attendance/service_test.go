package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
	"github.com/attendhq/rules-engine-go/internal/domain/rules"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRuleService struct {
	set *rules.SalaryRuleSet
}

func (s *stubRuleService) GetRuleSet(ctx context.Context, employeeID string) (*rules.SalaryRuleSet, error) {
	return s.set, nil
}

func (s *stubRuleService) ApplyDirectives(ctx context.Context, employeeID string, d rules.Directive) (*rules.SalaryRuleSet, error) {
	return s.set, nil
}

func (s *stubRuleService) DeleteRule(ctx context.Context, employeeID string, ruleID string) (*rules.SalaryRuleSet, error) {
	return s.set, nil
}

type stubPunchRepo struct {
	days []attendance.PunchDay
}

func (r *stubPunchRepo) Upsert(ctx context.Context, day attendance.PunchDay) (attendance.PunchDay, error) {
	r.days = append(r.days, day)
	return day, nil
}

func (r *stubPunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.PunchDay, error) {
	for _, d := range r.days {
		if d.Date.Equal(date) {
			return d, nil
		}
	}
	return attendance.PunchDay{}, nil
}

func (r *stubPunchRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.PunchDay, error) {
	var out []attendance.PunchDay
	for _, d := range r.days {
		if !d.Date.Before(from) && !d.Date.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubPunchRepo) DeleteEmpty(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func punchDay(date string, punches ...string) attendance.PunchDay {
	d, _ := time.Parse("2006-01-02", date)
	return attendance.PunchDay{EmployeeID: "EMP-001", Date: d, Punches: punches}
}

func TestWorkedTime(t *testing.T) {
	t.Parallel()

	svc := NewAttendanceService(&stubRuleService{}, &stubPunchRepo{})
	got, err := svc.WorkedTime(context.Background(), attendance.WorkedTimeRequest{
		Shifts:  []rules.ShiftWindow{{Start: "09:00", End: "17:00"}},
		Punches: []string{"09:10", "00:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 480, got.WorkedMinutes)
	assert.Equal(t, 1, got.MissPunch.MissPunchCount)
	assert.Equal(t, 2, got.ScheduledSlots)
}

func TestWorkedTime_RejectsBadClock(t *testing.T) {
	t.Parallel()

	svc := NewAttendanceService(&stubRuleService{}, &stubPunchRepo{})
	_, err := svc.WorkedTime(context.Background(), attendance.WorkedTimeRequest{
		Shifts:  []rules.ShiftWindow{{Start: "09:00", End: "25:00"}},
		Punches: []string{"09:00"},
	})
	assert.Error(t, err)
}

func TestClassify_NoRulesConfigured(t *testing.T) {
	t.Parallel()

	svc := NewAttendanceService(&stubRuleService{}, &stubPunchRepo{})
	_, err := svc.Classify(context.Background(), "EMP-001", "2025-08-18")
	assert.ErrorIs(t, err, attendance.ErrNoRulesConfigured)
}

func TestMonthlySummary(t *testing.T) {
	t.Parallel()

	set := calendarRuleSet()
	set.Rules = append(set.Rules, rules.NewMissedPunchRule("EMP-001", decimal.NewFromInt(25), 1))

	repo := &stubPunchRepo{days: []attendance.PunchDay{
		punchDay("2025-08-18", "09:00", "17:00"), // Monday, full day
		punchDay("2025-08-19", "09:05", "00:00"), // Tuesday, missing out
		punchDay("2025-08-22", "09:00", "13:00"), // Friday, short table
	}}
	svc := NewAttendanceService(&stubRuleService{set: set}, repo)

	got, err := svc.MonthlySummary(context.Background(), "EMP-001", "2025-08")
	require.NoError(t, err)

	require.Len(t, got.Days, 31)
	byDate := make(map[string]attendance.DaySummary, len(got.Days))
	for _, d := range got.Days {
		byDate[d.Date] = d
	}

	assert.Equal(t, 480, byDate["2025-08-18"].WorkedMinutes)
	assert.False(t, byDate["2025-08-18"].Absent)

	// Missing clock-out credits the scheduled day but counts a missed punch.
	assert.Equal(t, 480, byDate["2025-08-19"].WorkedMinutes)
	assert.Equal(t, 1, byDate["2025-08-19"].MissPunch.MissPunchCount)

	// Friday runs on its own shorter timetable.
	assert.Equal(t, 240, byDate["2025-08-22"].ScheduledMinutes)
	assert.Equal(t, 240, byDate["2025-08-22"].WorkedMinutes)

	// Unpunched working days are absences, not missed punches.
	assert.True(t, byDate["2025-08-25"].Absent)
	assert.Equal(t, 0, byDate["2025-08-25"].MissPunch.MissPunchCount)

	// Weekend, holiday and leave days are neither absent nor missed.
	assert.False(t, byDate["2025-08-16"].Absent)
	assert.False(t, byDate["2025-08-17"].Absent)
	assert.False(t, byDate["2025-08-20"].Absent)

	assert.Equal(t, 1200, got.TotalWorkedMinutes)
	assert.Equal(t, 1, got.TotalMissedPunches)
	// One missed punch within the acceptable allowance of one: no charge.
	assert.True(t, got.MissedPunchCost.IsZero())
	assert.Contains(t, got.WeekendHolidayDates, "2025-08-17")
	assert.NotContains(t, got.WeekendHolidayDates, "2025-08-23")
	assert.Equal(t, []string{"2025-08-20"}, got.FullDayLeaveDates)
}

func TestMonthlySummary_MissedPunchCost(t *testing.T) {
	t.Parallel()

	set := calendarRuleSet()
	set.Rules = append(set.Rules, rules.NewMissedPunchRule("EMP-001", decimal.NewFromInt(25), 1))

	repo := &stubPunchRepo{days: []attendance.PunchDay{
		punchDay("2025-08-18", "09:00", "00:00"),
		punchDay("2025-08-19", "09:00", "00:00"),
		punchDay("2025-08-20", "09:00", "00:00"), // leave day, not counted
	}}
	svc := NewAttendanceService(&stubRuleService{set: set}, repo)

	got, err := svc.MonthlySummary(context.Background(), "EMP-001", "2025-08")
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalMissedPunches)
	// Two missed, one allowed: one chargeable at 25.
	assert.True(t, decimal.NewFromInt(25).Equal(got.MissedPunchCost))
}

func TestMonthlySummary_InvalidMonth(t *testing.T) {
	t.Parallel()

	svc := NewAttendanceService(&stubRuleService{set: calendarRuleSet()}, &stubPunchRepo{})
	_, err := svc.MonthlySummary(context.Background(), "EMP-001", "2025-8")
	assert.ErrorIs(t, err, attendance.ErrInvalidMonth)
}

func TestRecordPunches(t *testing.T) {
	t.Parallel()

	repo := &stubPunchRepo{}
	svc := NewAttendanceService(&stubRuleService{set: calendarRuleSet()}, repo)

	got, err := svc.RecordPunches(context.Background(), "EMP-001", "2025-08-18", attendance.UpsertPunchesRequest{
		Punches: []string{"09:00", "17:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-08-18", got.Date)
	assert.Len(t, repo.days, 1)

	_, err = svc.RecordPunches(context.Background(), "EMP-001", "bad-date", attendance.UpsertPunchesRequest{})
	assert.ErrorIs(t, err, attendance.ErrInvalidDate)
}
