package attendance

import (
	"context"
	"fmt"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
	"github.com/attendhq/rules-engine-go/internal/domain/rules"
	"github.com/attendhq/rules-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	ruleService rules.Service
	punchRepo   attendance.PunchDayRepository
}

func NewAttendanceService(ruleService rules.Service, punchRepo attendance.PunchDayRepository) attendance.Service {
	return &AttendanceServiceImpl{
		ruleService: ruleService,
		punchRepo:   punchRepo,
	}
}

func (s *AttendanceServiceImpl) WorkedTime(ctx context.Context, req attendance.WorkedTimeRequest) (attendance.WorkedTimeResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WorkedTimeResponse{}, err
	}
	return attendance.WorkedTimeResponse{
		WorkedMinutes:  TotalWorkedMinutes(req.Shifts, req.Punches),
		MissPunch:      CountMissedPunches(req.Shifts, req.Punches),
		ScheduledSlots: 2 * len(req.Shifts),
	}, nil
}

func (s *AttendanceServiceImpl) Classify(ctx context.Context, employeeID string, date string) (attendance.ClassificationResponse, error) {
	set, err := s.ruleService.GetRuleSet(ctx, employeeID)
	if err != nil {
		return attendance.ClassificationResponse{}, err
	}
	if set == nil {
		return attendance.ClassificationResponse{}, attendance.ErrNoRulesConfigured
	}

	c, err := ClassifyDate(set, date)
	if err != nil {
		return attendance.ClassificationResponse{}, err
	}
	return attendance.ClassificationResponse{
		EmployeeID:           employeeID,
		Date:                 rules.DateOnly(date),
		Classification:       c,
		IsValidAttendanceDay: c.IsValidAttendanceDay(),
	}, nil
}

func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string, month string) (attendance.MonthlySummaryResponse, error) {
	firstDay, ok := validator.IsValidMonth(month)
	if !ok {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("%w: %q", attendance.ErrInvalidMonth, month)
	}
	lastDay := firstDay.AddDate(0, 1, -1)

	set, err := s.ruleService.GetRuleSet(ctx, employeeID)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}
	if set == nil {
		return attendance.MonthlySummaryResponse{}, attendance.ErrNoRulesConfigured
	}

	punchDays, err := s.punchRepo.GetByEmployeeAndRange(ctx, employeeID, firstDay, lastDay)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to get punch days: %w", err)
	}
	punchesByDate := make(map[string][]string, len(punchDays))
	for _, pd := range punchDays {
		punchesByDate[pd.Date.Format("2006-01-02")] = pd.Punches
	}

	resp := attendance.MonthlySummaryResponse{
		EmployeeID:          employeeID,
		Month:               month,
		MissedPunchCost:     decimal.Zero,
		WeekendHolidayDates: WeekendAndHolidayDates(set, firstDay, lastDay),
		FullDayLeaveDates:   FullDayLeaveDates(set, firstDay, lastDay),
	}

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		c, err := ClassifyDate(set, key)
		if err != nil {
			return attendance.MonthlySummaryResponse{}, err
		}

		shifts := ShiftsFor(set, day.Weekday())
		punches := punchesByDate[key]
		worked := TotalWorkedMinutes(shifts, punches)

		summary := attendance.DaySummary{
			Date:             key,
			Classification:   c,
			ScheduledMinutes: ScheduledMinutes(shifts),
			WorkedMinutes:    worked,
		}

		if c.IsValidAttendanceDay() && len(shifts) > 0 {
			if hasRealPunch(punches) {
				// A fully unpunched day is an absence, not a pile of
				// missed punches.
				summary.MissPunch = CountMissedPunches(shifts, punches)
			} else {
				summary.Absent = true
			}
		}

		resp.TotalWorkedMinutes += worked
		resp.TotalMissedPunches += summary.MissPunch.MissPunchCount
		if summary.Absent {
			resp.RealAbsentCount++
		}
		resp.Days = append(resp.Days, summary)
	}

	if rule, ok := set.RuleByID(rules.RuleMissedPunch); ok {
		if cost, allowed, ok := rule.MissedPunchPolicy(); ok {
			chargeable := resp.TotalMissedPunches - allowed
			if chargeable > 0 {
				resp.MissedPunchCost = cost.Mul(decimal.NewFromInt(int64(chargeable)))
			}
		}
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) RecordPunches(ctx context.Context, employeeID string, date string, req attendance.UpsertPunchesRequest) (attendance.PunchDayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchDayResponse{}, err
	}
	day, err := rules.ParseCalendarDate(date)
	if err != nil {
		return attendance.PunchDayResponse{}, fmt.Errorf("%w: %q", attendance.ErrInvalidDate, date)
	}

	stored, err := s.punchRepo.Upsert(ctx, attendance.PunchDay{
		EmployeeID: employeeID,
		Date:       day,
		Punches:    req.Punches,
	})
	if err != nil {
		return attendance.PunchDayResponse{}, fmt.Errorf("failed to upsert punch day: %w", err)
	}
	return attendance.PunchDayResponse{
		EmployeeID: stored.EmployeeID,
		Date:       stored.Date.Format("2006-01-02"),
		Punches:    stored.Punches,
	}, nil
}
