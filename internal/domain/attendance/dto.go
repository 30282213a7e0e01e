package attendance

import (
	"fmt"

	"github.com/attendhq/rules-engine-go/internal/domain/rules"
	"github.com/attendhq/rules-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// WorkedTimeRequest is the stateless shifts+punches computation the dashboard
// calls for ad-hoc rows (device exports it has not persisted yet).
type WorkedTimeRequest struct {
	Shifts  []rules.ShiftWindow `json:"shifts"`
	Punches []string            `json:"punches"`
}

func (r *WorkedTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Shifts) == 0 {
		errs = append(errs, validator.ValidationError{Field: "shifts", Message: "at least one shift is required"})
	}
	for i, s := range r.Shifts {
		if !validator.IsClockTime(s.Start) || !validator.IsClockTime(s.End) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("shifts[%d]", i),
				Message: "start and end must be HH:mm",
			})
		}
	}
	for i, p := range r.Punches {
		if !validator.IsClockTime(p) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("punches[%d]", i),
				Message: "must be HH:mm",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkedTimeResponse struct {
	WorkedMinutes  int            `json:"worked_minutes"`
	MissPunch      MissPunchCount `json:"miss_punch"`
	ScheduledSlots int            `json:"scheduled_slots"`
}

type UpsertPunchesRequest struct {
	Punches []string `json:"punches"`
}

func (r *UpsertPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	for i, p := range r.Punches {
		if !validator.IsClockTime(p) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("punches[%d]", i),
				Message: "must be HH:mm",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchDayResponse struct {
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	Punches    []string `json:"punches"`
}

type ClassificationResponse struct {
	EmployeeID           string         `json:"employee_id"`
	Date                 string         `json:"date"`
	Classification       Classification `json:"classification"`
	IsValidAttendanceDay bool           `json:"is_valid_attendance_day"`
}

// DaySummary is one row of the monthly attendance summary.
type DaySummary struct {
	Date             string         `json:"date"`
	Classification   Classification `json:"classification"`
	ScheduledMinutes int            `json:"scheduled_minutes"`
	WorkedMinutes    int            `json:"worked_minutes"`
	MissPunch        MissPunchCount `json:"miss_punch"`
	Absent           bool           `json:"absent"`
}

type MonthlySummaryResponse struct {
	EmployeeID          string          `json:"employee_id"`
	Month               string          `json:"month"`
	Days                []DaySummary    `json:"days"`
	TotalWorkedMinutes  int             `json:"total_worked_minutes"`
	RealAbsentCount     int             `json:"real_absent_count"`
	TotalMissedPunches  int             `json:"total_missed_punches"`
	MissedPunchCost     decimal.Decimal `json:"missed_punch_cost"`
	WeekendHolidayDates []string        `json:"weekend_holiday_dates"`
	FullDayLeaveDates   []string        `json:"full_day_leave_dates"`
}
