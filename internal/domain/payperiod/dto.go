package payperiod

import (
	"fmt"

	"github.com/attendhq/rules-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UpdatePayPeriodRequest patches the pay-period record. Nil fields keep the
// current value; OtherSalary, when set, replaces the whole array.
type UpdatePayPeriodRequest struct {
	HourlyRate                *string            `json:"hourlyRate,omitempty"`
	IsSelectedFixedHourlyRate *bool              `json:"isSelectedFixedHourlyRate,omitempty"`
	Leave                     *string            `json:"leave,omitempty"`
	Name                      *string            `json:"name,omitempty"`
	OtherSalary               *[]OtherSalaryItem `json:"otherSalary,omitempty"`
	OvertimeFixed             *string            `json:"overtimeFixed,omitempty"`
	OvertimeSalary            *string            `json:"overtimeSalary,omitempty"`
	PayPeriod                 *string            `json:"payPeriod,omitempty"`
	Salary                    *string            `json:"salary,omitempty"`
	SelectedOvertimeOption    *string            `json:"selectedOvertimeOption,omitempty"`
	Shift                     *string            `json:"shift,omitempty"`
	StartDay                  *string            `json:"startDay,omitempty"`
	StartWeek                 *string            `json:"startWeek,omitempty"`
	Status                    *string            `json:"status,omitempty"`
}

func (r *UpdatePayPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	requireNonNegative := func(field string, v *string) {
		if v == nil || *v == "" {
			return
		}
		d, err := decimal.NewFromString(*v)
		if err != nil || d.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a non-negative number"})
		}
	}

	requireNonNegative("hourlyRate", r.HourlyRate)
	requireNonNegative("salary", r.Salary)
	requireNonNegative("overtimeSalary", r.OvertimeSalary)
	requireNonNegative("overtimeFixed", r.OvertimeFixed)

	if r.OtherSalary != nil {
		for i, item := range *r.OtherSalary {
			amount := item.Amount
			requireNonNegative(fmt.Sprintf("otherSalary[%d].amount", i), &amount)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply overlays the patch on a copy of current and returns the result.
func (r *UpdatePayPeriodRequest) Apply(current PayPeriodRecord) PayPeriodRecord {
	next := current
	if r.HourlyRate != nil {
		next.HourlyRate = *r.HourlyRate
	}
	if r.IsSelectedFixedHourlyRate != nil {
		next.IsSelectedFixedHourlyRate = *r.IsSelectedFixedHourlyRate
	}
	if r.Leave != nil {
		next.Leave = *r.Leave
	}
	if r.Name != nil {
		next.Name = *r.Name
	}
	if r.OtherSalary != nil {
		next.OtherSalary = append([]OtherSalaryItem(nil), (*r.OtherSalary)...)
	} else {
		next.OtherSalary = append([]OtherSalaryItem(nil), current.OtherSalary...)
	}
	if r.OvertimeFixed != nil {
		next.OvertimeFixed = *r.OvertimeFixed
	}
	if r.OvertimeSalary != nil {
		next.OvertimeSalary = *r.OvertimeSalary
	}
	if r.PayPeriod != nil {
		next.PayPeriod = *r.PayPeriod
	}
	if r.Salary != nil {
		next.Salary = *r.Salary
	}
	if r.SelectedOvertimeOption != nil {
		next.SelectedOvertimeOption = *r.SelectedOvertimeOption
	}
	if r.Shift != nil {
		next.Shift = *r.Shift
	}
	if r.StartDay != nil {
		next.StartDay = *r.StartDay
	}
	if r.StartWeek != nil {
		next.StartWeek = *r.StartWeek
	}
	if r.Status != nil {
		next.Status = *r.Status
	}
	return next
}
