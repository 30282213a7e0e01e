package rules

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/attendhq/rules-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// FlexibleID accepts a JSON string or number and normalizes it to the string
// form; rule ids arrive both ways from older dashboard builds.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("rule id must be a string or number: %w", err)
	}
	*f = FlexibleID(n.String())
	return nil
}

// RulePayload is the editing layer's view of one rule. Numeric validation
// happens here; the merge engine and codec trust their inputs.
type RulePayload struct {
	ID         *int64     `json:"id,omitempty"`
	RuleID     FlexibleID `json:"ruleId"`
	RuleStatus *int       `json:"ruleStatus,omitempty"`
	Param1     *string    `json:"param1,omitempty"`
	Param2     *string    `json:"param2,omitempty"`
	Param3     *string    `json:"param3,omitempty"`
	Param4     *string    `json:"param4,omitempty"`
	Param5     *string    `json:"param5,omitempty"`
	Param6     *string    `json:"param6,omitempty"`
}

// Rule converts the payload to its domain form. Zero-valued fields stay zero
// so the merge engine can treat them as "not set" during a shallow merge.
func (p RulePayload) Rule(employeeID string) Rule {
	r := Rule{
		EmployeeID: employeeID,
		RuleID:     RuleID(p.RuleID),
		Param1:     p.Param1,
		Param2:     p.Param2,
		Param3:     p.Param3,
		Param4:     p.Param4,
		Param5:     p.Param5,
		Param6:     p.Param6,
	}
	if p.ID != nil {
		r.ID = *p.ID
	}
	if p.RuleStatus != nil {
		r.RuleStatus = *p.RuleStatus
	}
	return r
}

func (p RulePayload) validate(errs *validator.ValidationErrors) {
	id := RuleID(p.RuleID)
	if p.RuleID == "" {
		*errs = append(*errs, validator.ValidationError{Field: "rule.ruleId", Message: "is required"})
		return
	}

	switch id {
	case RuleWeekendDays:
		for _, day := range (Rule{RuleID: id, Param1: p.Param1, Param2: p.Param2, Param3: p.Param3, Param4: p.Param4, Param5: p.Param5, Param6: p.Param6}).WeekendDayNames() {
			if !validator.IsWeekdayName(day) {
				*errs = append(*errs, validator.ValidationError{Field: "rule.param1", Message: fmt.Sprintf("%q is not a weekday name", day)})
			}
		}
	case RuleLatenessGrace, RuleMinOvertimeUnit:
		requirePositiveInt(errs, "rule.param1", p.Param1)
	case RuleLatenessOvertime:
		requirePositiveInt(errs, "rule.param1", p.Param1)
		requirePositiveInt(errs, "rule.param2", p.Param2)
	case RuleWeekendOvertime:
		requireNonNegativeDecimal(errs, "rule.param1", p.Param1)
		requireNonNegativeDecimal(errs, "rule.param2", p.Param2)
	case RuleHolidayOvertime:
		requireNonNegativeDecimal(errs, "rule.param2", p.Param2)
	case RuleAbsencePenalty:
		requirePositiveInt(errs, "rule.param2", p.Param2)
	case RuleLatePenalty, RuleEarlyLeavePenalty, RuleIncrementalLateFine:
		requireNonNegativeDecimal(errs, "rule.param1", p.Param1)
	case RuleHourlyLatePenalty:
		requireNonNegativeDecimal(errs, "rule.param2", p.Param2)
	case RuleFixedLatenessFine:
		requirePositiveInt(errs, "rule.param1", p.Param1)
		requireNonNegativeDecimal(errs, "rule.param2", p.Param2)
	case RuleShiftBasedPenalty:
		requireNonNegativeDecimal(errs, "rule.param1", p.Param1)
		requireNonNegativeDecimal(errs, "rule.param2", p.Param2)
	case RuleMissedPunch:
		requireNonNegativeDecimal(errs, "rule.param1", p.Param1)
		requireNonNegativeInt(errs, "rule.param2", p.Param2)
	case RuleOvertimeAllowance:
		if p.Param1 == nil || (*p.Param1 != "true" && *p.Param1 != "false") {
			*errs = append(*errs, validator.ValidationError{Field: "rule.param1", Message: "must be \"true\" or \"false\""})
		}
		requireNonNegativeDecimal(errs, "rule.param2", p.Param2)
	case RuleHolidayMarker, RuleHalfDayLate:
		// flag-style rules, no numeric params
	default:
		*errs = append(*errs, validator.ValidationError{Field: "rule.ruleId", Message: fmt.Sprintf("%q is not a known rule id", p.RuleID)})
	}
}

func requirePositiveInt(errs *validator.ValidationErrors, field string, p *string) {
	if p == nil {
		*errs = append(*errs, validator.ValidationError{Field: field, Message: "is required"})
		return
	}
	n, err := strconv.Atoi(*p)
	if err != nil || n <= 0 {
		*errs = append(*errs, validator.ValidationError{Field: field, Message: "must be a positive integer"})
	}
}

func requireNonNegativeInt(errs *validator.ValidationErrors, field string, p *string) {
	if p == nil {
		return
	}
	n, err := strconv.Atoi(*p)
	if err != nil || n < 0 {
		*errs = append(*errs, validator.ValidationError{Field: field, Message: "must be a non-negative integer"})
	}
}

func requireNonNegativeDecimal(errs *validator.ValidationErrors, field string, p *string) {
	if p == nil {
		*errs = append(*errs, validator.ValidationError{Field: field, Message: "is required"})
		return
	}
	d, err := decimal.NewFromString(*p)
	if err != nil || d.IsNegative() {
		*errs = append(*errs, validator.ValidationError{Field: field, Message: "must be a non-negative number"})
	}
}

// MergeRequest carries the directives a rule-editing form submits in one save.
type MergeRequest struct {
	Rule           *RulePayload            `json:"rule,omitempty"`
	DeleteRuleID   *FlexibleID             `json:"deleteRuleId,omitempty"`
	Holidays       *[]string               `json:"holidays,omitempty"`
	GeneralDays    *[]ScheduleDay          `json:"generalDays,omitempty"`
	ReplaceDays    *[]ScheduleDay          `json:"replaceDays,omitempty"`
	TimeTables     *[]TimeTable            `json:"timeTables,omitempty"`
	PunchDocuments *[]PunchDocument        `json:"punchDocuments,omitempty"`
	Leaves         map[string][]LeaveEntry `json:"leaves,omitempty"`
}

func (r *MergeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rule == nil && r.DeleteRuleID == nil && r.Holidays == nil &&
		r.GeneralDays == nil && r.ReplaceDays == nil && r.TimeTables == nil &&
		r.PunchDocuments == nil && len(r.Leaves) == 0 {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "at least one directive is required"})
	}

	if r.Rule != nil {
		r.Rule.validate(&errs)
	}

	if r.Holidays != nil {
		for i, h := range *r.Holidays {
			if _, err := ParseCalendarDate(h); err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   fmt.Sprintf("holidays[%d]", i),
					Message: "must be a calendar date (YYYY-MM-DD)",
				})
			}
		}
	}

	if r.TimeTables != nil {
		for i, tt := range *r.TimeTables {
			for j, shift := range tt.Shifts {
				if !validator.IsClockTime(shift.Start) || !validator.IsClockTime(shift.End) {
					errs = append(errs, validator.ValidationError{
						Field:   fmt.Sprintf("timeTables[%d].shifts[%d]", i, j),
						Message: "start and end must be HH:mm",
					})
				}
			}
		}
	}

	for category := range r.Leaves {
		if !isKnownLeaveCategory(category) {
			errs = append(errs, validator.ValidationError{
				Field:   "leaves." + category,
				Message: "is not a known leave category",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Directive converts the request into the merge engine's form. Holiday dates
// are normalized to the persisted midnight stamp here, before they reach the
// core.
func (r *MergeRequest) Directive(employeeID string) (Directive, error) {
	d := Directive{
		EmpID:          &employeeID,
		GeneralDays:    r.GeneralDays,
		ReplaceDays:    r.ReplaceDays,
		TimeTables:     r.TimeTables,
		PunchDocuments: r.PunchDocuments,
	}

	if r.Rule != nil {
		if !isKnownRuleID(RuleID(r.Rule.RuleID)) {
			return Directive{}, fmt.Errorf("%w: %s", ErrUnknownRuleID, r.Rule.RuleID)
		}
		d.Rule = &RuleUpsert{NewValue: r.Rule.Rule(employeeID)}
	}
	if r.DeleteRuleID != nil {
		id := string(*r.DeleteRuleID)
		d.DeleteRuleID = &id
	}
	if r.Holidays != nil {
		stamped := make([]string, 0, len(*r.Holidays))
		for _, h := range *r.Holidays {
			t, err := ParseCalendarDate(h)
			if err != nil {
				return Directive{}, err
			}
			stamped = append(stamped, HolidayStamp(t))
		}
		d.Holidays = &stamped
	}
	if len(r.Leaves) > 0 {
		d.Leaves = make(LeaveSet, len(r.Leaves))
		for category, entries := range r.Leaves {
			if !isKnownLeaveCategory(category) {
				return Directive{}, fmt.Errorf("%w: %s", ErrUnknownLeaveCategory, category)
			}
			d.Leaves[LeaveCategory(category)] = entries
		}
	}

	return d, nil
}

func isKnownRuleID(id RuleID) bool {
	switch id {
	case RuleHolidayMarker, RuleWeekendDays, RuleLatenessGrace, RuleLatenessOvertime,
		RuleMinOvertimeUnit, RuleWeekendOvertime, RuleHolidayOvertime, RuleAbsencePenalty,
		RuleLatePenalty, RuleEarlyLeavePenalty, RuleHalfDayLate, RuleHourlyLatePenalty,
		RuleFixedLatenessFine, RuleIncrementalLateFine, RuleShiftBasedPenalty,
		RuleMissedPunch, RuleOvertimeAllowance:
		return true
	}
	return false
}

func isKnownLeaveCategory(name string) bool {
	for _, c := range LeaveCategories {
		if string(c) == name {
			return true
		}
	}
	return false
}
