package rules

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RuleID discriminates which payroll/attendance policy a Rule encodes.
// The values come from the backend's fixed enumeration and travel as strings.
type RuleID string

const (
	RuleHolidayMarker       RuleID = "1"
	RuleWeekendDays         RuleID = "2"
	RuleLatenessGrace       RuleID = "4"
	RuleLatenessOvertime    RuleID = "6"
	RuleMinOvertimeUnit     RuleID = "7"
	RuleWeekendOvertime     RuleID = "8"
	RuleHolidayOvertime     RuleID = "9"
	RuleAbsencePenalty      RuleID = "13"
	RuleLatePenalty         RuleID = "15"
	RuleEarlyLeavePenalty   RuleID = "16"
	RuleHalfDayLate         RuleID = "17"
	RuleHourlyLatePenalty   RuleID = "18"
	RuleFixedLatenessFine   RuleID = "19"
	RuleIncrementalLateFine RuleID = "20"
	RuleShiftBasedPenalty   RuleID = "21"
	RuleMissedPunch         RuleID = "22"
	RuleOvertimeAllowance   RuleID = "23"
)

const RuleStatusActive = 1

// Rule is one payroll/attendance policy record, keyed by (EmployeeID, RuleID).
// Param1..Param6 are opaque wire strings whose meaning depends on RuleID; the
// editing layer validates them, the storage layer never interprets them.
type Rule struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employeeId"`
	RuleID     RuleID  `json:"ruleId"`
	RuleStatus int     `json:"ruleStatus"`
	Param1     *string `json:"param1"`
	Param2     *string `json:"param2"`
	Param3     *string `json:"param3"`
	Param4     *string `json:"param4"`
	Param5     *string `json:"param5"`
	Param6     *string `json:"param6"`
}

// UnmarshalJSON coerces the loosely typed persisted form: id and ruleStatus
// arrive as numbers or numeric strings, ruleId as a string or number, and
// params as null, string or any JSON value (non-strings keep their JSON
// text). Marshalling emits only the canonical types, so a decode-encode pass
// normalizes a sloppy record.
func (r *Rule) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.ID = coerceInt64(raw["id"])
	r.EmployeeID = coerceString(raw["employeeId"])
	r.RuleID = RuleID(coerceString(raw["ruleId"]))
	r.RuleStatus = int(coerceInt64(raw["ruleStatus"]))
	r.Param1 = coerceParam(raw["param1"])
	r.Param2 = coerceParam(raw["param2"])
	r.Param3 = coerceParam(raw["param3"])
	r.Param4 = coerceParam(raw["param4"])
	r.Param5 = coerceParam(raw["param5"])
	r.Param6 = coerceParam(raw["param6"])
	return nil
}

func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func coerceInt64(raw json.RawMessage) int64 {
	n, err := strconv.ParseInt(coerceString(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func coerceParam(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	text := string(raw)
	return &text
}

// Params returns the six param slots in order.
func (r Rule) Params() []*string {
	return []*string{r.Param1, r.Param2, r.Param3, r.Param4, r.Param5, r.Param6}
}

// WeekendDayNames returns the union of day names configured on a weekend-days
// rule (RuleID 2). Each param slot may hold a single day name or a
// comma-separated list.
func (r Rule) WeekendDayNames() []string {
	if r.RuleID != RuleWeekendDays {
		return nil
	}
	seen := make(map[string]bool)
	var days []string
	for _, p := range r.Params() {
		if p == nil {
			continue
		}
		for _, name := range strings.Split(*p, ",") {
			name = strings.TrimSpace(name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			days = append(days, name)
		}
	}
	return days
}

// GraceMinutes returns the lateness grace period of a RuleLatenessGrace rule.
func (r Rule) GraceMinutes() (int, bool) {
	if r.RuleID != RuleLatenessGrace {
		return 0, false
	}
	return intParam(r.Param1)
}

// MissedPunchPolicy returns the cost per missed punch and the acceptable miss
// count of a RuleMissedPunch rule.
func (r Rule) MissedPunchPolicy() (cost decimal.Decimal, allowed int, ok bool) {
	if r.RuleID != RuleMissedPunch || r.Param1 == nil {
		return decimal.Zero, 0, false
	}
	cost, err := decimal.NewFromString(*r.Param1)
	if err != nil {
		return decimal.Zero, 0, false
	}
	allowed, _ = intParam(r.Param2)
	return cost, allowed, true
}

// OvertimeAllowance returns whether overtime is allowed and its multiplier
// for a RuleOvertimeAllowance rule.
func (r Rule) OvertimeAllowance() (enabled bool, multiplier decimal.Decimal, ok bool) {
	if r.RuleID != RuleOvertimeAllowance || r.Param1 == nil {
		return false, decimal.Zero, false
	}
	enabled = *r.Param1 == "true"
	multiplier = decimal.NewFromInt(1)
	if r.Param2 != nil {
		if m, err := decimal.NewFromString(*r.Param2); err == nil {
			multiplier = m
		}
	}
	return enabled, multiplier, true
}

func intParam(p *string) (int, bool) {
	if p == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(*p))
	if err != nil {
		return 0, false
	}
	return n, true
}

// NewWeekendDaysRule builds a weekend-days rule from English day names.
func NewWeekendDaysRule(employeeID string, days []string) Rule {
	return Rule{
		EmployeeID: employeeID,
		RuleID:     RuleWeekendDays,
		RuleStatus: RuleStatusActive,
		Param1:     StringParam(strings.Join(days, ",")),
	}
}

// NewLatenessGraceRule builds a lateness-grace rule.
func NewLatenessGraceRule(employeeID string, minutes int) Rule {
	return Rule{
		EmployeeID: employeeID,
		RuleID:     RuleLatenessGrace,
		RuleStatus: RuleStatusActive,
		Param1:     StringParam(strconv.Itoa(minutes)),
	}
}

// NewMissedPunchRule builds a missed-punch penalty rule.
func NewMissedPunchRule(employeeID string, costPerPunch decimal.Decimal, acceptableMisses int) Rule {
	return Rule{
		EmployeeID: employeeID,
		RuleID:     RuleMissedPunch,
		RuleStatus: RuleStatusActive,
		Param1:     StringParam(costPerPunch.String()),
		Param2:     StringParam(strconv.Itoa(acceptableMisses)),
	}
}

// NewOvertimeAllowanceRule builds an overtime-allowance rule.
func NewOvertimeAllowanceRule(employeeID string, enabled bool, multiplier decimal.Decimal) Rule {
	return Rule{
		EmployeeID: employeeID,
		RuleID:     RuleOvertimeAllowance,
		RuleStatus: RuleStatusActive,
		Param1:     StringParam(strconv.FormatBool(enabled)),
		Param2:     StringParam(multiplier.String()),
	}
}

// StringParam returns a param slot holding s.
func StringParam(s string) *string {
	return &s
}

// ShiftWindow is one scheduled work interval within a day, in "HH:mm".
type ShiftWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeTable maps a weekday to its shift segments. An empty Day marks the
// default table used when no weekday-specific table exists.
type TimeTable struct {
	ID     int64         `json:"id"`
	Day    string        `json:"day"`
	Shifts []ShiftWindow `json:"shifts"`
}

// ScheduleDay is a dated schedule override (general working day or a
// replacement day swapped against a holiday).
type ScheduleDay struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

// PunchDocument is an uploaded punch correction: the raw punches recorded for
// one date together with an optional note.
type PunchDocument struct {
	ID      int64    `json:"id"`
	Date    string   `json:"date"`
	Punches []string `json:"punches"`
	Note    string   `json:"note,omitempty"`
}

// LeaveDate carries the day of a leave entry. Start and End are set only for
// half-day leave; a full-day leave has both unset.
type LeaveDate struct {
	Date  string  `json:"date"`
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// LeaveEntry is one approved leave day within a leave category.
type LeaveEntry struct {
	ID   int64     `json:"id"`
	Date LeaveDate `json:"date"`
}

// LeaveCategory names one of the nine persisted leave arrays.
type LeaveCategory string

const (
	LeaveAnnual       LeaveCategory = "annualLeave"
	LeaveSick         LeaveCategory = "sickLeave"
	LeaveCasual       LeaveCategory = "casualLeave"
	LeaveMaternity    LeaveCategory = "maternityLeave"
	LeavePaternity    LeaveCategory = "paternityLeave"
	LeaveBereavement  LeaveCategory = "bereavementLeave"
	LeaveMarriage     LeaveCategory = "marriageLeave"
	LeaveUnpaid       LeaveCategory = "unpaidLeave"
	LeaveCompensatory LeaveCategory = "compensatoryLeave"
)

// LeaveCategories lists every category in wire order.
var LeaveCategories = []LeaveCategory{
	LeaveAnnual,
	LeaveSick,
	LeaveCasual,
	LeaveMaternity,
	LeavePaternity,
	LeaveBereavement,
	LeaveMarriage,
	LeaveUnpaid,
	LeaveCompensatory,
}

// LeaveSet holds the per-category leave entries of an aggregate.
type LeaveSet map[LeaveCategory][]LeaveEntry

// SalaryRuleSet is the per-employee aggregate in logical (decoded) form.
type SalaryRuleSet struct {
	EmpID          string          `json:"empId"`
	Rules          []Rule          `json:"rules"`
	Holidays       []string        `json:"holidays"`
	GeneralDays    []ScheduleDay   `json:"generalDays"`
	ReplaceDays    []ScheduleDay   `json:"replaceDays"`
	PunchDocuments []PunchDocument `json:"punchDocuments"`
	TimeTables     []TimeTable     `json:"timeTables"`
	Leaves         LeaveSet        `json:"leaves"`
}

// RuleByID returns the first active rule with the given RuleID.
func (s *SalaryRuleSet) RuleByID(id RuleID) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	for _, r := range s.Rules {
		if r.RuleID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// SalaryRuleSetWire mirrors the persisted aggregate: every array field is a
// JSON-encoded string. rules, holidays, generalDays and replaceDays are
// encoded once at the array level; timeTables, punchDocuments and the nine
// leave arrays are encoded per element and then again at the array level.
// The asymmetry is a backend compatibility requirement, not a style choice.
type SalaryRuleSetWire struct {
	EmpID             string `json:"empId"`
	Rules             string `json:"rules"`
	Holidays          string `json:"holidays"`
	GeneralDays       string `json:"generalDays"`
	ReplaceDays       string `json:"replaceDays"`
	PunchDocuments    string `json:"punchDocuments"`
	TimeTables        string `json:"timeTables"`
	AnnualLeave       string `json:"annualLeave"`
	SickLeave         string `json:"sickLeave"`
	CasualLeave       string `json:"casualLeave"`
	MaternityLeave    string `json:"maternityLeave"`
	PaternityLeave    string `json:"paternityLeave"`
	BereavementLeave  string `json:"bereavementLeave"`
	MarriageLeave     string `json:"marriageLeave"`
	UnpaidLeave       string `json:"unpaidLeave"`
	CompensatoryLeave string `json:"compensatoryLeave"`
}
