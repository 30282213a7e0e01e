package rules

// RuleUpsert targets array elements in the aggregate's rules. Elements
// matching Filter receive a shallow merge of NewValue (set fields win,
// untouched fields survive); when nothing matches, NewValue is appended as a
// new element. A nil Filter matches by NewValue.RuleID.
type RuleUpsert struct {
	Filter   func(Rule) bool
	NewValue Rule
}

// Directive describes one read-merge-write against the aggregate. Nil fields
// are ignored; several may be set in a single call and each is applied
// independently against a deep copy of the input, so callers never observe
// partial writes.
type Directive struct {
	EmpID          *string
	Rule           *RuleUpsert
	DeleteRuleID   *string // matches "19" and 19 alike
	Holidays       *[]string
	GeneralDays    *[]ScheduleDay
	ReplaceDays    *[]ScheduleDay
	TimeTables     *[]TimeTable
	PunchDocuments *[]PunchDocument
	Leaves         LeaveSet // per-category overwrite
}

// IsEmpty reports whether the directive carries no operation. An EmpID on its
// own does not count; it only qualifies the other fields.
func (d Directive) IsEmpty() bool {
	return d.Rule == nil && d.DeleteRuleID == nil && d.Holidays == nil &&
		d.GeneralDays == nil && d.ReplaceDays == nil && d.TimeTables == nil &&
		d.PunchDocuments == nil && len(d.Leaves) == 0
}
