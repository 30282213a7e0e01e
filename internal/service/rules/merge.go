package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/attendhq/rules-engine-go/internal/domain/rules"
)

// Merge applies a directive to a deep copy of the current aggregate and
// returns the fully normalized wire string. The input aggregate is never
// mutated; with an empty directive the output is byte-for-byte what
// Normalize would produce for the input.
func Merge(current *rules.SalaryRuleSet, d rules.Directive) (string, error) {
	next := cloneRuleSet(current)

	empID := next.EmpID
	if d.EmpID != nil {
		empID = *d.EmpID
		next.EmpID = empID
	}

	if d.Rule != nil {
		next.Rules = upsertRule(next.Rules, *d.Rule, empID)
	}
	if d.DeleteRuleID != nil {
		next.Rules = deleteRules(next.Rules, *d.DeleteRuleID)
	}
	if d.Holidays != nil {
		next.Holidays = append([]string(nil), (*d.Holidays)...)
	}
	if d.GeneralDays != nil {
		next.GeneralDays = append([]rules.ScheduleDay(nil), (*d.GeneralDays)...)
	}
	if d.ReplaceDays != nil {
		next.ReplaceDays = append([]rules.ScheduleDay(nil), (*d.ReplaceDays)...)
	}
	if d.TimeTables != nil {
		next.TimeTables = cloneTimeTables(*d.TimeTables)
	}
	if d.PunchDocuments != nil {
		next.PunchDocuments = clonePunchDocuments(*d.PunchDocuments)
	}
	for category, entries := range d.Leaves {
		next.Leaves[category] = cloneLeaveEntries(entries)
	}

	payload, err := Normalize(empID, next)
	if err != nil {
		return "", fmt.Errorf("failed to normalize merged rules: %w", err)
	}
	return payload, nil
}

// upsertRule shallow-merges the new value onto every rule the filter matches;
// when nothing matches the new value is appended with a freshly allocated
// numeric id. Ids grow monotonically per aggregate (max existing + 1), so an
// id is never reused within one employee's rule list.
func upsertRule(current []rules.Rule, up rules.RuleUpsert, empID string) []rules.Rule {
	match := up.Filter
	if match == nil {
		target := up.NewValue.RuleID
		match = func(r rules.Rule) bool { return r.RuleID == target }
	}

	matched := false
	for i, r := range current {
		if match(r) {
			current[i] = overlayRule(r, up.NewValue)
			matched = true
		}
	}
	if matched {
		return current
	}

	appended := up.NewValue
	if appended.ID == 0 {
		appended.ID = nextRuleID(current)
	}
	if appended.EmployeeID == "" {
		appended.EmployeeID = empID
	}
	if appended.RuleStatus == 0 {
		appended.RuleStatus = rules.RuleStatusActive
	}
	return append(current, appended)
}

// overlayRule copies the non-zero fields of patch onto base. A nil param in
// the patch leaves the existing value in place; clearing a param requires
// replacing the whole rule.
func overlayRule(base, patch rules.Rule) rules.Rule {
	if patch.ID != 0 {
		base.ID = patch.ID
	}
	if patch.EmployeeID != "" {
		base.EmployeeID = patch.EmployeeID
	}
	if patch.RuleID != "" {
		base.RuleID = patch.RuleID
	}
	if patch.RuleStatus != 0 {
		base.RuleStatus = patch.RuleStatus
	}
	if patch.Param1 != nil {
		base.Param1 = cloneParam(patch.Param1)
	}
	if patch.Param2 != nil {
		base.Param2 = cloneParam(patch.Param2)
	}
	if patch.Param3 != nil {
		base.Param3 = cloneParam(patch.Param3)
	}
	if patch.Param4 != nil {
		base.Param4 = cloneParam(patch.Param4)
	}
	if patch.Param5 != nil {
		base.Param5 = cloneParam(patch.Param5)
	}
	if patch.Param6 != nil {
		base.Param6 = cloneParam(patch.Param6)
	}
	return base
}

// deleteRules drops every rule whose kind matches id. "7" and 7 identify the
// same kind, so the comparison goes through numeric canonicalization when
// both sides parse as integers.
func deleteRules(current []rules.Rule, id string) []rules.Rule {
	out := make([]rules.Rule, 0, len(current))
	for _, r := range current {
		if !ruleIDEquals(string(r.RuleID), id) {
			out = append(out, r)
		}
	}
	return out
}

func ruleIDEquals(a, b string) bool {
	if a == b {
		return true
	}
	na, errA := strconv.Atoi(strings.TrimSpace(a))
	nb, errB := strconv.Atoi(strings.TrimSpace(b))
	return errA == nil && errB == nil && na == nb
}

func nextRuleID(current []rules.Rule) int64 {
	var max int64
	for _, r := range current {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func cloneRuleSet(src *rules.SalaryRuleSet) *rules.SalaryRuleSet {
	dst := &rules.SalaryRuleSet{Leaves: rules.LeaveSet{}}
	if src == nil {
		return dst
	}

	dst.EmpID = src.EmpID
	if src.Rules != nil {
		dst.Rules = make([]rules.Rule, len(src.Rules))
		for i, r := range src.Rules {
			dst.Rules[i] = cloneRule(r)
		}
	}
	dst.Holidays = append([]string(nil), src.Holidays...)
	dst.GeneralDays = append([]rules.ScheduleDay(nil), src.GeneralDays...)
	dst.ReplaceDays = append([]rules.ScheduleDay(nil), src.ReplaceDays...)
	dst.TimeTables = cloneTimeTables(src.TimeTables)
	dst.PunchDocuments = clonePunchDocuments(src.PunchDocuments)
	for category, entries := range src.Leaves {
		dst.Leaves[category] = cloneLeaveEntries(entries)
	}
	return dst
}

func cloneRule(r rules.Rule) rules.Rule {
	r.Param1 = cloneParam(r.Param1)
	r.Param2 = cloneParam(r.Param2)
	r.Param3 = cloneParam(r.Param3)
	r.Param4 = cloneParam(r.Param4)
	r.Param5 = cloneParam(r.Param5)
	r.Param6 = cloneParam(r.Param6)
	return r
}

func cloneParam(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimeTables(src []rules.TimeTable) []rules.TimeTable {
	if src == nil {
		return nil
	}
	dst := make([]rules.TimeTable, len(src))
	for i, t := range src {
		t.Shifts = append([]rules.ShiftWindow(nil), t.Shifts...)
		dst[i] = t
	}
	return dst
}

func clonePunchDocuments(src []rules.PunchDocument) []rules.PunchDocument {
	if src == nil {
		return nil
	}
	dst := make([]rules.PunchDocument, len(src))
	for i, d := range src {
		d.Punches = append([]string(nil), d.Punches...)
		dst[i] = d
	}
	return dst
}

func cloneLeaveEntries(src []rules.LeaveEntry) []rules.LeaveEntry {
	if src == nil {
		return nil
	}
	dst := make([]rules.LeaveEntry, len(src))
	for i, e := range src {
		e.Date.Start = cloneParam(e.Date.Start)
		e.Date.End = cloneParam(e.Date.End)
		dst[i] = e
	}
	return dst
}
