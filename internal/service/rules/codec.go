package rules

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/attendhq/rules-engine-go/internal/domain/rules"
)

// Denormalize deep-parses a persisted salary-rules aggregate. Malformed or
// absent input yields nil, which callers must read as "no rules configured
// yet", not as an error. Individual fields that fail to parse degrade to
// empty and are logged; a bad field never aborts the whole decode.
//
// Fields accept both the wire form (JSON string) and the already-decoded
// form, so feeding a previously denormalized-then-normalized aggregate back
// in is safe.
func Denormalize(wire string) *rules.SalaryRuleSet {
	trimmed := strings.TrimSpace(wire)
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		// The stored value is sometimes itself a JSON-encoded string of the
		// aggregate document; unwrap one level and retry.
		var inner string
		if err2 := json.Unmarshal([]byte(trimmed), &inner); err2 == nil && strings.TrimSpace(inner) != "" {
			return Denormalize(inner)
		}
		slog.Warn("salary rules: malformed aggregate, treating as unconfigured", "error", err)
		return nil
	}

	set := &rules.SalaryRuleSet{
		EmpID:  decodeScalarString(raw["empId"]),
		Leaves: rules.LeaveSet{},
	}
	set.Rules = decodeArray[rules.Rule](raw["rules"], "rules")
	set.Holidays = decodeArray[string](raw["holidays"], "holidays")
	set.GeneralDays = decodeArray[rules.ScheduleDay](raw["generalDays"], "generalDays")
	set.ReplaceDays = decodeArray[rules.ScheduleDay](raw["replaceDays"], "replaceDays")
	set.PunchDocuments = decodeNestedArray[rules.PunchDocument](raw["punchDocuments"], "punchDocuments")
	set.TimeTables = decodeNestedArray[rules.TimeTable](raw["timeTables"], "timeTables")
	for _, category := range rules.LeaveCategories {
		entries := decodeNestedArray[rules.LeaveEntry](raw[string(category)], string(category))
		if len(entries) > 0 {
			set.Leaves[category] = entries
		}
	}
	return set
}

// Normalize encodes the logical aggregate into the persisted wire string.
// The caller-supplied empID always wins over whatever the rules carry.
//
// Encoding depth per field is a backend compatibility requirement: rules,
// holidays, generalDays and replaceDays are stringified once at the array
// level; timeTables, punchDocuments and the nine leave arrays have every
// element stringified and the resulting string array stringified again.
// Absent array fields are encoded as "[]", never null.
func Normalize(empID string, set *rules.SalaryRuleSet) (string, error) {
	if set == nil {
		set = &rules.SalaryRuleSet{}
	}

	normalizedRules := make([]rules.Rule, len(set.Rules))
	for i, r := range set.Rules {
		r.EmployeeID = empID
		normalizedRules[i] = r
	}

	wire := rules.SalaryRuleSetWire{EmpID: empID}
	var err error
	if wire.Rules, err = encodeSingle(normalizedRules); err != nil {
		return "", fmt.Errorf("failed to encode rules: %w", err)
	}
	if wire.Holidays, err = encodeSingle(set.Holidays); err != nil {
		return "", fmt.Errorf("failed to encode holidays: %w", err)
	}
	if wire.GeneralDays, err = encodeSingle(set.GeneralDays); err != nil {
		return "", fmt.Errorf("failed to encode generalDays: %w", err)
	}
	if wire.ReplaceDays, err = encodeSingle(set.ReplaceDays); err != nil {
		return "", fmt.Errorf("failed to encode replaceDays: %w", err)
	}
	if wire.PunchDocuments, err = encodeDouble(set.PunchDocuments); err != nil {
		return "", fmt.Errorf("failed to encode punchDocuments: %w", err)
	}
	if wire.TimeTables, err = encodeDouble(set.TimeTables); err != nil {
		return "", fmt.Errorf("failed to encode timeTables: %w", err)
	}
	for _, category := range rules.LeaveCategories {
		encoded, err := encodeDouble(set.Leaves[category])
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", category, err)
		}
		setLeaveField(&wire, category, encoded)
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("failed to encode salary rules aggregate: %w", err)
	}
	return string(payload), nil
}

// unwrapField strips one level of string encoding: a field holding a JSON
// string yields its content, anything else passes through untouched.
func unwrapField(raw json.RawMessage) json.RawMessage {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return json.RawMessage(s)
	}
	return raw
}

func isAbsent(raw json.RawMessage) bool {
	t := strings.TrimSpace(string(raw))
	return t == "" || t == "null"
}

func decodeScalarString(raw json.RawMessage) string {
	if isAbsent(raw) {
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

// decodeArray decodes a single-encoded array field.
func decodeArray[T any](raw json.RawMessage, field string) []T {
	if isAbsent(raw) {
		return nil
	}
	payload := unwrapField(raw)
	if isAbsent(payload) {
		return nil
	}
	var out []T
	if err := json.Unmarshal(payload, &out); err != nil {
		slog.Warn("salary rules: malformed field, degrading to empty", "field", field, "error", err)
		return nil
	}
	return out
}

// decodeNestedArray decodes a double-encoded array field: the array level is
// unwrapped first, then each element is unwrapped and parsed on its own.
// Elements that fail to parse are dropped individually.
func decodeNestedArray[T any](raw json.RawMessage, field string) []T {
	if isAbsent(raw) {
		return nil
	}
	payload := unwrapField(raw)
	if isAbsent(payload) {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(payload, &elems); err != nil {
		slog.Warn("salary rules: malformed field, degrading to empty", "field", field, "error", err)
		return nil
	}
	out := make([]T, 0, len(elems))
	for i, e := range elems {
		var v T
		if err := json.Unmarshal(unwrapField(e), &v); err != nil {
			slog.Warn("salary rules: malformed element, dropping", "field", field, "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func encodeSingle(v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	s := string(payload)
	if s == "null" {
		s = "[]"
	}
	return s, nil
}

func encodeDouble[T any](items []T) (string, error) {
	encoded := make([]string, 0, len(items))
	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return "", err
		}
		encoded = append(encoded, string(payload))
	}
	outer, err := json.Marshal(encoded)
	if err != nil {
		return "", err
	}
	return string(outer), nil
}

func setLeaveField(w *rules.SalaryRuleSetWire, category rules.LeaveCategory, encoded string) {
	switch category {
	case rules.LeaveAnnual:
		w.AnnualLeave = encoded
	case rules.LeaveSick:
		w.SickLeave = encoded
	case rules.LeaveCasual:
		w.CasualLeave = encoded
	case rules.LeaveMaternity:
		w.MaternityLeave = encoded
	case rules.LeavePaternity:
		w.PaternityLeave = encoded
	case rules.LeaveBereavement:
		w.BereavementLeave = encoded
	case rules.LeaveMarriage:
		w.MarriageLeave = encoded
	case rules.LeaveUnpaid:
		w.UnpaidLeave = encoded
	case rules.LeaveCompensatory:
		w.CompensatoryLeave = encoded
	}
}
