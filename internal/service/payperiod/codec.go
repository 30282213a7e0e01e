package payperiod

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/attendhq/rules-engine-go/internal/domain/payperiod"
)

// otherSalaryWire is the persisted shape of one extra salary component: every
// leaf is cast to string before the array is encoded.
type otherSalaryWire struct {
	IsChecked string `json:"isChecked"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
}

// Normalize encodes the logical record into the persisted wire string.
// Every scalar travels as a string except employeeId, which the backend
// keeps numeric; otherSalary is string-cast at the leaves and stringified
// once at the array level.
func Normalize(employeeID string, rec payperiod.PayPeriodRecord) (string, error) {
	numericID, err := strconv.ParseInt(strings.TrimSpace(employeeID), 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", payperiod.ErrInvalidEmployeeID, employeeID)
	}

	items := make([]otherSalaryWire, 0, len(rec.OtherSalary))
	for _, item := range rec.OtherSalary {
		items = append(items, otherSalaryWire{
			IsChecked: strconv.FormatBool(item.IsChecked),
			Type:      item.Type,
			Amount:    item.Amount,
		})
	}
	otherSalary, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode otherSalary: %w", err)
	}

	wire := payperiod.PayPeriodWire{
		EmployeeID:                numericID,
		HourlyRate:                rec.HourlyRate,
		IsSelectedFixedHourlyRate: strconv.FormatBool(rec.IsSelectedFixedHourlyRate),
		Leave:                     rec.Leave,
		Name:                      rec.Name,
		OtherSalary:               string(otherSalary),
		OvertimeFixed:             rec.OvertimeFixed,
		OvertimeSalary:            rec.OvertimeSalary,
		PayPeriod:                 rec.PayPeriod,
		Salary:                    rec.Salary,
		SelectedOvertimeOption:    rec.SelectedOvertimeOption,
		Shift:                     rec.Shift,
		StartDay:                  rec.StartDay,
		StartWeek:                 rec.StartWeek,
		Status:                    rec.Status,
	}
	payload, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("failed to encode pay period: %w", err)
	}
	return string(payload), nil
}

// Denormalize decodes a persisted pay-period record. Malformed or absent
// input yields nil, meaning "not configured". Scalars are accepted both in
// wire form (strings) and in native form, so a decoded-then-encoded record
// feeds back in cleanly.
func Denormalize(wire string) *payperiod.PayPeriodRecord {
	trimmed := strings.TrimSpace(wire)
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		var inner string
		if err2 := json.Unmarshal([]byte(trimmed), &inner); err2 == nil && strings.TrimSpace(inner) != "" {
			return Denormalize(inner)
		}
		slog.Warn("pay period: malformed record, treating as unconfigured", "error", err)
		return nil
	}

	rec := &payperiod.PayPeriodRecord{
		HourlyRate:                flexString(raw["hourlyRate"]),
		IsSelectedFixedHourlyRate: flexBool(raw["isSelectedFixedHourlyRate"]),
		Leave:                     flexString(raw["leave"]),
		Name:                      flexString(raw["name"]),
		OvertimeFixed:             flexString(raw["overtimeFixed"]),
		OvertimeSalary:            flexString(raw["overtimeSalary"]),
		PayPeriod:                 flexString(raw["payPeriod"]),
		Salary:                    flexString(raw["salary"]),
		SelectedOvertimeOption:    flexString(raw["selectedOvertimeOption"]),
		Shift:                     flexString(raw["shift"]),
		StartDay:                  flexString(raw["startDay"]),
		StartWeek:                 flexString(raw["startWeek"]),
		Status:                    flexString(raw["status"]),
	}
	if id, err := strconv.ParseInt(flexString(raw["employeeId"]), 10, 64); err == nil {
		rec.EmployeeID = id
	}
	rec.OtherSalary = decodeOtherSalary(raw["otherSalary"])
	return rec
}

func decodeOtherSalary(raw json.RawMessage) []payperiod.OtherSalaryItem {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	payload := raw
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		payload = json.RawMessage(s)
	}

	var elems []map[string]json.RawMessage
	if err := json.Unmarshal(payload, &elems); err != nil {
		slog.Warn("pay period: malformed otherSalary, degrading to empty", "error", err)
		return nil
	}
	items := make([]payperiod.OtherSalaryItem, 0, len(elems))
	for _, e := range elems {
		items = append(items, payperiod.OtherSalaryItem{
			IsChecked: flexBool(e["isChecked"]),
			Type:      flexString(e["type"]),
			Amount:    flexString(e["amount"]),
		})
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// flexString reads a JSON string, number or bool as its string form.
func flexString(raw json.RawMessage) string {
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
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

// flexBool reads a JSON bool or the strings "true"/"false".
func flexBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "true"
	}
	return false
}
