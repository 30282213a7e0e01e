package payperiod

import (
	"encoding/json"
	"testing"

	"github.com/attendhq/rules-engine-go/internal/domain/payperiod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() payperiod.PayPeriodRecord {
	return payperiod.PayPeriodRecord{
		EmployeeID:                42,
		HourlyRate:                "125.50",
		IsSelectedFixedHourlyRate: true,
		Leave:                     "12",
		Name:                      "Monthly Standard",
		OtherSalary: []payperiod.OtherSalaryItem{
			{IsChecked: true, Type: "transport", Amount: "300"},
			{IsChecked: false, Type: "meal", Amount: "150.25"},
		},
		OvertimeFixed:          "0",
		OvertimeSalary:         "187.75",
		PayPeriod:              "monthly",
		Salary:                 "20000",
		SelectedOvertimeOption: "multiplier",
		Shift:                  "day",
		StartDay:               "1",
		StartWeek:              "Monday",
		Status:                 "active",
	}
}

func TestNormalize_WireShape(t *testing.T) {
	t.Parallel()

	wire, err := Normalize("42", sampleRecord())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(wire), &raw))

	// employeeId is the only numeric field on the wire.
	assert.Equal(t, "42", string(raw["employeeId"]))
	assert.Equal(t, `"true"`, string(raw["isSelectedFixedHourlyRate"]))
	assert.Equal(t, `"20000"`, string(raw["salary"]))

	// otherSalary is stringified once with string-cast leaves.
	var encoded string
	require.NoError(t, json.Unmarshal(raw["otherSalary"], &encoded))
	var items []map[string]string
	require.NoError(t, json.Unmarshal([]byte(encoded), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "true", items[0]["isChecked"])
	assert.Equal(t, "300", items[0]["amount"])
	assert.Equal(t, "false", items[1]["isChecked"])
}

func TestNormalize_RejectsNonNumericEmployeeID(t *testing.T) {
	t.Parallel()

	_, err := Normalize("EMP-042", sampleRecord())
	assert.ErrorIs(t, err, payperiod.ErrInvalidEmployeeID)
}

func TestNormalizeDenormalize_RoundTrip(t *testing.T) {
	t.Parallel()

	in := sampleRecord()
	wire, err := Normalize("42", in)
	require.NoError(t, err)

	out := Denormalize(wire)
	require.NotNil(t, out)
	assert.Equal(t, in, *out)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := Normalize("42", sampleRecord())
	require.NoError(t, err)

	decoded := Denormalize(first)
	require.NotNil(t, decoded)
	second, err := Normalize("42", *decoded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDenormalize_AbsentOrMalformed(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Denormalize(""))
	assert.Nil(t, Denormalize("null"))
	assert.Nil(t, Denormalize("{{{"))
}

func TestDenormalize_AcceptsNativeForms(t *testing.T) {
	t.Parallel()

	// Historical rows sometimes carry native booleans, numbers and a plain
	// otherSalary array instead of the string-cast forms.
	doc := `{
		"employeeId": 7,
		"isSelectedFixedHourlyRate": true,
		"salary": 15000,
		"otherSalary": [{"isChecked": true, "type": "bonus", "amount": 500}]
	}`

	rec := Denormalize(doc)
	require.NotNil(t, rec)
	assert.Equal(t, int64(7), rec.EmployeeID)
	assert.True(t, rec.IsSelectedFixedHourlyRate)
	assert.Equal(t, "15000", rec.Salary)
	require.Len(t, rec.OtherSalary, 1)
	assert.True(t, rec.OtherSalary[0].IsChecked)
	assert.Equal(t, "500", rec.OtherSalary[0].Amount)
}

func TestUpdateRequest_ApplyPatchesOnlySetFields(t *testing.T) {
	t.Parallel()

	current := sampleRecord()
	salary := "25000"
	req := payperiod.UpdatePayPeriodRequest{Salary: &salary}

	next := req.Apply(current)
	assert.Equal(t, "25000", next.Salary)
	assert.Equal(t, current.HourlyRate, next.HourlyRate)
	assert.Equal(t, current.OtherSalary, next.OtherSalary)
}
