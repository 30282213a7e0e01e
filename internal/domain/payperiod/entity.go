package payperiod

// OtherSalaryItem is one extra salary component on the pay-period record.
// Amount stays a string end to end; the editing layer validates it as a
// number before it gets here.
type OtherSalaryItem struct {
	IsChecked bool   `json:"isChecked"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
}

// PayPeriodRecord is the per-employee pay schedule in logical form. The
// scalar fields are opaque configuration values; only EmployeeID and
// IsSelectedFixedHourlyRate carry native types, mirroring what the wire
// format distinguishes.
type PayPeriodRecord struct {
	EmployeeID                int64             `json:"employeeId"`
	HourlyRate                string            `json:"hourlyRate"`
	IsSelectedFixedHourlyRate bool              `json:"isSelectedFixedHourlyRate"`
	Leave                     string            `json:"leave"`
	Name                      string            `json:"name"`
	OtherSalary               []OtherSalaryItem `json:"otherSalary"`
	OvertimeFixed             string            `json:"overtimeFixed"`
	OvertimeSalary            string            `json:"overtimeSalary"`
	PayPeriod                 string            `json:"payPeriod"`
	Salary                    string            `json:"salary"`
	SelectedOvertimeOption    string            `json:"selectedOvertimeOption"`
	Shift                     string            `json:"shift"`
	StartDay                  string            `json:"startDay"`
	StartWeek                 string            `json:"startWeek"`
	Status                    string            `json:"status"`
}

// PayPeriodWire mirrors the persisted record: every scalar is a string except
// employeeId, which the backend keeps numeric. OtherSalary is the array with
// string-cast leaves, JSON-stringified once into a single embedded string
// (single level, unlike the rule aggregate's double-encoded arrays).
type PayPeriodWire struct {
	EmployeeID                int64  `json:"employeeId"`
	HourlyRate                string `json:"hourlyRate"`
	IsSelectedFixedHourlyRate string `json:"isSelectedFixedHourlyRate"`
	Leave                     string `json:"leave"`
	Name                      string `json:"name"`
	OtherSalary               string `json:"otherSalary"`
	OvertimeFixed             string `json:"overtimeFixed"`
	OvertimeSalary            string `json:"overtimeSalary"`
	PayPeriod                 string `json:"payPeriod"`
	Salary                    string `json:"salary"`
	SelectedOvertimeOption    string `json:"selectedOvertimeOption"`
	Shift                     string `json:"shift"`
	StartDay                  string `json:"startDay"`
	StartWeek                 string `json:"startWeek"`
	Status                    string `json:"status"`
}
