package employee

import "time"

// Employee is the engine's view of an employee: identity plus the two
// wire-format aggregate columns. SalaryRules and PayPeriod are opaque JSON
// strings owned by the rules/pay-period codecs; nil means the aggregate has
// never been written.
type Employee struct {
	ID          string
	EmployeeID  string
	DeviceMAC   *string
	FullName    string
	SalaryRules *string
	PayPeriod   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
