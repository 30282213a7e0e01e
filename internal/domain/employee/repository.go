package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// UpdateSalaryRules overwrites the full salary-rules aggregate. There is
	// no partial-field update; concurrent writers race and the last one wins.
	UpdateSalaryRules(ctx context.Context, employeeID string, payload string) error

	// UpdatePayPeriod overwrites the full pay-period aggregate.
	UpdatePayPeriod(ctx context.Context, employeeID string, payload string) error
}
