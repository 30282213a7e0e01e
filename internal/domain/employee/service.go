package employee

import "context"

// Service provisions employees. Provisioning writes empty salary-rules and
// pay-period aggregates so every later write path can read-merge-write.
type Service interface {
	Provision(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}
