package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/attendhq/rules-engine-go/internal/domain/employee"
	"github.com/attendhq/rules-engine-go/internal/pkg/database"
	"github.com/attendhq/rules-engine-go/internal/repository/postgresql"
	rulescodec "github.com/attendhq/rules-engine-go/internal/service/rules"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.Service {
	return &EmployeeServiceImpl{db: db, employeeRepo: employeeRepo}
}

// Provision creates the employee and seeds an empty salary-rules aggregate,
// so every later write path can run its read-merge-write cycle against a
// well-formed wire document. The pay-period record stays unset until the
// first explicit update because its employeeId must come from the payroll
// backend, not from us.
func (s *EmployeeServiceImpl) Provision(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	seed, err := rulescodec.Normalize(req.EmployeeID, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to seed salary rules: %w", err)
	}

	// Wrap the provisioning writes in a transaction; later provisioning
	// steps join it through the context.
	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		c, err := s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeID:  req.EmployeeID,
			DeviceMAC:   req.DeviceMAC,
			FullName:    req.FullName,
			SalaryRules: &seed,
		})
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toResponse(e))
	}
	return out, nil
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		DeviceMAC:  e.DeviceMAC,
		FullName:   e.FullName,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
