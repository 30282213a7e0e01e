package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendhq/rules-engine-go/internal/domain/employee"
	"github.com/attendhq/rules-engine-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (id, employee_id, device_mac, full_name, salary_rules, pay_period)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, device_mac, full_name, salary_rules, pay_period, created_at, updated_at
	`
	row := q.QueryRow(ctx, query, emp.ID, emp.EmployeeID, emp.DeviceMAC, emp.FullName, emp.SalaryRules, emp.PayPeriod)

	created, err := scanEmployee(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, device_mac, full_name, salary_rules, pay_period, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, device_mac, full_name, salary_rules, pay_period, created_at, updated_at
		FROM employees
		ORDER BY employee_id
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// UpdateSalaryRules implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateSalaryRules(ctx context.Context, employeeID string, payload string) error {
	return r.updateAggregate(ctx, "salary_rules", employeeID, payload)
}

// UpdatePayPeriod implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdatePayPeriod(ctx context.Context, employeeID string, payload string) error {
	return r.updateAggregate(ctx, "pay_period", employeeID, payload)
}

// updateAggregate overwrites one aggregate column wholesale. column is one of
// the two fixed names above, never user input.
func (r *employeeRepositoryImpl) updateAggregate(ctx context.Context, column, employeeID, payload string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = $1, updated_at = NOW()
		WHERE employee_id = $2
		RETURNING id
	`, column)

	var id string
	if err := q.QueryRow(ctx, query, payload, employeeID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update %s for employee %s: %w", column, employeeID, err)
	}
	return nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.EmployeeID,
		&emp.DeviceMAC,
		&emp.FullName,
		&emp.SalaryRules,
		&emp.PayPeriod,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	return emp, err
}
