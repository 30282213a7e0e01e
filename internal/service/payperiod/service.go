package payperiod

import (
	"context"
	"fmt"
	"strings"

	"github.com/attendhq/rules-engine-go/internal/domain/employee"
	"github.com/attendhq/rules-engine-go/internal/domain/payperiod"
	"github.com/attendhq/rules-engine-go/internal/pkg/validator"
)

type PayPeriodServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewPayPeriodService(employeeRepo employee.EmployeeRepository) payperiod.Service {
	return &PayPeriodServiceImpl{employeeRepo: employeeRepo}
}

func (s *PayPeriodServiceImpl) Get(ctx context.Context, employeeID string) (payperiod.PayPeriodRecord, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payperiod.PayPeriodRecord{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.PayPeriod == nil {
		return payperiod.PayPeriodRecord{}, payperiod.ErrPayPeriodNotConfigured
	}
	rec := Denormalize(*emp.PayPeriod)
	if rec == nil {
		return payperiod.PayPeriodRecord{}, payperiod.ErrPayPeriodNotConfigured
	}
	return *rec, nil
}

func (s *PayPeriodServiceImpl) Update(ctx context.Context, employeeID string, req payperiod.UpdatePayPeriodRequest) (payperiod.PayPeriodRecord, error) {
	if !validator.IsNumeric(strings.TrimSpace(employeeID)) {
		return payperiod.PayPeriodRecord{}, payperiod.ErrInvalidEmployeeID
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payperiod.PayPeriodRecord{}, fmt.Errorf("failed to get employee: %w", err)
	}

	current := payperiod.PayPeriodRecord{}
	if emp.PayPeriod != nil {
		if rec := Denormalize(*emp.PayPeriod); rec != nil {
			current = *rec
		}
	}

	next := req.Apply(current)
	payload, err := Normalize(employeeID, next)
	if err != nil {
		return payperiod.PayPeriodRecord{}, fmt.Errorf("failed to normalize pay period: %w", err)
	}
	if err := s.employeeRepo.UpdatePayPeriod(ctx, employeeID, payload); err != nil {
		return payperiod.PayPeriodRecord{}, fmt.Errorf("failed to update pay period: %w", err)
	}

	rec := Denormalize(payload)
	if rec == nil {
		return next, nil
	}
	return *rec, nil
}
