package rules

import (
	"context"
	"fmt"

	"github.com/attendhq/rules-engine-go/internal/domain/employee"
	"github.com/attendhq/rules-engine-go/internal/domain/rules"
)

type RuleServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewRuleService(employeeRepo employee.EmployeeRepository) rules.Service {
	return &RuleServiceImpl{employeeRepo: employeeRepo}
}

func (s *RuleServiceImpl) GetRuleSet(ctx context.Context, employeeID string) (*rules.SalaryRuleSet, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.SalaryRules == nil {
		return nil, nil
	}
	return Denormalize(*emp.SalaryRules), nil
}

func (s *RuleServiceImpl) ApplyDirectives(ctx context.Context, employeeID string, d rules.Directive) (*rules.SalaryRuleSet, error) {
	if d.IsEmpty() {
		return nil, rules.ErrEmptyDirective
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	var current *rules.SalaryRuleSet
	if emp.SalaryRules != nil {
		current = Denormalize(*emp.SalaryRules)
	}
	if current == nil {
		current = &rules.SalaryRuleSet{EmpID: employeeID, Leaves: rules.LeaveSet{}}
	}
	if d.EmpID == nil {
		d.EmpID = &employeeID
	}

	payload, err := Merge(current, d)
	if err != nil {
		return nil, fmt.Errorf("failed to merge salary rules: %w", err)
	}
	if err := s.employeeRepo.UpdateSalaryRules(ctx, employeeID, payload); err != nil {
		return nil, fmt.Errorf("failed to update salary rules: %w", err)
	}
	return Denormalize(payload), nil
}

func (s *RuleServiceImpl) DeleteRule(ctx context.Context, employeeID string, ruleID string) (*rules.SalaryRuleSet, error) {
	return s.ApplyDirectives(ctx, employeeID, rules.Directive{DeleteRuleID: &ruleID})
}
