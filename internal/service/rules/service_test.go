package rules

import (
	"context"
	"testing"

	"github.com/attendhq/rules-engine-go/internal/domain/employee"
	"github.com/attendhq/rules-engine-go/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memEmployeeRepo struct {
	byID map[string]employee.Employee
}

func newMemEmployeeRepo(emps ...employee.Employee) *memEmployeeRepo {
	r := &memEmployeeRepo{byID: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.byID[e.EmployeeID] = e
	}
	return r
}

func (r *memEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, ok := r.byID[emp.EmployeeID]; ok {
		return employee.Employee{}, employee.ErrEmployeeExists
	}
	r.byID[emp.EmployeeID] = emp
	return emp, nil
}

func (r *memEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := r.byID[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *memEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}

func (r *memEmployeeRepo) UpdateSalaryRules(ctx context.Context, employeeID string, payload string) error {
	emp, ok := r.byID[employeeID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.SalaryRules = &payload
	r.byID[employeeID] = emp
	return nil
}

func (r *memEmployeeRepo) UpdatePayPeriod(ctx context.Context, employeeID string, payload string) error {
	emp, ok := r.byID[employeeID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.PayPeriod = &payload
	r.byID[employeeID] = emp
	return nil
}

func TestRuleService_GetRuleSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	wire, err := Normalize("EMP-001", sampleRuleSet())
	require.NoError(t, err)
	repo := newMemEmployeeRepo(employee.Employee{EmployeeID: "EMP-001", SalaryRules: &wire})
	svc := NewRuleService(repo)

	set, err := svc.GetRuleSet(ctx, "EMP-001")
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Len(t, set.Rules, 2)

	_, err = svc.GetRuleSet(ctx, "GHOST")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRuleService_GetRuleSet_Unconfigured(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newMemEmployeeRepo(employee.Employee{EmployeeID: "EMP-001"})
	svc := NewRuleService(repo)

	set, err := svc.GetRuleSet(ctx, "EMP-001")
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestRuleService_ApplyDirectives_PersistsAndReturnsNewState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newMemEmployeeRepo(employee.Employee{EmployeeID: "EMP-001"})
	svc := NewRuleService(repo)

	set, err := svc.ApplyDirectives(ctx, "EMP-001", rules.Directive{
		Rule: &rules.RuleUpsert{NewValue: rules.NewLatenessGraceRule("EMP-001", 15)},
	})
	require.NoError(t, err)
	require.NotNil(t, set)
	require.Len(t, set.Rules, 1)
	assert.Equal(t, "EMP-001", set.EmpID)

	// The write must round-trip through the persisted wire string.
	stored, err := repo.GetByEmployeeID(ctx, "EMP-001")
	require.NoError(t, err)
	require.NotNil(t, stored.SalaryRules)
	assert.Equal(t, set, Denormalize(*stored.SalaryRules))

	// A second edit sees the first one.
	set, err = svc.ApplyDirectives(ctx, "EMP-001", rules.Directive{
		Holidays: &[]string{"2025-12-25T00:00:00.000"},
	})
	require.NoError(t, err)
	assert.Len(t, set.Rules, 1)
	assert.Equal(t, []string{"2025-12-25T00:00:00.000"}, set.Holidays)
}

func TestRuleService_ApplyDirectives_EmptyDirective(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newMemEmployeeRepo(employee.Employee{EmployeeID: "EMP-001"})
	svc := NewRuleService(repo)

	_, err := svc.ApplyDirectives(ctx, "EMP-001", rules.Directive{})
	assert.ErrorIs(t, err, rules.ErrEmptyDirective)
}

func TestRuleService_DeleteRule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	wire, err := Normalize("EMP-001", sampleRuleSet())
	require.NoError(t, err)
	repo := newMemEmployeeRepo(employee.Employee{EmployeeID: "EMP-001", SalaryRules: &wire})
	svc := NewRuleService(repo)

	set, err := svc.DeleteRule(ctx, "EMP-001", "2")
	require.NoError(t, err)
	require.Len(t, set.Rules, 1)
	assert.Equal(t, rules.RuleLatenessGrace, set.Rules[0].RuleID)

	// Deleting a rule that is not there is a no-op, not an error.
	set, err = svc.DeleteRule(ctx, "EMP-001", "99")
	require.NoError(t, err)
	assert.Len(t, set.Rules, 1)
}
