package rules

import "context"

// Service owns the read-merge-write cycle over the salary-rules aggregate.
// The backend has no partial-field update endpoint, so every write reads the
// full current aggregate, merges and writes the whole wire string back; the
// last write per employee wins (no version token).
type Service interface {
	// GetRuleSet returns the denormalized aggregate, or nil when the employee
	// has no rules configured yet.
	GetRuleSet(ctx context.Context, employeeID string) (*SalaryRuleSet, error)

	// ApplyDirectives merges the directive into the current aggregate,
	// persists the resulting wire string and returns the new logical state.
	ApplyDirectives(ctx context.Context, employeeID string, d Directive) (*SalaryRuleSet, error)

	// DeleteRule removes every rule whose RuleID equals ruleID ("19" and 19
	// are equivalent). Deleting a rule that does not exist is a no-op.
	DeleteRule(ctx context.Context, employeeID string, ruleID string) (*SalaryRuleSet, error)
}
