package payperiod

import "context"

// Service owns the read-merge-write cycle over the pay-period record,
// mirroring the salary-rules service: full-aggregate reads and writes only.
type Service interface {
	// Get returns the decoded record, or ErrPayPeriodNotConfigured when the
	// employee has no record yet.
	Get(ctx context.Context, employeeID string) (PayPeriodRecord, error)

	// Update applies the patch to the current record, persists the encoded
	// wire string and returns the new logical state.
	Update(ctx context.Context, employeeID string, req UpdatePayPeriodRequest) (PayPeriodRecord, error)
}
