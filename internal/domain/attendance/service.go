package attendance

import "context"

type Service interface {
	// WorkedTime runs the time-window calculator over caller-supplied shifts
	// and punches without touching storage.
	WorkedTime(ctx context.Context, req WorkedTimeRequest) (WorkedTimeResponse, error)

	// Classify answers whether the date is a holiday, leave day or weekend
	// under the employee's rule set. Unparseable dates yield ErrInvalidDate.
	Classify(ctx context.Context, employeeID string, date string) (ClassificationResponse, error)

	// MonthlySummary joins the month's punch days with the rule set and
	// derives worked minutes, absences and missed-punch facts per day.
	MonthlySummary(ctx context.Context, employeeID string, month string) (MonthlySummaryResponse, error)

	// RecordPunches stores the day's flat punch list from the device export.
	RecordPunches(ctx context.Context, employeeID string, date string, req UpsertPunchesRequest) (PunchDayResponse, error)
}
