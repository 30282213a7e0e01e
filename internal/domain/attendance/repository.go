package attendance

import (
	"context"
	"time"
)

type PunchDayRepository interface {
	Upsert(ctx context.Context, day PunchDay) (PunchDay, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (PunchDay, error)
	GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]PunchDay, error)

	// DeleteEmpty removes punch days older than before whose punch list holds
	// only sentinels. Returns the number of rows removed.
	DeleteEmpty(ctx context.Context, before time.Time) (int64, error)
}
