package cron

import (
	"context"
	"testing"
	"time"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPunchRepo struct {
	cutoffs []time.Time
	removed int64
}

func (r *stubPunchRepo) Upsert(ctx context.Context, day attendance.PunchDay) (attendance.PunchDay, error) {
	return day, nil
}

func (r *stubPunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.PunchDay, error) {
	return attendance.PunchDay{}, nil
}

func (r *stubPunchRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.PunchDay, error) {
	return nil, nil
}

func (r *stubPunchRepo) DeleteEmpty(ctx context.Context, before time.Time) (int64, error) {
	r.cutoffs = append(r.cutoffs, before)
	return r.removed, nil
}

func TestRegisterMaintenanceJobs_PruneCutoff(t *testing.T) {
	t.Parallel()

	repo := &stubPunchRepo{removed: 3}
	s := NewScheduler()
	RegisterMaintenanceJobs(s, repo, time.Hour, 90)

	s.RunOnce(context.Background())

	require.Len(t, repo.cutoffs, 1)
	want := time.Now().AddDate(0, 0, -90)
	assert.WithinDuration(t, want, repo.cutoffs[0], time.Minute)
}

func TestRunOnce_RunsEveryJob(t *testing.T) {
	t.Parallel()

	var first, second int
	s := NewScheduler()
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first++
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second++
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
