package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
)

// RegisterMaintenanceJobs wires the background cleanup jobs. Punch days whose
// list holds only sentinels carry no information; pruning them keeps the
// monthly summary queries from walking dead rows.
func RegisterMaintenanceJobs(s *Scheduler, punchRepo attendance.PunchDayRepository, interval time.Duration, retentionDays int) {
	s.AddJob("prune_empty_punch_days", interval, func(ctx context.Context) error {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		removed, err := punchRepo.DeleteEmpty(ctx, cutoff)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Info("Pruned empty punch days", "removed", removed, "cutoff", cutoff.Format("2006-01-02"))
		}
		return nil
	})
}
