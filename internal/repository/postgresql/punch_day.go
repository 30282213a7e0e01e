package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
	"github.com/attendhq/rules-engine-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// punchDayRepositoryImpl persists the per-day punch lists. The punches
// column is text[]: pgx maps []string onto it directly and DeleteEmpty
// unnests it, neither of which would work against jsonb.
type punchDayRepositoryImpl struct {
	db *database.DB
}

func NewPunchDayRepository(db *database.DB) attendance.PunchDayRepository {
	return &punchDayRepositoryImpl{db: db}
}

// Upsert implements attendance.PunchDayRepository. One row per employee and
// date; a second write for the same day replaces the punch list wholesale.
func (r *punchDayRepositoryImpl) Upsert(ctx context.Context, day attendance.PunchDay) (attendance.PunchDay, error) {
	q := GetQuerier(ctx, r.db)

	if day.ID == "" {
		day.ID = uuid.New().String()
	}

	query := `
		INSERT INTO punch_days (id, employee_id, date, punches)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET punches = EXCLUDED.punches, updated_at = NOW()
		RETURNING id, employee_id, date, punches, created_at, updated_at
	`
	stored, err := scanPunchDay(q.QueryRow(ctx, query, day.ID, day.EmployeeID, day.Date, day.Punches))
	if err != nil {
		return attendance.PunchDay{}, fmt.Errorf("failed to upsert punch day: %w", err)
	}
	return stored, nil
}

// GetByEmployeeAndDate implements attendance.PunchDayRepository.
func (r *punchDayRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.PunchDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, punches, created_at, updated_at
		FROM punch_days
		WHERE employee_id = $1 AND date = $2
	`
	day, err := scanPunchDay(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchDay{}, nil
		}
		return attendance.PunchDay{}, fmt.Errorf("failed to get punch day: %w", err)
	}
	return day, nil
}

// GetByEmployeeAndRange implements attendance.PunchDayRepository.
func (r *punchDayRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.PunchDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, punches, created_at, updated_at
		FROM punch_days
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch days: %w", err)
	}
	defer rows.Close()

	var days []attendance.PunchDay
	for rows.Next() {
		day, err := scanPunchDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punch days: %w", err)
	}
	return days, nil
}

// DeleteEmpty implements attendance.PunchDayRepository.
func (r *punchDayRepositoryImpl) DeleteEmpty(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM punch_days
		WHERE date < $1
		  AND NOT EXISTS (
			SELECT 1 FROM unnest(punches) AS p
			WHERE p <> '' AND p <> $2
		  )
	`
	tag, err := q.Exec(ctx, query, before, attendance.SentinelPunch)
	if err != nil {
		return 0, fmt.Errorf("failed to delete empty punch days: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPunchDay(row pgx.Row) (attendance.PunchDay, error) {
	var day attendance.PunchDay
	err := row.Scan(
		&day.ID,
		&day.EmployeeID,
		&day.Date,
		&day.Punches,
		&day.CreatedAt,
		&day.UpdatedAt,
	)
	return day, err
}
