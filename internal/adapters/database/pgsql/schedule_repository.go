package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
)

// scheduleRowID pins the weekly schedule to a single row; the schedule is
// one document for the whole restaurant.
const scheduleRowID = 1

type ScheduleRepository struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Ensure ScheduleRepository implements the schedule repository facade
var _ portsrepo.ScheduleRepositoryFacade = (*ScheduleRepository)(nil)

func (r *ScheduleRepository) GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	query := `
        SELECT payload
        FROM weekly_schedule
        WHERE schedule_id = $1;
    `
	var payload []byte
	err := r.db.QueryRow(ctx, query, scheduleRowID).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.EmptyWeeklySchedule(), nil
		}
		return nil, fmt.Errorf("failed to find weekly schedule: %w", err)
	}

	var schedule domain.WeeklySchedule
	if err := json.Unmarshal(payload, &schedule); err != nil {
		return nil, fmt.Errorf("failed to decode weekly schedule: %w", err)
	}
	return schedule, nil
}

func (r *ScheduleRepository) SaveWeeklySchedule(ctx context.Context, schedule domain.WeeklySchedule) error {
	payload, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly schedule: %w", err)
	}

	query := `
        INSERT INTO weekly_schedule (schedule_id, payload, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (schedule_id) DO UPDATE SET
            payload = EXCLUDED.payload,
            updated_at = EXCLUDED.updated_at;
    `
	_, err = r.db.Exec(ctx, query, scheduleRowID, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save weekly schedule: %w", err)
	}
	return nil
}
