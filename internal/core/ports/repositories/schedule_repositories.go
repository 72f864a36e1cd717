package repositories

import (
	"context"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// ScheduleRepositoryFacade defines persistence for the weekly staff
// schedule. The schedule is a single document; saving replaces it whole.
type ScheduleRepositoryFacade interface {
	GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error)
	SaveWeeklySchedule(ctx context.Context, schedule domain.WeeklySchedule) error
}
