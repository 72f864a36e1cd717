package services

import (
	"context"
	"fmt"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
)

type scheduleService struct {
	scheduleRepo portsrepo.ScheduleRepositoryFacade
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(scheduleRepo portsrepo.ScheduleRepositoryFacade) portssvc.ScheduleSvcFacade {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

func (s *scheduleService) GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	schedule, err := s.scheduleRepo.GetWeeklySchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly schedule: %w", err)
	}
	return schedule.Normalized(), nil
}

func (s *scheduleService) SaveWeeklySchedule(ctx context.Context, schedule domain.WeeklySchedule) (domain.WeeklySchedule, error) {
	for day := range schedule {
		if !isWeekDay(day) {
			return nil, fmt.Errorf("%w: unknown day of week %q", apperrors.ErrValidation, day)
		}
	}
	normalized := schedule.Normalized()
	if err := s.scheduleRepo.SaveWeeklySchedule(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to save weekly schedule: %w", err)
	}
	return normalized, nil
}

func isWeekDay(day domain.DayOfWeek) bool {
	for _, d := range domain.WeekDays {
		if d == day {
			return true
		}
	}
	return false
}
