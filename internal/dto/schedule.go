package dto

import (
	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// SaveScheduleRequest replaces the weekly schedule document. Keys are the
// pt-BR day names; unknown keys are rejected by the service.
type SaveScheduleRequest struct {
	Schedule map[string][]string `json:"schedule" binding:"required"`
}

// ToDomainSchedule converts the request into a domain schedule.
func (r SaveScheduleRequest) ToDomainSchedule() domain.WeeklySchedule {
	s := make(domain.WeeklySchedule, len(r.Schedule))
	for day, ids := range r.Schedule {
		s[domain.DayOfWeek(day)] = ids
	}
	return s
}

// ScheduleResponse is the API shape of the weekly schedule.
type ScheduleResponse struct {
	Schedule domain.WeeklySchedule `json:"schedule"`
}
