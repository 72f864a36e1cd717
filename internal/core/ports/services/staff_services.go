package services

import (
	"context"

	"github.com/bigborda/caixa_backend/internal/core/domain"
	"github.com/bigborda/caixa_backend/internal/dto"
)

// StaffReaderSvc defines read operations for the staff directory.
type StaffReaderSvc interface {
	// GetStaffByID retrieves a staff member by id. Returns
	// apperrors.ErrNotFound when no member exists.
	GetStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error)

	// ListStaff retrieves all non-deleted staff members.
	ListStaff(ctx context.Context) ([]domain.StaffMember, error)
}

// StaffWriterSvc defines write operations for the staff directory.
type StaffWriterSvc interface {
	// CreateStaff creates a new staff member.
	CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*domain.StaffMember, error)

	// UpdateStaff updates an existing staff member.
	UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.StaffMember, error)

	// DeleteStaff marks a staff member as deleted (soft delete).
	DeleteStaff(ctx context.Context, staffID string) error
}

// StaffSvcFacade combines all staff service interfaces.
type StaffSvcFacade interface {
	StaffReaderSvc
	StaffWriterSvc
}

// ScheduleSvcFacade manages the weekly staff schedule document.
type ScheduleSvcFacade interface {
	GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error)
	SaveWeeklySchedule(ctx context.Context, schedule domain.WeeklySchedule) (domain.WeeklySchedule, error)
}
