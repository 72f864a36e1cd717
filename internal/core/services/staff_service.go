package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/dto"
)

type staffService struct {
	staffRepo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates a new StaffService.
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*domain.StaffMember, error) {
	now := time.Now().UTC()
	staffID := uuid.NewString()

	staff := domain.StaffMember{
		StaffID: staffID,
		Name:    req.Name,
		PixKey:  req.PixKey,
		Phone:   req.Phone,
		Role:    domain.StaffRole(req.Role),
		Shift:   domain.StaffShift(req.Shift),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     staffID,
			LastUpdatedAt: now,
			LastUpdatedBy: staffID,
		},
	}

	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member %s: %w", staffID, err)
	}
	if staff == nil {
		return nil, apperrors.ErrNotFound
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	staff, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.StaffMember, error) {
	staff, err := s.GetStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.PixKey != nil {
		staff.PixKey = *req.PixKey
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Role != nil {
		staff.Role = domain.StaffRole(*req.Role)
	}
	if req.Shift != nil {
		staff.Shift = domain.StaffShift(*req.Shift)
	}
	staff.LastUpdatedAt = time.Now().UTC()
	staff.LastUpdatedBy = staffID

	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		return nil, fmt.Errorf("failed to update staff member %s: %w", staffID, err)
	}
	return staff, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, staffID string) error {
	if _, err := s.GetStaffByID(ctx, staffID); err != nil {
		return err
	}
	if err := s.staffRepo.MarkStaffDeleted(ctx, staffID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", staffID, err)
	}
	return nil
}
