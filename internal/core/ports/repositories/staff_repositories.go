package repositories

import (
	"context"
	"time"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// StaffReader defines read operations for the staff directory.
type StaffReader interface {
	// FindStaffByID retrieves a staff member by id.
	// Returns (nil, nil) when no member exists with that id.
	FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error)

	// ListStaff retrieves all non-deleted staff members.
	ListStaff(ctx context.Context) ([]domain.StaffMember, error)
}

// StaffWriter defines write operations for the staff directory.
type StaffWriter interface {
	// SaveStaff persists a new staff member.
	SaveStaff(ctx context.Context, staff domain.StaffMember) error

	// UpdateStaff updates an existing staff member's details.
	UpdateStaff(ctx context.Context, staff domain.StaffMember) error
}

// StaffLifecycleManager defines operations for managing staff lifecycle.
type StaffLifecycleManager interface {
	// MarkStaffDeleted marks a staff member as deleted (soft delete).
	MarkStaffDeleted(ctx context.Context, staffID string, deletedAt time.Time) error
}

// StaffRepositoryFacade combines all staff repository interfaces.
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
	StaffLifecycleManager
}
