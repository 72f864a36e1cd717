package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
)

type StaffRepository struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

// Ensure StaffRepository implements the staff repository facade
var _ portsrepo.StaffRepositoryFacade = (*StaffRepository)(nil)

func (r *StaffRepository) SaveStaff(ctx context.Context, staff domain.StaffMember) error {
	query := `
        INSERT INTO staff_members (staff_id, name, pix_key, phone, role, shift, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		staff.StaffID,
		staff.Name,
		staff.PixKey,
		staff.Phone,
		staff.Role,
		staff.Shift,
		staff.CreatedAt,
		staff.CreatedBy,
		staff.LastUpdatedAt,
		staff.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save staff member: %w", err)
	}
	return nil
}

func (r *StaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	query := `
        SELECT staff_id, name, pix_key, phone, role, shift, created_at, created_by, last_updated_at, last_updated_by
        FROM staff_members
        WHERE staff_id = $1 AND deleted_at IS NULL;
    `
	var staff domain.StaffMember
	err := r.db.QueryRow(ctx, query, staffID).Scan(
		&staff.StaffID,
		&staff.Name,
		&staff.PixKey,
		&staff.Phone,
		&staff.Role,
		&staff.Shift,
		&staff.CreatedAt,
		&staff.CreatedBy,
		&staff.LastUpdatedAt,
		&staff.LastUpdatedBy,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Indicate not found explicitly
		}
		return nil, fmt.Errorf("failed to find staff member by ID: %w", err)
	}
	return &staff, nil
}

func (r *StaffRepository) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	query := `
        SELECT staff_id, name, pix_key, phone, role, shift, created_at, created_by, last_updated_at, last_updated_by
        FROM staff_members
        WHERE deleted_at IS NULL
        ORDER BY name ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff members: %w", err)
	}
	defer rows.Close()

	staff := []domain.StaffMember{}
	for rows.Next() {
		var member domain.StaffMember
		err := rows.Scan(
			&member.StaffID,
			&member.Name,
			&member.PixKey,
			&member.Phone,
			&member.Role,
			&member.Shift,
			&member.CreatedAt,
			&member.CreatedBy,
			&member.LastUpdatedAt,
			&member.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, member)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", rows.Err())
	}

	return staff, nil
}

func (r *StaffRepository) UpdateStaff(ctx context.Context, staff domain.StaffMember) error {
	query := `
        UPDATE staff_members
        SET name = $1, pix_key = $2, phone = $3, role = $4, shift = $5, last_updated_at = $6, last_updated_by = $7
        WHERE staff_id = $8 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		staff.Name,
		staff.PixKey,
		staff.Phone,
		staff.Role,
		staff.Shift,
		staff.LastUpdatedAt,
		staff.LastUpdatedBy,
		staff.StaffID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update staff query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the member doesn't exist or is already deleted.
		return fmt.Errorf("staff member not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *StaffRepository) MarkStaffDeleted(ctx context.Context, staffID string, deletedAt time.Time) error {
	query := `
        UPDATE staff_members
        SET deleted_at = $1, last_updated_at = $1
        WHERE staff_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, staffID)
	if err != nil {
		return fmt.Errorf("failed to mark staff member deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("staff member not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}
