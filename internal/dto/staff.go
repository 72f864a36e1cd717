package dto

import (
	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// CreateStaffRequest defines the data required to register a staff member.
type CreateStaffRequest struct {
	Name   string `json:"name" binding:"required"`
	PixKey string `json:"pixKey"`
	Phone  string `json:"phone"`
	Role   string `json:"role" binding:"required,oneof=MOTOBOY COZINHA ATENDENTE"`
	Shift  string `json:"shift" binding:"required,oneof=DIURNO NOTURNO"`
}

// UpdateStaffRequest defines the data allowed for updating a staff member.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateStaffRequest struct {
	Name   *string `json:"name"`
	PixKey *string `json:"pixKey"`
	Phone  *string `json:"phone"`
	Role   *string `json:"role" binding:"omitempty,oneof=MOTOBOY COZINHA ATENDENTE"`
	Shift  *string `json:"shift" binding:"omitempty,oneof=DIURNO NOTURNO"`
}

// StaffResponse is the API shape of a staff member.
type StaffResponse struct {
	StaffID string `json:"staffId"`
	Name    string `json:"name"`
	PixKey  string `json:"pixKey,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Role    string `json:"role"`
	Shift   string `json:"shift"`
}

// ToStaffResponse converts a domain staff member to its API shape.
func ToStaffResponse(s *domain.StaffMember) StaffResponse {
	return StaffResponse{
		StaffID: s.StaffID,
		Name:    s.Name,
		PixKey:  s.PixKey,
		Phone:   s.Phone,
		Role:    string(s.Role),
		Shift:   string(s.Shift),
	}
}

// ListStaffResponse wraps the staff listing.
type ListStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// ToListStaffResponse converts a slice of domain staff members.
func ToListStaffResponse(staff []domain.StaffMember) ListStaffResponse {
	out := make([]StaffResponse, len(staff))
	for i := range staff {
		out[i] = ToStaffResponse(&staff[i])
	}
	return ListStaffResponse{Staff: out}
}
