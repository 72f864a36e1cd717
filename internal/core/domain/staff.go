package domain

import "time"

// StaffRole identifies what a staff member does.
type StaffRole string

const (
	RoleMotoboy   StaffRole = "MOTOBOY"
	RoleKitchen   StaffRole = "COZINHA"
	RoleAttendant StaffRole = "ATENDENTE"
)

// StaffShift identifies the working shift of a staff member.
type StaffShift string

const (
	ShiftDay   StaffShift = "DIURNO"
	ShiftNight StaffShift = "NOTURNO"
)

// StaffMember represents one employee of the restaurant.
type StaffMember struct {
	StaffID string     `json:"staffId"` // Primary Key (UUID)
	Name    string     `json:"name"`
	PixKey  string     `json:"pixKey,omitempty"`
	Phone   string     `json:"phone,omitempty"`
	Role    StaffRole  `json:"role"`
	Shift   StaffShift `json:"shift"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // soft delete
}

// StaffDirectory resolves staff ids to their members.
type StaffDirectory map[string]StaffMember

// NewStaffDirectory builds a directory from a staff listing.
func NewStaffDirectory(staff []StaffMember) StaffDirectory {
	dir := make(StaffDirectory, len(staff))
	for _, s := range staff {
		dir[s.StaffID] = s
	}
	return dir
}

// NameOf resolves a staff id to its display name, or fallback when the id
// is unknown.
func (d StaffDirectory) NameOf(staffID, fallback string) string {
	if s, ok := d[staffID]; ok {
		return s.Name
	}
	return fallback
}
