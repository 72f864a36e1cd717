package domain

import (
	"strings"
	"time"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // StaffID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // StaffID reference
}

// DateLayout is the canonical record date format (zero-padded ISO, so
// lexicographic comparison orders dates correctly).
const DateLayout = "2006-01-02"

// DisplayDateLayout is the Brazilian display format used in summaries,
// pendency labels and audit descriptions.
const DisplayDateLayout = "02/01/2006"

// FormatDisplayDate converts an ISO date string (YYYY-MM-DD) into the
// DD/MM/YYYY display form. Malformed input is returned unchanged rather
// than failing a rendering path.
func FormatDisplayDate(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD string.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
