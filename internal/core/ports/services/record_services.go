package services

import (
	"context"

	"github.com/bigborda/caixa_backend/internal/core/domain"
	"github.com/bigborda/caixa_backend/internal/dto"
)

// RecordReaderSvc defines read operations for daily closing records.
type RecordReaderSvc interface {
	// GetRecord retrieves the record for a date. Returns
	// apperrors.ErrNotFound when no record exists.
	GetRecord(ctx context.Context, date string) (*domain.DailyRecord, error)

	// ListRecords retrieves all records, sorted by date descending.
	ListRecords(ctx context.Context) ([]domain.DailyRecord, error)

	// GetAuditLog retrieves the append-only audit trail for a date.
	GetAuditLog(ctx context.Context, date string) ([]domain.AuditEntry, error)
}

// RecordWriterSvc defines write operations for daily closing records.
type RecordWriterSvc interface {
	// SaveClosing runs the full save pipeline for a date: prior-day
	// reconciliation gate, assembly, diff against the stored version,
	// audit append and upsert. Returns apperrors.ErrReconciliationPending
	// when the date still needs an unresolved reconciliation session and
	// the request carries no resolution.
	SaveClosing(ctx context.Context, req dto.SaveClosingRequest) (*domain.DailyRecord, error)

	// DeleteRecord removes the record for a date. Deletion is always
	// explicit; records are never deleted implicitly.
	DeleteRecord(ctx context.Context, date string) error
}

// RecordSvcFacade combines all record service interfaces.
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
