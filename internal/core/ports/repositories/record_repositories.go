package repositories

import (
	"context"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// RecordReader defines read operations for daily closing records.
type RecordReader interface {
	// FindRecordByDate retrieves the record for a calendar date.
	// Returns (nil, nil) when no record exists for that date.
	FindRecordByDate(ctx context.Context, date string) (*domain.DailyRecord, error)

	// ListRecords retrieves every stored record. Ordering is not part of
	// the contract; callers sort explicitly when order matters.
	ListRecords(ctx context.Context) ([]domain.DailyRecord, error)
}

// RecordWriter defines write operations for daily closing records.
type RecordWriter interface {
	// SaveRecord inserts the record if its date is new, else fully
	// replaces the stored version (last write wins).
	SaveRecord(ctx context.Context, record domain.DailyRecord) error

	// DeleteRecord removes the record for a date; no-op when absent.
	DeleteRecord(ctx context.Context, date string) error
}

// RecordRepositoryFacade combines all record repository interfaces.
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
