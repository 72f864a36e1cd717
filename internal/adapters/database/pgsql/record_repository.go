package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
)

// RecordRepository persists daily closing records. The record body is a
// JSONB document keyed by date; version and timestamps are lifted into
// columns so they can be indexed and inspected without parsing the payload.
type RecordRepository struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{db: db}
}

// Ensure RecordRepository implements the record repository facade
var _ portsrepo.RecordRepositoryFacade = (*RecordRepository)(nil)

func (r *RecordRepository) SaveRecord(ctx context.Context, record domain.DailyRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", record.Date, err)
	}

	query := `
        INSERT INTO daily_records (record_date, payload, version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (record_date) DO UPDATE SET
            payload = EXCLUDED.payload,
            version = EXCLUDED.version,
            updated_at = EXCLUDED.updated_at;
    `
	_, err = r.db.Exec(ctx, query,
		record.Date,
		payload,
		record.Version,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.Date, err)
	}
	return nil
}

func (r *RecordRepository) FindRecordByDate(ctx context.Context, date string) (*domain.DailyRecord, error) {
	query := `
        SELECT payload, version, created_at, updated_at
        FROM daily_records
        WHERE record_date = $1;
    `
	var (
		payload              []byte
		version              int64
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, date).Scan(&payload, &version, &createdAt, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Indicate not found explicitly
		}
		return nil, fmt.Errorf("failed to find record by date: %w", err)
	}

	record, err := unmarshalRecord(payload, version, createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", date, err)
	}
	return record, nil
}

func (r *RecordRepository) ListRecords(ctx context.Context) ([]domain.DailyRecord, error) {
	query := `
        SELECT payload, version, created_at, updated_at
        FROM daily_records
        ORDER BY record_date DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []domain.DailyRecord{}
	for rows.Next() {
		var (
			payload              []byte
			version              int64
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&payload, &version, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		record, err := unmarshalRecord(payload, version, createdAt, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to decode record row: %w", err)
		}
		records = append(records, *record)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", rows.Err())
	}

	return records, nil
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, date string) error {
	query := `DELETE FROM daily_records WHERE record_date = $1;`
	_, err := r.db.Exec(ctx, query, date)
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", date, err)
	}
	return nil
}

// unmarshalRecord decodes the JSONB payload and overlays the column values,
// which are authoritative over whatever the payload carries.
func unmarshalRecord(payload []byte, version int64, createdAt, updatedAt time.Time) (*domain.DailyRecord, error) {
	var record domain.DailyRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, err
	}
	record.Version = version
	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt
	return &record, nil
}
