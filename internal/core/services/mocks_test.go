package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// --- Mock RecordRepository ---

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindRecordByDate(ctx context.Context, date string) (*domain.DailyRecord, error) {
	args := m.Called(ctx, date)
	var record *domain.DailyRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.DailyRecord)
	}
	return record, args.Error(1)
}

func (m *MockRecordRepository) ListRecords(ctx context.Context) ([]domain.DailyRecord, error) {
	args := m.Called(ctx)
	var records []domain.DailyRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.DailyRecord)
	}
	return records, args.Error(1)
}

func (m *MockRecordRepository) SaveRecord(ctx context.Context, record domain.DailyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) DeleteRecord(ctx context.Context, date string) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

// --- Mock StaffRepository ---

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	args := m.Called(ctx, staffID)
	var staff *domain.StaffMember
	if args.Get(0) != nil {
		staff = args.Get(0).(*domain.StaffMember)
	}
	return staff, args.Error(1)
}

func (m *MockStaffRepository) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	args := m.Called(ctx)
	var staff []domain.StaffMember
	if args.Get(0) != nil {
		staff = args.Get(0).([]domain.StaffMember)
	}
	return staff, args.Error(1)
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.StaffMember) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff domain.StaffMember) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) MarkStaffDeleted(ctx context.Context, staffID string, deletedAt time.Time) error {
	args := m.Called(ctx, staffID, deletedAt)
	return args.Error(0)
}

// --- Mock ScheduleRepository ---

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	args := m.Called(ctx)
	var schedule domain.WeeklySchedule
	if args.Get(0) != nil {
		schedule = args.Get(0).(domain.WeeklySchedule)
	}
	return schedule, args.Error(1)
}

func (m *MockScheduleRepository) SaveWeeklySchedule(ctx context.Context, schedule domain.WeeklySchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

// --- Mock ReconciliationService ---

type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) NeedsReconciliation(ctx context.Context, targetDate string) (bool, error) {
	args := m.Called(ctx, targetDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockReconciliationService) StartSession(ctx context.Context, targetDate string) (*domain.ReconciliationSession, error) {
	args := m.Called(ctx, targetDate)
	var session *domain.ReconciliationSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.ReconciliationSession)
	}
	return session, args.Error(1)
}

func (m *MockReconciliationService) Confirm(ctx context.Context, targetDate string, acknowledgedStaffIDs []string, current []domain.PendingItem) (*domain.ReconciliationOutcome, error) {
	args := m.Called(ctx, targetDate, acknowledgedStaffIDs, current)
	var outcome *domain.ReconciliationOutcome
	if args.Get(0) != nil {
		outcome = args.Get(0).(*domain.ReconciliationOutcome)
	}
	return outcome, args.Error(1)
}

func (m *MockReconciliationService) MarkResolved(targetDate string) {
	m.Called(targetDate)
}

func (m *MockReconciliationService) Cancel(targetDate string) {
	m.Called(targetDate)
}

func (m *MockReconciliationService) Forget(targetDate string) {
	m.Called(targetDate)
}

// --- Mock SummaryGenerator ---

type MockSummaryGenerator struct {
	mock.Mock
}

func (m *MockSummaryGenerator) GenerateSummary(ctx context.Context, record *domain.DailyRecord, staff []domain.StaffMember) (string, error) {
	args := m.Called(ctx, record, staff)
	return args.String(0), args.Error(1)
}
