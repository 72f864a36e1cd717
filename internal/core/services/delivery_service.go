package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/middleware"
)

var (
	ErrNotAMotoboy              = fmt.Errorf("%w: delivery commands can only target motoboys", apperrors.ErrValidation)
	ErrCommandCodeMissing       = fmt.Errorf("%w: command code is required", apperrors.ErrValidation)
	ErrCommandAmountNotPositive = fmt.Errorf("%w: command amount must be positive", apperrors.ErrValidation)
)

// deliveryService records per-rider delivery commands on the day's record,
// creating a draft record when the day has not been closed yet.
type deliveryService struct {
	recordRepo   portsrepo.RecordRepositoryFacade
	staffRepo    portsrepo.StaffReader
	scheduleRepo portsrepo.ScheduleRepositoryFacade
}

// NewDeliveryService creates a new DeliveryService.
func NewDeliveryService(recordRepo portsrepo.RecordRepositoryFacade, staffRepo portsrepo.StaffReader, scheduleRepo portsrepo.ScheduleRepositoryFacade) portssvc.DeliverySvcFacade {
	return &deliveryService{
		recordRepo:   recordRepo,
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
	}
}

var _ portssvc.DeliverySvcFacade = (*deliveryService)(nil)

// Board implements portssvc.DeliverySvcFacade. A rider is active for the
// date when scheduled for its weekday, listed in the record's payments, or
// already holding commands.
func (s *deliveryService) Board(ctx context.Context, date string) ([]domain.MotoboyBoard, error) {
	if !domain.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	record, err := s.recordRepo.FindRecordByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load record for %s: %w", date, err)
	}
	schedule, err := s.scheduleRepo.GetWeeklySchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly schedule: %w", err)
	}

	active := make(map[string]bool)
	if day, ok := domain.DayOfWeekFor(date); ok {
		for _, id := range schedule[day] {
			active[id] = true
		}
	}
	if record != nil {
		for _, p := range record.Payments {
			active[p.StaffID] = true
		}
		for id := range record.MotoboyCommands {
			active[id] = true
		}
	}

	staff, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff directory: %w", err)
	}

	boards := make([]domain.MotoboyBoard, 0)
	for _, m := range staff {
		if m.Role != domain.RoleMotoboy || !active[m.StaffID] {
			continue
		}
		board := domain.MotoboyBoard{Staff: m}
		if record != nil {
			board.Commands = record.CommandsFor(m.StaffID)
		}
		boards = append(boards, board)
	}
	return boards, nil
}

// AddCommand implements portssvc.DeliverySvcFacade.
func (s *deliveryService) AddCommand(ctx context.Context, date, staffID string, cmd domain.DeliveryCommand) (*domain.DailyRecord, error) {
	if !domain.ValidDate(date) {
		return nil, ErrInvalidDate
	}
	if cmd.Code == "" {
		return nil, ErrCommandCodeMissing
	}
	if !cmd.Amount.IsPositive() {
		return nil, ErrCommandAmountNotPositive
	}
	if cmd.DeliveryFee.IsNegative() {
		return nil, ErrCommandAmountNotPositive
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff %s: %w", staffID, err)
	}
	if staff == nil {
		return nil, fmt.Errorf("%w: staff %s", apperrors.ErrNotFound, staffID)
	}
	if staff.Role != domain.RoleMotoboy {
		return nil, fmt.Errorf("%w (%s)", ErrNotAMotoboy, staffID)
	}

	record, err := s.recordRepo.FindRecordByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load record for %s: %w", date, err)
	}
	now := time.Now().UTC()
	if record == nil {
		// First command of the day opens a draft; the closing flow turns
		// it into the closed record later.
		record = &domain.DailyRecord{Date: date, CreatedAt: now}
	}

	cmd.ID = uuid.NewString()
	cmd.Timestamp = now
	record.AppendCommand(staffID, cmd)
	record.UpdatedAt = now
	record.Version++

	if err := s.recordRepo.SaveRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to save record for %s: %w", date, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Delivery command launched",
		slog.String("date", date),
		slog.String("staff_id", staffID),
		slog.String("code", cmd.Code),
		slog.Int("commands", len(record.CommandsFor(staffID))),
	)
	return record, nil
}

// RemoveCommand implements portssvc.DeliverySvcFacade.
func (s *deliveryService) RemoveCommand(ctx context.Context, date, staffID, commandID string) (*domain.DailyRecord, error) {
	record, err := s.recordRepo.FindRecordByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load record for %s: %w", date, err)
	}
	if record == nil {
		return nil, apperrors.ErrNotFound
	}
	if !record.RemoveCommand(staffID, commandID) {
		return nil, fmt.Errorf("%w: command %s", apperrors.ErrNotFound, commandID)
	}
	record.UpdatedAt = time.Now().UTC()
	record.Version++

	if err := s.recordRepo.SaveRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to save record for %s: %w", date, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Delivery command removed",
		slog.String("date", date),
		slog.String("staff_id", staffID),
		slog.String("command_id", commandID),
	)
	return record, nil
}
