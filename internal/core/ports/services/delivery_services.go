package services

import (
	"context"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// DeliverySvcFacade manages the per-rider command sheets (comandas)
// launched against a day's record as deliveries happen, before the day is
// closed.
type DeliverySvcFacade interface {
	// Board lists the riders active for a date (scheduled for its weekday,
	// present in the payments list, or already holding commands) together
	// with their command sheets.
	Board(ctx context.Context, date string) ([]domain.MotoboyBoard, error)

	// AddCommand appends a command for a rider, creating a draft record
	// for the date when none exists yet, and re-syncs the rider's delivery
	// count in the payments list. The command id and timestamp are
	// assigned here.
	AddCommand(ctx context.Context, date, staffID string, cmd domain.DeliveryCommand) (*domain.DailyRecord, error)

	// RemoveCommand deletes one command and re-syncs the delivery count.
	// Returns apperrors.ErrNotFound when the date or the command does not
	// exist.
	RemoveCommand(ctx context.Context, date, staffID, commandID string) (*domain.DailyRecord, error)
}
