package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/dto"
	"github.com/bigborda/caixa_backend/internal/middleware"
)

var (
	ErrCloserMissing         = fmt.Errorf("%w: closing staff member is required", apperrors.ErrValidation)
	ErrInvalidDate           = fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	ErrNegativeSales         = fmt.Errorf("%w: sales amounts must not be negative", apperrors.ErrValidation)
	ErrNegativePayment       = fmt.Errorf("%w: payment amounts must not be negative", apperrors.ErrValidation)
	ErrNegativeRide          = fmt.Errorf("%w: ride costs must not be negative", apperrors.ErrValidation)
	ErrDuplicateStaffPayment = fmt.Errorf("%w: duplicate staff id in payments", apperrors.ErrValidation)
	ErrUnknownPaymentStaff   = fmt.Errorf("%w: payment references unknown staff id", apperrors.ErrValidation)
	ErrItemAmountNotPositive = fmt.Errorf("%w: debt and pendency amounts must be positive", apperrors.ErrValidation)
)

// recordService runs the daily record save pipeline and the record reads.
type recordService struct {
	recordRepo        portsrepo.RecordRepositoryFacade
	staffRepo         portsrepo.StaffReader
	reconciliationSvc portssvc.ReconciliationSvcFacade
}

// NewRecordService creates a new RecordService.
func NewRecordService(recordRepo portsrepo.RecordRepositoryFacade, staffRepo portsrepo.StaffReader, reconciliationSvc portssvc.ReconciliationSvcFacade) portssvc.RecordSvcFacade {
	return &recordService{
		recordRepo:        recordRepo,
		staffRepo:         staffRepo,
		reconciliationSvc: reconciliationSvc,
	}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// SaveClosing implements the save pipeline: reconciliation gate, assembly,
// diff against the stored version of the same date, audit append, upsert.
func (s *recordService) SaveClosing(ctx context.Context, req dto.SaveClosingRequest) (*domain.DailyRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidDate(req.Date) {
		return nil, ErrInvalidDate
	}
	// The only hard precondition for assembly: the save is rejected before
	// any store mutation when nobody is identified as closing the day.
	if req.ClosedByStaffID == "" {
		return nil, ErrCloserMissing
	}

	prior, err := s.recordRepo.FindRecordByDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior record for %s: %w", req.Date, err)
	}

	pendencies := req.DomainPendencies()
	reconciledPrior := ""
	if prior == nil || !prior.IsClosed {
		needed, err := s.reconciliationSvc.NeedsReconciliation(ctx, req.Date)
		if err != nil {
			return nil, fmt.Errorf("reconciliation check failed for %s: %w", req.Date, err)
		}
		if needed {
			if req.Reconciliation == nil || !req.Reconciliation.Confirm {
				logger.Info("Save aborted, prior-day reconciliation pending", slog.String("date", req.Date))
				return nil, apperrors.ErrReconciliationPending
			}
			outcome, err := s.reconciliationSvc.Confirm(ctx, req.Date, req.Reconciliation.AcknowledgedStaffIDs, pendencies)
			if err != nil {
				return nil, fmt.Errorf("reconciliation confirm failed for %s: %w", req.Date, err)
			}
			pendencies = outcome.Pendencies
			reconciledPrior = outcome.PriorDate
		}
	}

	staff, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff directory: %w", err)
	}
	dir := domain.NewStaffDirectory(staff)

	now := time.Now().UTC()
	record, err := assembleRecord(req, pendencies, prior, dir, now)
	if err != nil {
		return nil, err
	}
	if reconciledPrior != "" && !record.HasReconciledPriorDate(reconciledPrior) {
		record.ReconciledPriorDates = append(record.ReconciledPriorDates, reconciledPrior)
	}

	actor := dir.NameOf(req.ClosedByStaffID, domain.UnknownActorName)
	description := domain.InitialCloseDescription
	var priorLog []domain.AuditEntry
	if prior != nil {
		priorLog = prior.AuditLog
		// Command-only drafts have never been closed; their first closing
		// is still the initial one and produces no diff.
		if prior.IsClosed {
			lines := domain.DiffRecords(prior, record).Render(func(id string) string {
				return dir.NameOf(id, id)
			})
			description = strings.Join(lines, "; ")
		}
	}
	record.AuditLog = domain.AppendAuditEntry(priorLog, actor, description, now)

	if err := s.recordRepo.SaveRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to save record for %s: %w", req.Date, err)
	}
	// The workflow is only settled once the record carrying its outcome is
	// durable; a failed save above leaves the session open for a retry.
	if reconciledPrior != "" {
		s.reconciliationSvc.MarkResolved(req.Date)
	}

	logger.Info("Daily record saved",
		slog.String("date", record.Date),
		slog.Int("audit_entries", len(record.AuditLog)),
		slog.Int64("version", record.Version),
	)
	return record, nil
}

// assembleRecord merges the submitted draft into a persistable record.
// Payments with amount <= 0 are dropped, so re-opening a record re-derives
// the active staff ids strictly from persisted payments.
func assembleRecord(req dto.SaveClosingRequest, pendencies []domain.PendingItem, prior *domain.DailyRecord, dir domain.StaffDirectory, now time.Time) (*domain.DailyRecord, error) {
	sales := domain.DailySales{IFood: req.Sales.IFood, KCMS: req.Sales.KCMS, SGV: req.Sales.SGV}
	for _, amt := range []decimal.Decimal{sales.IFood, sales.KCMS, sales.SGV} {
		if amt.IsNegative() {
			return nil, ErrNegativeSales
		}
	}

	payments := make([]domain.StaffPayment, 0, len(req.Payments))
	seen := make(map[string]bool, len(req.Payments))
	for _, p := range req.Payments {
		if p.Amount.IsNegative() {
			return nil, ErrNegativePayment
		}
		if seen[p.StaffID] {
			return nil, fmt.Errorf("%w (%s)", ErrDuplicateStaffPayment, p.StaffID)
		}
		seen[p.StaffID] = true
		if _, ok := dir[p.StaffID]; !ok {
			return nil, fmt.Errorf("%w (%s)", ErrUnknownPaymentStaff, p.StaffID)
		}
		if !p.Amount.IsPositive() {
			continue // zero payments do not survive a save
		}
		payments = append(payments, domain.StaffPayment{
			StaffID:       p.StaffID,
			Amount:        p.Amount,
			DeliveryCount: p.DeliveryCount,
		})
	}

	debts := req.DomainDebts()
	for i := range debts {
		if !debts[i].Amount.IsPositive() {
			return nil, ErrItemAmountNotPositive
		}
		if debts[i].ID == "" {
			debts[i].ID = uuid.NewString()
		}
	}

	items := make([]domain.PendingItem, len(pendencies))
	copy(items, pendencies)
	for i := range items {
		if !items[i].Amount.IsPositive() {
			return nil, ErrItemAmountNotPositive
		}
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	total := decimal.Zero
	for _, ride := range req.Rides {
		if ride.IsNegative() {
			return nil, ErrNegativeRide
		}
		total = total.Add(ride)
	}

	record := &domain.DailyRecord{
		Date:            req.Date,
		Sales:           sales,
		Payments:        payments,
		Debts:           debts,
		PendingPayables: items,
		RiderLedger: domain.RiderLedger{
			Count:     len(req.Rides),
			TotalCost: total,
			Rides:     req.Rides,
		},
		Notes:           req.Notes,
		ClosedByStaffID: req.ClosedByStaffID,
		IsClosed:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}
	if prior != nil {
		record.CreatedAt = prior.CreatedAt
		record.Version = prior.Version + 1
		record.ReconciledPriorDates = append([]string(nil), prior.ReconciledPriorDates...)
		// Delivery commands are launched outside the closing flow and must
		// survive it, whether the prior version is a draft or closed.
		if len(prior.MotoboyCommands) > 0 {
			record.MotoboyCommands = make(map[string][]domain.DeliveryCommand, len(prior.MotoboyCommands))
			for id, cmds := range prior.MotoboyCommands {
				record.MotoboyCommands[id] = append([]domain.DeliveryCommand(nil), cmds...)
			}
		}
	}
	return record, nil
}

// GetRecord implements portssvc.RecordReaderSvc.
func (s *recordService) GetRecord(ctx context.Context, date string) (*domain.DailyRecord, error) {
	record, err := s.recordRepo.FindRecordByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get record for %s: %w", date, err)
	}
	if record == nil {
		return nil, apperrors.ErrNotFound
	}
	return record, nil
}

// ListRecords returns all records sorted by date descending, newest first,
// the order the closing history is browsed in.
func (s *recordService) ListRecords(ctx context.Context) ([]domain.DailyRecord, error) {
	records, err := s.recordRepo.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

// GetAuditLog implements portssvc.RecordReaderSvc.
func (s *recordService) GetAuditLog(ctx context.Context, date string) ([]domain.AuditEntry, error) {
	record, err := s.GetRecord(ctx, date)
	if err != nil {
		return nil, err
	}
	return record.AuditLog, nil
}

// DeleteRecord removes the record for a date and forgets any reconciliation
// state targeting it (open session and resolved marker alike), so a deleted
// day cannot resurrect stale in-flight state and a re-created one goes
// through the workflow again.
func (s *recordService) DeleteRecord(ctx context.Context, date string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.recordRepo.FindRecordByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to load record for delete %s: %w", date, err)
	}
	if record == nil {
		return apperrors.ErrNotFound
	}
	if err := s.recordRepo.DeleteRecord(ctx, date); err != nil {
		return fmt.Errorf("failed to delete record for %s: %w", date, err)
	}
	s.reconciliationSvc.Forget(date)

	logger.Info("Daily record deleted", slog.String("date", date))
	return nil
}
