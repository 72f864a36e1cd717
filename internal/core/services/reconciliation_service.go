package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/middleware"
)

// reconciliationService holds the short-lived prior-day reconciliation
// sessions. Sessions and the resolved-date set live only in process memory;
// durable protection against double carry-forward comes from the persisted
// ReconciledPriorDates marker and the pendency deduplication in Confirm.
type reconciliationService struct {
	recordRepo portsrepo.RecordReader
	staffRepo  portsrepo.StaffReader

	mu       sync.Mutex
	sessions map[string]*domain.ReconciliationSession // keyed by target date
	resolved map[string]bool                          // target dates resolved this run
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(recordRepo portsrepo.RecordReader, staffRepo portsrepo.StaffReader) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		recordRepo: recordRepo,
		staffRepo:  staffRepo,
		sessions:   make(map[string]*domain.ReconciliationSession),
		resolved:   make(map[string]bool),
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// NeedsReconciliation implements portssvc.ReconciliationSvcFacade.
func (s *reconciliationService) NeedsReconciliation(ctx context.Context, targetDate string) (bool, error) {
	s.mu.Lock()
	done := s.resolved[targetDate]
	s.mu.Unlock()
	if done {
		return false, nil
	}

	existing, err := s.recordRepo.FindRecordByDate(ctx, targetDate)
	if err != nil {
		return false, fmt.Errorf("failed to check record for %s: %w", targetDate, err)
	}
	if existing != nil && existing.IsClosed {
		// Only a day's first closing goes through the workflow. A draft
		// holding delivery commands does not count as closed.
		return false, nil
	}

	_, found, err := s.nearestPrior(ctx, targetDate)
	if err != nil {
		return false, err
	}
	return found, nil
}

// StartSession implements portssvc.ReconciliationSvcFacade.
func (s *reconciliationService) StartSession(ctx context.Context, targetDate string) (*domain.ReconciliationSession, error) {
	s.mu.Lock()
	if session, ok := s.sessions[targetDate]; ok {
		s.mu.Unlock()
		return session, nil
	}
	s.mu.Unlock()

	prior, found, err := s.nearestPrior(ctx, targetDate)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrNoPriorRecord
	}

	staff, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff directory: %w", err)
	}
	dir := domain.NewStaffDirectory(staff)

	obligations := make([]domain.ReconciliationObligation, 0, len(prior.Payments))
	for _, p := range prior.Payments {
		obligations = append(obligations, domain.ReconciliationObligation{
			StaffID:       p.StaffID,
			StaffName:     dir.NameOf(p.StaffID, p.StaffID),
			Amount:        p.Amount,
			DeliveryCount: p.DeliveryCount,
		})
	}

	session := &domain.ReconciliationSession{
		TargetDate:   targetDate,
		PriorDate:    prior.Date,
		Obligations:  obligations,
		Acknowledged: make(map[string]bool),
		State:        domain.ReconciliationPrompting,
	}

	s.mu.Lock()
	// A concurrent start for the same date keeps the first session.
	if existing, ok := s.sessions[targetDate]; ok {
		session = existing
	} else {
		s.sessions[targetDate] = session
	}
	s.mu.Unlock()

	middleware.GetLoggerFromCtx(ctx).Info("Reconciliation session opened",
		slog.String("target_date", targetDate),
		slog.String("prior_date", session.PriorDate),
		slog.Int("obligations", len(session.Obligations)),
	)
	return session, nil
}

// Confirm implements portssvc.ReconciliationSvcFacade. A session is opened
// implicitly when none exists yet, so the manual workflow can confirm in a
// single call. The session survives until MarkResolved: a save that fails
// after confirming re-runs the carry-forward on retry instead of losing it.
func (s *reconciliationService) Confirm(ctx context.Context, targetDate string, acknowledgedStaffIDs []string, current []domain.PendingItem) (*domain.ReconciliationOutcome, error) {
	session, err := s.StartSession(ctx, targetDate)
	if err != nil {
		return nil, err
	}

	for _, id := range acknowledgedStaffIDs {
		session.Acknowledge(id, true)
	}

	carried := session.CarryForward()
	for i := range carried {
		carried[i].ID = uuid.NewString()
	}
	merged, applied := domain.MergePendencies(current, carried)

	middleware.GetLoggerFromCtx(ctx).Info("Reconciliation confirmed",
		slog.String("target_date", targetDate),
		slog.String("prior_date", session.PriorDate),
		slog.Int("carried", len(applied)),
		slog.Int("skipped_duplicates", len(carried)-len(applied)),
	)
	return &domain.ReconciliationOutcome{
		PriorDate:  session.PriorDate,
		Pendencies: merged,
		Applied:    applied,
	}, nil
}

// MarkResolved implements portssvc.ReconciliationSvcFacade.
func (s *reconciliationService) MarkResolved(targetDate string) {
	s.mu.Lock()
	if session, ok := s.sessions[targetDate]; ok {
		session.State = domain.ReconciliationResolved
	}
	s.resolved[targetDate] = true
	delete(s.sessions, targetDate)
	s.mu.Unlock()
}

// Cancel implements portssvc.ReconciliationSvcFacade. The resolved marker
// is left untouched: cancelling only discards the in-flight session.
func (s *reconciliationService) Cancel(targetDate string) {
	s.mu.Lock()
	delete(s.sessions, targetDate)
	s.mu.Unlock()
}

// Forget implements portssvc.ReconciliationSvcFacade. Used when the date's
// record is deleted, so a re-created date prompts again.
func (s *reconciliationService) Forget(targetDate string) {
	s.mu.Lock()
	delete(s.sessions, targetDate)
	delete(s.resolved, targetDate)
	s.mu.Unlock()
}

// nearestPrior finds the closed record with the maximum date strictly
// before targetDate. Drafts carry no settled payouts and are skipped.
func (s *reconciliationService) nearestPrior(ctx context.Context, targetDate string) (*domain.DailyRecord, bool, error) {
	records, err := s.recordRepo.ListRecords(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list records for prior lookup: %w", err)
	}
	dates := make([]string, 0, len(records))
	for _, r := range records {
		if r.IsClosed {
			dates = append(dates, r.Date)
		}
	}
	priorDate, found := domain.NearestPriorDate(dates, targetDate)
	if !found {
		return nil, false, nil
	}
	for i := range records {
		if records[i].Date == priorDate {
			return &records[i], true, nil
		}
	}
	return nil, false, nil
}
