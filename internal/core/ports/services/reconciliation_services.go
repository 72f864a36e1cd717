package services

import (
	"context"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// ReconciliationSvcFacade drives the prior-day reconciliation workflow:
// locating the nearest earlier closed record and migrating its unpaid staff
// obligations into the current day's pending payables.
type ReconciliationSvcFacade interface {
	// NeedsReconciliation reports whether saving targetDate must first go
	// through a reconciliation session: the date has no stored record, a
	// strictly earlier record exists, and no session for the date was
	// resolved in this process yet.
	NeedsReconciliation(ctx context.Context, targetDate string) (bool, error)

	// StartSession opens (or returns the already open) prompting session
	// for targetDate. Returns apperrors.ErrNoPriorRecord when no earlier
	// record exists.
	StartSession(ctx context.Context, targetDate string) (*domain.ReconciliationSession, error)

	// Confirm computes the session outcome: obligations whose staff ids
	// are not in acknowledgedStaffIDs are carried into the pendencies
	// buffer, with duplicates by (name, reference date, amount) skipped.
	// current is the caller's in-progress pendencies buffer; it is not
	// mutated. The session stays open and the date stays unresolved until
	// MarkResolved, so a save that fails after confirming can retry the
	// confirmation without losing the carried obligations.
	Confirm(ctx context.Context, targetDate string, acknowledgedStaffIDs []string, current []domain.PendingItem) (*domain.ReconciliationOutcome, error)

	// MarkResolved records that the confirmed outcome for targetDate was
	// applied and closes the session. Callers invoke it only after the
	// save carrying the outcome has been persisted.
	MarkResolved(targetDate string)

	// Cancel discards the session for targetDate, if any. The pending save
	// is aborted; no record changes occur.
	Cancel(targetDate string)

	// Forget drops both the session and the resolved marker for
	// targetDate, so a deleted and later re-created date goes through the
	// workflow again.
	Forget(targetDate string)
}
