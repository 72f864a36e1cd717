package domain

import (
	"github.com/shopspring/decimal"
)

// ReconciliationState tracks the short-lived prior-day reconciliation
// workflow. A session is transient and never persisted.
type ReconciliationState string

const (
	ReconciliationIdle      ReconciliationState = "IDLE"
	ReconciliationPrompting ReconciliationState = "PROMPTING"
	ReconciliationResolved  ReconciliationState = "RESOLVED"
)

// ReconciliationObligation is one staff payout from the prior day, offered
// for a paid/unpaid decision. Amounts are frozen while prompting.
type ReconciliationObligation struct {
	StaffID       string          `json:"staffId"`
	StaffName     string          `json:"staffName"`
	Amount        decimal.Decimal `json:"amount"`
	DeliveryCount int             `json:"deliveryCount,omitempty"`
}

// ReconciliationSession is the in-flight workflow for one target date. Only
// one session exists at a time per date being saved.
type ReconciliationSession struct {
	TargetDate   string                     `json:"targetDate"`
	PriorDate    string                     `json:"priorDate"`
	Obligations  []ReconciliationObligation `json:"obligations"`
	Acknowledged map[string]bool            `json:"acknowledged"`
	State        ReconciliationState        `json:"state"`
}

// Acknowledge marks the obligation for staffID as paid (true) or unpaid.
// Unknown ids are ignored.
func (s *ReconciliationSession) Acknowledge(staffID string, paid bool) {
	for _, o := range s.Obligations {
		if o.StaffID == staffID {
			if s.Acknowledged == nil {
				s.Acknowledged = make(map[string]bool)
			}
			s.Acknowledged[staffID] = paid
			return
		}
	}
}

// CarryForward converts every obligation that was not acknowledged as paid
// into a pending-payable entry referencing the prior date. Entry ids are
// left empty for the caller to assign.
func (s *ReconciliationSession) CarryForward() []PendingItem {
	var items []PendingItem
	for _, o := range s.Obligations {
		if s.Acknowledged[o.StaffID] {
			continue
		}
		items = append(items, PendingItem{
			Name:          o.StaffName + " (Ref. " + FormatDisplayDate(s.PriorDate) + ")",
			Amount:        o.Amount,
			ReferenceDate: s.PriorDate,
		})
	}
	return items
}

// ReconciliationOutcome is the result of confirming a session: the
// pendencies buffer after the merge and the carried entries that were
// actually applied (duplicates are skipped).
type ReconciliationOutcome struct {
	PriorDate  string        `json:"priorDate"`
	Pendencies []PendingItem `json:"pendencies"`
	Applied    []PendingItem `json:"applied"`
}

// NearestPriorDate returns the maximum date strictly below target. The
// zero-padded ISO format makes plain string comparison correct.
func NearestPriorDate(dates []string, target string) (string, bool) {
	best := ""
	for _, d := range dates {
		if d < target && d > best {
			best = d
		}
	}
	return best, best != ""
}

// MergePendencies appends additions to current, skipping any addition that
// already exists in current with the same name, reference date and amount.
// It returns the merged list and the additions that were actually applied.
// Neither input slice is mutated.
func MergePendencies(current, additions []PendingItem) (merged, applied []PendingItem) {
	merged = append([]PendingItem(nil), current...)
	for _, add := range additions {
		if containsPendency(merged, add) {
			continue
		}
		merged = append(merged, add)
		applied = append(applied, add)
	}
	return merged, applied
}

func containsPendency(items []PendingItem, p PendingItem) bool {
	for _, it := range items {
		if it.Name == p.Name && it.ReferenceDate == p.ReferenceDate && it.Amount.Equal(p.Amount) {
			return true
		}
	}
	return false
}
