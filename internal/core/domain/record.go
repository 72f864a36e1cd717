package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySales holds the gross sales per channel for one day. Channel names
// follow the sales applications used by the restaurant.
type DailySales struct {
	IFood decimal.Decimal `json:"ifood"`
	KCMS  decimal.Decimal `json:"kcms"`
	SGV   decimal.Decimal `json:"sgv"`
}

// Total returns the gross sales across all channels.
func (s DailySales) Total() decimal.Decimal {
	return s.IFood.Add(s.KCMS).Add(s.SGV)
}

// StaffPayment is one payout owed to a staff member for the day.
type StaffPayment struct {
	StaffID       string          `json:"staffId"`
	Amount        decimal.Decimal `json:"amount"`
	DeliveryCount int             `json:"deliveryCount,omitempty"` // riders only
	IsPaid        bool            `json:"isPaid,omitempty"`
}

// DebtItem is money a customer owes the restaurant (fiado).
type DebtItem struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PendingItem is money the restaurant owes a third party: a vendor bill or
// a staff payout carried over from an earlier day.
type PendingItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	ReferenceDate string          `json:"referenceDate,omitempty"` // YYYY-MM-DD
}

// RiderLedger tracks per-ride costs for ad-hoc iFood riders. Count and
// TotalCost are derived from Rides at assembly time.
type RiderLedger struct {
	Count     int               `json:"count"`
	TotalCost decimal.Decimal   `json:"totalCost"`
	Rides     []decimal.Decimal `json:"rides,omitempty"`
}

// AuditEntry is one immutable, timestamped, attributed description of what
// changed in a save. Entries are owned exclusively by their parent record.
type AuditEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	ActorName   string    `json:"actorName"`
	Description string    `json:"description"`
}

// DailyRecord is the full financial snapshot for one calendar date. The
// date string is both identity and natural key; a record for a given date
// is unique.
type DailyRecord struct {
	Date            string         `json:"date"` // YYYY-MM-DD, immutable once created
	Sales           DailySales     `json:"sales"`
	Payments        []StaffPayment `json:"payments"`
	Debts           []DebtItem     `json:"debts"`
	PendingPayables []PendingItem  `json:"pendingPayables"`
	RiderLedger     RiderLedger    `json:"riderLedger"`
	Notes           string         `json:"notes"`
	ClosedByStaffID string         `json:"closedByStaffId"`
	AuditLog        []AuditEntry   `json:"auditLog"`

	// MotoboyCommands holds the comandas launched per rider id during the
	// day, recorded before (and kept after) the closing itself.
	MotoboyCommands map[string][]DeliveryCommand `json:"motoboyCommands,omitempty"`

	// IsClosed distinguishes a record produced by the closing flow from a
	// draft that only accumulated delivery commands so far.
	IsClosed bool `json:"isClosed"`

	// ReconciledPriorDates lists the prior dates whose unpaid obligations
	// were already carried into this record, so a confirmed reconciliation
	// is never offered again after a restart.
	ReconciledPriorDates []string `json:"reconciledPriorDates,omitempty"`

	// Version is stamped on every save. Persisted as an optimistic
	// concurrency hook; no compare-and-swap is enforced yet.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActiveStaffIDs derives the set of staff ids considered active for the day
// strictly from the persisted payments, in payment order. A staff id with no
// recorded payment does not survive a save/reload cycle.
func (r *DailyRecord) ActiveStaffIDs() []string {
	ids := make([]string, 0, len(r.Payments))
	for _, p := range r.Payments {
		ids = append(ids, p.StaffID)
	}
	return ids
}

// PaymentFor returns the payment entry for staffID, or nil when absent.
func (r *DailyRecord) PaymentFor(staffID string) *StaffPayment {
	for i := range r.Payments {
		if r.Payments[i].StaffID == staffID {
			return &r.Payments[i]
		}
	}
	return nil
}

// HasReconciledPriorDate reports whether priorDate was already reconciled
// into this record.
func (r *DailyRecord) HasReconciledPriorDate(priorDate string) bool {
	for _, d := range r.ReconciledPriorDates {
		if d == priorDate {
			return true
		}
	}
	return false
}

// TotalPayments sums all staff payouts recorded for the day.
func (r *DailyRecord) TotalPayments() decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// TotalDebts sums all customer debts recorded for the day.
func (r *DailyRecord) TotalDebts() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Debts {
		total = total.Add(d.Amount)
	}
	return total
}

// TotalPending sums all pending payables recorded for the day.
func (r *DailyRecord) TotalPending() decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.PendingPayables {
		total = total.Add(p.Amount)
	}
	return total
}
