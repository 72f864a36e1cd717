package dto

import (
	"github.com/bigborda/caixa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesRequest carries the three sales channels of a closing draft.
type SalesRequest struct {
	IFood decimal.Decimal `json:"ifood"`
	KCMS  decimal.Decimal `json:"kcms"`
	SGV   decimal.Decimal `json:"sgv"`
}

// PaymentRequest is one staff payout line in a closing draft. Entries with
// amount <= 0 are accepted here and dropped at assembly time.
type PaymentRequest struct {
	StaffID       string          `json:"staffId" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	DeliveryCount int             `json:"deliveryCount"`
}

// DebtRequest is one customer debt (fiado) line in a closing draft.
type DebtRequest struct {
	ID     string          `json:"id"`
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PendingRequest is one pending payable line in a closing draft.
type PendingRequest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	ReferenceDate string          `json:"referenceDate"`
}

// ReconciliationResolution carries the operator's answer to the prior-day
// reconciliation prompt, inline with a save.
type ReconciliationResolution struct {
	Confirm              bool     `json:"confirm"`
	AcknowledgedStaffIDs []string `json:"acknowledgedStaffIds"`
}

// SaveClosingRequest is the full closing draft submitted on save.
type SaveClosingRequest struct {
	Date            string                    `json:"date" binding:"required,isodate"`
	Sales           SalesRequest              `json:"sales"`
	Payments        []PaymentRequest          `json:"payments"`
	Debts           []DebtRequest             `json:"debts"`
	PendingPayables []PendingRequest          `json:"pendingPayables"`
	Rides           []decimal.Decimal         `json:"rides"`
	Notes           string                    `json:"notes"`
	ClosedByStaffID string                    `json:"closedByStaffId"`
	Reconciliation  *ReconciliationResolution `json:"reconciliation,omitempty"`
}

// DomainDebts converts the draft debts, preserving provided ids.
func (r SaveClosingRequest) DomainDebts() []domain.DebtItem {
	debts := make([]domain.DebtItem, 0, len(r.Debts))
	for _, d := range r.Debts {
		debts = append(debts, domain.DebtItem{ID: d.ID, Name: d.Name, Amount: d.Amount})
	}
	return debts
}

// DomainPendencies converts the draft pendencies, preserving provided ids.
func (r SaveClosingRequest) DomainPendencies() []domain.PendingItem {
	items := make([]domain.PendingItem, 0, len(r.PendingPayables))
	for _, p := range r.PendingPayables {
		items = append(items, domain.PendingItem{
			ID:            p.ID,
			Name:          p.Name,
			Amount:        p.Amount,
			ReferenceDate: p.ReferenceDate,
		})
	}
	return items
}

// RecordResponse is the API shape of a daily closing record.
type RecordResponse struct {
	Date            string                `json:"date"`
	DisplayDate     string                `json:"displayDate"`
	Sales           SalesRequest          `json:"sales"`
	TotalSales      decimal.Decimal       `json:"totalSales"`
	Payments        []domain.StaffPayment `json:"payments"`
	TotalPayments   decimal.Decimal       `json:"totalPayments"`
	Debts           []domain.DebtItem     `json:"debts"`
	PendingPayables []domain.PendingItem  `json:"pendingPayables"`
	RiderLedger     domain.RiderLedger    `json:"riderLedger"`
	Notes           string                `json:"notes"`
	ClosedByStaffID string                `json:"closedByStaffId"`
	AuditLog        []domain.AuditEntry   `json:"auditLog"`

	MotoboyCommands map[string][]domain.DeliveryCommand `json:"motoboyCommands,omitempty"`
	IsClosed        bool                                `json:"isClosed"`

	Version   int64  `json:"version"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToRecordResponse converts a domain record to its API shape.
func ToRecordResponse(r *domain.DailyRecord) RecordResponse {
	return RecordResponse{
		Date:            r.Date,
		DisplayDate:     domain.FormatDisplayDate(r.Date),
		Sales:           SalesRequest{IFood: r.Sales.IFood, KCMS: r.Sales.KCMS, SGV: r.Sales.SGV},
		TotalSales:      r.Sales.Total(),
		Payments:        r.Payments,
		TotalPayments:   r.TotalPayments(),
		Debts:           r.Debts,
		PendingPayables: r.PendingPayables,
		RiderLedger:     r.RiderLedger,
		Notes:           r.Notes,
		ClosedByStaffID: r.ClosedByStaffID,
		AuditLog:        r.AuditLog,
		MotoboyCommands: r.MotoboyCommands,
		IsClosed:        r.IsClosed,
		Version:         r.Version,
		CreatedAt:       r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       r.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ListRecordsResponse wraps the record listing.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
}

// ToListRecordsResponse converts a slice of domain records.
func ToListRecordsResponse(records []domain.DailyRecord) ListRecordsResponse {
	out := make([]RecordResponse, len(records))
	for i := range records {
		out[i] = ToRecordResponse(&records[i])
	}
	return ListRecordsResponse{Records: out}
}
