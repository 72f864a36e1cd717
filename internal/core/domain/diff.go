package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bigborda/caixa_backend/internal/utils"
)

// ChangeKind discriminates the typed field-level changes a diff can carry.
type ChangeKind string

const (
	ChangeSales          ChangeKind = "SALES"
	ChangePaymentAdded   ChangeKind = "PAYMENT_ADDED"
	ChangePaymentUpdated ChangeKind = "PAYMENT_UPDATED"
	ChangePaymentRemoved ChangeKind = "PAYMENT_REMOVED"
	ChangeDebtCount      ChangeKind = "DEBT_COUNT"
	ChangePendingCount   ChangeKind = "PENDING_COUNT"
	ChangeNotes          ChangeKind = "NOTES"
)

// FieldChange is one field-level difference between two versions of a
// record. Only the fields relevant to its Kind are populated.
type FieldChange struct {
	Kind    ChangeKind
	Label   string // sales channel or list label
	StaffID string // payment changes

	OldAmount decimal.Decimal
	NewAmount decimal.Decimal

	OldDeliveryCount int
	NewDeliveryCount int

	OldCount int // list count changes
	NewCount int
}

// RecordDiff is the ordered list of changes between two record versions.
// Order is deterministic: sales, payment additions/changes/removals in list
// iteration order, debts, pendencies, notes.
type RecordDiff []FieldChange

const (
	// InitialCloseDescription is the audit description of a record's first
	// save. Entry 0 of every audit log carries it.
	InitialCloseDescription = "Fechamento inicial"

	// UnspecifiedChangeDescription guards against an audit entry with an
	// empty description when a save produced no detectable differences.
	UnspecifiedChangeDescription = "Alteração não especificada"

	debtsLabel   = "Fiados"
	pendingLabel = "Pendências"
)

// DiffRecords compares two snapshots of the same date's record and returns
// the typed change list. prev must not be nil: a first save has no diff and
// gets the initial-close description instead.
//
// Debts and pendencies are compared by count only; content changes within
// an unchanged-count list are not detected. Notes equality is reported as a
// marker without the text itself, so free text never leaks into the audit
// summary.
func DiffRecords(prev, next *DailyRecord) RecordDiff {
	var diff RecordDiff

	salesChannels := []struct {
		label    string
		old, new decimal.Decimal
	}{
		{"iFood", prev.Sales.IFood, next.Sales.IFood},
		{"KCMS", prev.Sales.KCMS, next.Sales.KCMS},
		{"SGV", prev.Sales.SGV, next.Sales.SGV},
	}
	for _, ch := range salesChannels {
		if !ch.old.Equal(ch.new) {
			diff = append(diff, FieldChange{
				Kind:      ChangeSales,
				Label:     ch.label,
				OldAmount: ch.old,
				NewAmount: ch.new,
			})
		}
	}

	var additions, updates RecordDiff
	for _, p := range next.Payments {
		old := prev.PaymentFor(p.StaffID)
		if old == nil {
			additions = append(additions, FieldChange{
				Kind:             ChangePaymentAdded,
				StaffID:          p.StaffID,
				NewAmount:        p.Amount,
				NewDeliveryCount: p.DeliveryCount,
			})
			continue
		}
		if !old.Amount.Equal(p.Amount) || old.DeliveryCount != p.DeliveryCount {
			updates = append(updates, FieldChange{
				Kind:             ChangePaymentUpdated,
				StaffID:          p.StaffID,
				OldAmount:        old.Amount,
				NewAmount:        p.Amount,
				OldDeliveryCount: old.DeliveryCount,
				NewDeliveryCount: p.DeliveryCount,
			})
		}
	}
	diff = append(diff, additions...)
	diff = append(diff, updates...)
	for _, p := range prev.Payments {
		if next.PaymentFor(p.StaffID) == nil {
			diff = append(diff, FieldChange{
				Kind:             ChangePaymentRemoved,
				StaffID:          p.StaffID,
				OldAmount:        p.Amount,
				OldDeliveryCount: p.DeliveryCount,
			})
		}
	}

	if len(prev.Debts) != len(next.Debts) {
		diff = append(diff, FieldChange{
			Kind:     ChangeDebtCount,
			Label:    debtsLabel,
			OldCount: len(prev.Debts),
			NewCount: len(next.Debts),
		})
	}
	if len(prev.PendingPayables) != len(next.PendingPayables) {
		diff = append(diff, FieldChange{
			Kind:     ChangePendingCount,
			Label:    pendingLabel,
			OldCount: len(prev.PendingPayables),
			NewCount: len(next.PendingPayables),
		})
	}

	if prev.Notes != next.Notes {
		diff = append(diff, FieldChange{Kind: ChangeNotes})
	}

	return diff
}

// Render turns the typed diff into the human-readable lines appended to the
// audit trail. staffName resolves payment staff ids to display names; a nil
// resolver falls back to the raw id. An empty diff renders as the single
// unspecified-change line.
func (d RecordDiff) Render(staffName func(staffID string) string) []string {
	if len(d) == 0 {
		return []string{UnspecifiedChangeDescription}
	}
	if staffName == nil {
		staffName = func(id string) string { return id }
	}

	lines := make([]string, 0, len(d))
	for _, c := range d {
		switch c.Kind {
		case ChangeSales:
			lines = append(lines, fmt.Sprintf("%s: %s → %s", c.Label, utils.FormatBRL(c.OldAmount), utils.FormatBRL(c.NewAmount)))
		case ChangePaymentAdded:
			lines = append(lines, fmt.Sprintf("Pagamento adicionado: %s (%s)%s",
				staffName(c.StaffID), utils.FormatBRL(c.NewAmount), deliverySuffix(c.NewDeliveryCount)))
		case ChangePaymentUpdated:
			line := fmt.Sprintf("Pagamento alterado: %s (%s → %s)",
				staffName(c.StaffID), utils.FormatBRL(c.OldAmount), utils.FormatBRL(c.NewAmount))
			if c.OldDeliveryCount != c.NewDeliveryCount {
				line += fmt.Sprintf(" [entregas %d → %d]", c.OldDeliveryCount, c.NewDeliveryCount)
			}
			lines = append(lines, line)
		case ChangePaymentRemoved:
			lines = append(lines, fmt.Sprintf("Pagamento removido: %s (%s)",
				staffName(c.StaffID), utils.FormatBRL(c.OldAmount)))
		case ChangeDebtCount, ChangePendingCount:
			lines = append(lines, fmt.Sprintf("%s (%d → %d)", c.Label, c.OldCount, c.NewCount))
		case ChangeNotes:
			lines = append(lines, "Observações alteradas")
		}
	}
	return lines
}

func deliverySuffix(count int) string {
	if count <= 0 {
		return ""
	}
	return fmt.Sprintf(" [%d entregas]", count)
}
