package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

func TestDailySales_Total(t *testing.T) {
	sales := domain.DailySales{IFood: dec("100.50"), KCMS: dec("49.50"), SGV: dec("25")}
	assert.True(t, dec("175").Equal(sales.Total()))
}

func TestDailyRecord_ActiveStaffIDs(t *testing.T) {
	record := baseRecord()
	assert.Equal(t, []string{"s1", "s2"}, record.ActiveStaffIDs())

	record.Payments = nil
	assert.Empty(t, record.ActiveStaffIDs())
}

func TestDailyRecord_PaymentFor(t *testing.T) {
	record := baseRecord()

	p := record.PaymentFor("s1")
	assert.NotNil(t, p)
	assert.True(t, dec("40").Equal(p.Amount))

	assert.Nil(t, record.PaymentFor("missing"))
}

func TestDailyRecord_Totals(t *testing.T) {
	record := baseRecord()
	record.PendingPayables = []domain.PendingItem{
		{Name: "Fornecedor", Amount: dec("80")},
		{Name: "Maria (Ref. 09/01/2024)", Amount: dec("20"), ReferenceDate: "2024-01-09"},
	}

	assert.True(t, dec("100").Equal(record.TotalPayments()))
	assert.True(t, dec("15").Equal(record.TotalDebts()))
	assert.True(t, dec("100").Equal(record.TotalPending()))
}

func TestDailyRecord_HasReconciledPriorDate(t *testing.T) {
	record := baseRecord()
	record.ReconciledPriorDates = []string{"2024-01-08"}

	assert.True(t, record.HasReconciledPriorDate("2024-01-08"))
	assert.False(t, record.HasReconciledPriorDate("2024-01-09"))
}

func TestStaffDirectory_NameOf(t *testing.T) {
	dir := domain.NewStaffDirectory([]domain.StaffMember{
		{StaffID: "s1", Name: "João"},
	})

	assert.Equal(t, "João", dir.NameOf("s1", "Desconhecido"))
	assert.Equal(t, "Desconhecido", dir.NameOf("s9", "Desconhecido"))
}

func TestWeeklySchedule_Normalized(t *testing.T) {
	partial := domain.WeeklySchedule{
		domain.Monday: {"s1", "s2"},
		domain.Friday: {},
	}

	full := partial.Normalized()

	assert.Len(t, full, len(domain.WeekDays))
	assert.Equal(t, []string{"s1", "s2"}, full[domain.Monday])
	assert.Empty(t, full[domain.Sunday])

	// Normalized copies, it does not alias the input slices.
	full[domain.Monday][0] = "changed"
	assert.Equal(t, "s1", partial[domain.Monday][0])
}
