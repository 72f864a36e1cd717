package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/middleware"
	"github.com/bigborda/caixa_backend/internal/utils"
)

// summaryService produces the shareable closing summary. Generation is
// decoupled from persistence: a generator failure falls back to the
// deterministic local text and never reaches the save path.
type summaryService struct {
	recordRepo portsrepo.RecordReader
	staffRepo  portsrepo.StaffReader
	generator  portssvc.SummaryGenerator // nil means fallback only
}

// NewSummaryService creates a new SummaryService. generator may be nil.
func NewSummaryService(recordRepo portsrepo.RecordReader, staffRepo portsrepo.StaffReader, generator portssvc.SummaryGenerator) portssvc.SummarySvcFacade {
	return &summaryService{
		recordRepo: recordRepo,
		staffRepo:  staffRepo,
		generator:  generator,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// SummaryForDate implements portssvc.SummarySvcFacade.
func (s *summaryService) SummaryForDate(ctx context.Context, date string) (string, error) {
	record, err := s.recordRepo.FindRecordByDate(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to load record for summary %s: %w", date, err)
	}
	if record == nil {
		return "", fmt.Errorf("no record for %s: %w", date, apperrors.ErrNotFound)
	}

	staff, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load staff for summary: %w", err)
	}

	if s.generator != nil {
		text, genErr := s.generator.GenerateSummary(ctx, record, staff)
		if genErr == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if genErr != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Summary generator failed, using fallback",
				slog.String("date", date),
				slog.String("error", genErr.Error()),
			)
		}
	}
	return StaticSummary(record, staff), nil
}

// StaticSummary builds the deterministic plain-text closing summary from
// the record fields, the text shared on WhatsApp when the AI producer is
// unavailable.
func StaticSummary(record *domain.DailyRecord, staff []domain.StaffMember) string {
	dir := domain.NewStaffDirectory(staff)
	var b strings.Builder

	attendant := "Não informado"
	if record.ClosedByStaffID != "" {
		attendant = dir.NameOf(record.ClosedByStaffID, "Não identificado")
	}

	fmt.Fprintf(&b, "📊 *Fechamento de Caixa - %s*\n", domain.FormatDisplayDate(record.Date))
	fmt.Fprintf(&b, "👤 *Responsável:* %s\n\n", attendant)

	fmt.Fprintf(&b, "💰 *VENDAS TOTAIS: %s*\n", utils.FormatBRL(record.Sales.Total()))
	fmt.Fprintf(&b, "🔸 *iFood:* %s\n", utils.FormatBRL(record.Sales.IFood))
	fmt.Fprintf(&b, "🔸 *KCMS:* %s\n", utils.FormatBRL(record.Sales.KCMS))
	fmt.Fprintf(&b, "🔸 *SGV:* %s\n\n", utils.FormatBRL(record.Sales.SGV))

	if record.RiderLedger.TotalCost.IsPositive() {
		fmt.Fprintf(&b, "🏍️ *MOTOBOY IFOOD (INFO): %s*\n", utils.FormatBRL(record.RiderLedger.TotalCost))
		fmt.Fprintf(&b, "▪️ %d entregas realizadas.\n\n", record.RiderLedger.Count)
	}

	fmt.Fprintf(&b, "⏳ *VALORES A PAGAR (EQUIPE): %s*\n", utils.FormatBRL(record.TotalPayments()))
	if len(record.Payments) == 0 {
		b.WriteString("▪️ Nenhum valor de equipe lançado.\n")
	}
	for _, p := range record.Payments {
		name := dir.NameOf(p.StaffID, "Desconhecido")
		line := "▪️ " + name
		if p.DeliveryCount > 0 {
			line += fmt.Sprintf(" [%d entregas]", p.DeliveryCount)
		}
		if member, ok := dir[p.StaffID]; ok && member.PixKey != "" {
			line += " (Pix: " + member.PixKey + ")"
		}
		fmt.Fprintf(&b, "%s: %s\n", line, utils.FormatBRL(p.Amount))
	}
	b.WriteString("\n")

	if record.TotalPending().IsPositive() {
		fmt.Fprintf(&b, "⚠️ *PENDÊNCIAS (A PAGAR): %s*\n", utils.FormatBRL(record.TotalPending()))
		for _, p := range record.PendingPayables {
			line := "▪️ " + p.Name
			if p.ReferenceDate != "" {
				line += " [Ref: " + domain.FormatDisplayDate(p.ReferenceDate) + "]"
			}
			fmt.Fprintf(&b, "%s: %s\n", line, utils.FormatBRL(p.Amount))
		}
		b.WriteString("\n")
	}

	if record.TotalDebts().IsPositive() {
		fmt.Fprintf(&b, "📒 *FIADO (A RECEBER): %s*\n", utils.FormatBRL(record.TotalDebts()))
		for _, d := range record.Debts {
			fmt.Fprintf(&b, "▪️ %s: %s\n", d.Name, utils.FormatBRL(d.Amount))
		}
		b.WriteString("\n")
	}

	// The final balance is the gross sales total; rider costs and
	// pendencies are informational only.
	fmt.Fprintf(&b, "✅ *SALDO FINAL EM CAIXA: %s*\n", utils.FormatBRL(record.Sales.Total()))
	b.WriteString("_(Total bruto das vendas do dia)_\n")

	if record.Notes != "" {
		fmt.Fprintf(&b, "\n📝 *Observações:* %s", record.Notes)
	}
	return b.String()
}
