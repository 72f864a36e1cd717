package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/bigborda/caixa_backend/internal/core/domain"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/utils"
)

const defaultModel = "gemini-3-flash-preview"

const systemInstruction = "Você é um assistente financeiro do 'Big Borda Gourmet'. " +
	"Gere resumos para WhatsApp claros e profissionais. " +
	"Você DEVE obrigatoriamente mostrar o faturamento detalhado por aplicativo (iFood, KCMS e SGV). " +
	"Use 'PENDÊNCIAS' para o que o restaurante deve pagar (equipe/fornecedores de outros dias) " +
	"e 'FIADO' para o que tem a receber de clientes. " +
	"Regra importante: O saldo final deve ser exatamente o total das vendas brutas."

// Summarizer generates the shareable closing summary with the Gemini API.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a Summarizer from an already configured client.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client, model: defaultModel}
}

var _ portssvc.SummaryGenerator = (*Summarizer)(nil)

// GenerateSummary implements portssvc.SummaryGenerator.
func (s *Summarizer) GenerateSummary(ctx context.Context, record *domain.DailyRecord, staff []domain.StaffMember) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model,
		genai.Text(buildPrompt(record, staff)),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned an empty summary for %s", record.Date)
	}
	return text, nil
}

// buildPrompt lays out the whole closing as plain text so the model only
// formats, never computes.
func buildPrompt(record *domain.DailyRecord, staff []domain.StaffMember) string {
	dir := domain.NewStaffDirectory(staff)
	var b strings.Builder

	attendant := "Não informado"
	if record.ClosedByStaffID != "" {
		attendant = dir.NameOf(record.ClosedByStaffID, "Não identificado")
	}

	b.WriteString("Gere um relatório de fechamento detalhando os aplicativos:\n")
	fmt.Fprintf(&b, "DATA: %s\n", domain.FormatDisplayDate(record.Date))
	fmt.Fprintf(&b, "RESPONSÁVEL: %s\n\n", attendant)

	b.WriteString("DETALHAMENTO DE VENDAS:\n")
	fmt.Fprintf(&b, "- iFood: %s\n", utils.FormatBRL(record.Sales.IFood))
	fmt.Fprintf(&b, "- KCMS: %s\n", utils.FormatBRL(record.Sales.KCMS))
	fmt.Fprintf(&b, "- SGV: %s\n", utils.FormatBRL(record.Sales.SGV))
	fmt.Fprintf(&b, "TOTAL VENDAS: %s\n\n", utils.FormatBRL(record.Sales.Total()))

	b.WriteString("INFORMAÇÕES DE MOTOBOYS IFOOD:\n")
	fmt.Fprintf(&b, "- Corridas (%d entregas): %s\n\n", record.RiderLedger.Count, utils.FormatBRL(record.RiderLedger.TotalCost))

	b.WriteString("VALORES A PAGAR (EQUIPE HOJE):\n")
	for _, p := range record.Payments {
		line := "- " + dir.NameOf(p.StaffID, "Desconhecido")
		if p.DeliveryCount > 0 {
			line += fmt.Sprintf(" (%d entregas)", p.DeliveryCount)
		}
		if member, ok := dir[p.StaffID]; ok && member.PixKey != "" {
			line += " [Pix: " + member.PixKey + "]"
		}
		fmt.Fprintf(&b, "%s: %s\n", line, utils.FormatBRL(p.Amount))
	}
	fmt.Fprintf(&b, "Total Equipe: %s\n\n", utils.FormatBRL(record.TotalPayments()))

	b.WriteString("PENDÊNCIAS (DÍVIDAS DE OUTROS DIAS/FORNECEDORES):\n")
	if len(record.PendingPayables) == 0 {
		b.WriteString("Nenhuma\n")
	}
	for _, p := range record.PendingPayables {
		fmt.Fprintf(&b, "- %s (Ref: %s): %s\n", p.Name, p.ReferenceDate, utils.FormatBRL(p.Amount))
	}
	b.WriteString("\nFIADO (A RECEBER):\n")
	if len(record.Debts) == 0 {
		b.WriteString("Nenhum\n")
	}
	for _, d := range record.Debts {
		fmt.Fprintf(&b, "- %s: %s\n", d.Name, utils.FormatBRL(d.Amount))
	}

	fmt.Fprintf(&b, "\nSALDO FINAL EM CAIXA: %s\n\n", utils.FormatBRL(record.Sales.Total()))

	notes := record.Notes
	if notes == "" {
		notes = "Nenhuma"
	}
	fmt.Fprintf(&b, "OBSERVAÇÕES: %s\n\n", notes)

	b.WriteString("Formate com emojis e certifique-se de listar as vendas de iFood, KCMS e SGV separadamente no texto.")
	return b.String()
}
