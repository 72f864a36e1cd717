package services

import (
	"context"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// SummaryGenerator produces the shareable closing summary text for a fully
// assembled record. Implementations may call an external model; failures
// are recovered by the summary service and never block the save path.
type SummaryGenerator interface {
	GenerateSummary(ctx context.Context, record *domain.DailyRecord, staff []domain.StaffMember) (string, error)
}

// SummarySvcFacade exposes summary generation over stored records, with a
// deterministic local fallback when the generator fails or is absent.
type SummarySvcFacade interface {
	SummaryForDate(ctx context.Context, date string) (string, error)
}
