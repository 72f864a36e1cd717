package services

import (
	"context"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// ReportingSvcFacade aggregates closing records for the reports view.
type ReportingSvcFacade interface {
	// PeriodSummary aggregates totals over the inclusive [from, to] range.
	PeriodSummary(ctx context.Context, from, to string) (*domain.PeriodSummary, error)
}
