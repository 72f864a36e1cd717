package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
)

type reportingService struct {
	recordRepo portsrepo.RecordReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(recordRepo portsrepo.RecordReader) portssvc.ReportingSvcFacade {
	return &reportingService{recordRepo: recordRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// PeriodSummary aggregates all stored records with from <= date <= to.
func (s *reportingService) PeriodSummary(ctx context.Context, from, to string) (*domain.PeriodSummary, error) {
	if !domain.ValidDate(from) || !domain.ValidDate(to) {
		return nil, fmt.Errorf("%w: period bounds must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if from > to {
		return nil, fmt.Errorf("%w: period start after end", apperrors.ErrValidation)
	}

	records, err := s.recordRepo.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for period summary: %w", err)
	}

	summary := &domain.PeriodSummary{
		From:           from,
		To:             to,
		TotalSales:     decimal.Zero,
		TotalPayments:  decimal.Zero,
		TotalDebts:     decimal.Zero,
		TotalPending:   decimal.Zero,
		TotalRiderCost: decimal.Zero,
	}
	for i := range records {
		r := &records[i]
		if r.Date < from || r.Date > to {
			continue
		}
		summary.RecordCount++
		summary.RideCount += r.RiderLedger.Count
		summary.Sales.IFood = summary.Sales.IFood.Add(r.Sales.IFood)
		summary.Sales.KCMS = summary.Sales.KCMS.Add(r.Sales.KCMS)
		summary.Sales.SGV = summary.Sales.SGV.Add(r.Sales.SGV)
		summary.TotalSales = summary.TotalSales.Add(r.Sales.Total())
		summary.TotalPayments = summary.TotalPayments.Add(r.TotalPayments())
		summary.TotalDebts = summary.TotalDebts.Add(r.TotalDebts())
		summary.TotalPending = summary.TotalPending.Add(r.TotalPending())
		summary.TotalRiderCost = summary.TotalRiderCost.Add(r.RiderLedger.TotalCost)
	}
	return summary, nil
}
