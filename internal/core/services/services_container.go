package services

import (
	portsrepo "github.com/bigborda/caixa_backend/internal/core/ports/repositories"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services from the repository
// provider. summaryGenerator may be nil, in which case summaries always use
// the deterministic fallback.
func NewServiceContainer(repos portsrepo.RepositoryProvider, summaryGenerator portssvc.SummaryGenerator) *portssvc.ServiceContainer {
	reconciliationSvc := NewReconciliationService(repos.RecordRepo, repos.StaffRepo)

	return &portssvc.ServiceContainer{
		Record:         NewRecordService(repos.RecordRepo, repos.StaffRepo, reconciliationSvc),
		Reconciliation: reconciliationSvc,
		Delivery:       NewDeliveryService(repos.RecordRepo, repos.StaffRepo, repos.ScheduleRepo),
		Staff:          NewStaffService(repos.StaffRepo),
		Schedule:       NewScheduleService(repos.ScheduleRepo),
		Summary:        NewSummaryService(repos.RecordRepo, repos.StaffRepo, summaryGenerator),
		Reporting:      NewReportingService(repos.RecordRepo),
	}
}
