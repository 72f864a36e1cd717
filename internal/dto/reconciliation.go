package dto

import (
	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// ReconciliationSessionResponse is the prompting payload: the prior day's
// obligations awaiting a paid/unpaid decision.
type ReconciliationSessionResponse struct {
	TargetDate       string                            `json:"targetDate"`
	PriorDate        string                            `json:"priorDate"`
	PriorDisplayDate string                            `json:"priorDisplayDate"`
	Obligations      []domain.ReconciliationObligation `json:"obligations"`
	State            domain.ReconciliationState        `json:"state"`
}

// ToReconciliationSessionResponse converts a domain session.
func ToReconciliationSessionResponse(s *domain.ReconciliationSession) ReconciliationSessionResponse {
	return ReconciliationSessionResponse{
		TargetDate:       s.TargetDate,
		PriorDate:        s.PriorDate,
		PriorDisplayDate: domain.FormatDisplayDate(s.PriorDate),
		Obligations:      s.Obligations,
		State:            s.State,
	}
}

// ConfirmReconciliationRequest confirms a session outside the save path
// (the manual "check the previous day" variant). Current carries the
// operator's in-progress pendencies buffer for deduplication.
type ConfirmReconciliationRequest struct {
	AcknowledgedStaffIDs []string         `json:"acknowledgedStaffIds"`
	Current              []PendingRequest `json:"current"`
}

// ReconciliationOutcomeResponse reports the merged pendencies buffer and
// how many entries were actually added.
type ReconciliationOutcomeResponse struct {
	PriorDate  string               `json:"priorDate"`
	Pendencies []domain.PendingItem `json:"pendencies"`
	Applied    []domain.PendingItem `json:"applied"`
	AddedCount int                  `json:"addedCount"`
}

// ToReconciliationOutcomeResponse converts a domain outcome.
func ToReconciliationOutcomeResponse(o *domain.ReconciliationOutcome) ReconciliationOutcomeResponse {
	return ReconciliationOutcomeResponse{
		PriorDate:  o.PriorDate,
		Pendencies: o.Pendencies,
		Applied:    o.Applied,
		AddedCount: len(o.Applied),
	}
}
