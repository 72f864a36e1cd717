package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/dto"
	"github.com/bigborda/caixa_backend/internal/middleware"
)

// reconciliationHandler exposes the prior-day reconciliation workflow over
// HTTP: inspect the prompting session, confirm it, or cancel it.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

// registerReconciliationRoutes registers all reconciliation-related routes.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	recon := rg.Group("/records/:date/reconciliation")
	{
		recon.GET("", h.getSession)
		recon.POST("", h.confirm)
		recon.DELETE("", h.cancel)
	}
}

func (h *reconciliationHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	needed, err := h.reconciliationService.NeedsReconciliation(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to check reconciliation need", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check reconciliation"})
		return
	}
	if !needed {
		c.JSON(http.StatusOK, gin.H{"required": false})
		return
	}

	session, err := h.reconciliationService.StartSession(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoPriorRecord) {
			c.JSON(http.StatusOK, gin.H{"required": false})
			return
		}
		logger.Error("Failed to start reconciliation session", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start reconciliation session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"required": true,
		"session":  dto.ToReconciliationSessionResponse(session),
	})
}

func (h *reconciliationHandler) confirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	var req dto.ConfirmReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for confirm reconciliation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	current := make([]domain.PendingItem, 0, len(req.Current))
	for _, p := range req.Current {
		current = append(current, domain.PendingItem{
			ID:            p.ID,
			Name:          p.Name,
			Amount:        p.Amount,
			ReferenceDate: p.ReferenceDate,
		})
	}

	outcome, err := h.reconciliationService.Confirm(c.Request.Context(), date, req.AcknowledgedStaffIDs, current)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoPriorRecord) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No prior record to reconcile"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to confirm reconciliation", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm reconciliation"})
		return
	}

	// In the manual workflow the merged buffer is handed back to the
	// operator's edit state, so the date is settled here rather than by a
	// save pipeline.
	h.reconciliationService.MarkResolved(date)

	logger.Info("Reconciliation confirmed",
		slog.String("date", date),
		slog.String("prior_date", outcome.PriorDate),
		slog.Int("carried", len(outcome.Applied)),
	)
	c.JSON(http.StatusOK, dto.ToReconciliationOutcomeResponse(outcome))
}

func (h *reconciliationHandler) cancel(c *gin.Context) {
	date := c.Param("date")
	h.reconciliationService.Cancel(date)
	c.Status(http.StatusNoContent)
}
