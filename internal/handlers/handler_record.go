package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/dto"
	"github.com/bigborda/caixa_backend/internal/middleware"
)

// recordHandler handles HTTP requests related to daily closing records.
type recordHandler struct {
	recordService  portssvc.RecordSvcFacade
	summaryService portssvc.SummarySvcFacade
}

// newRecordHandler creates a new recordHandler.
func newRecordHandler(rs portssvc.RecordSvcFacade, ss portssvc.SummarySvcFacade) *recordHandler {
	return &recordHandler{
		recordService:  rs,
		summaryService: ss,
	}
}

// registerRecordRoutes registers all record-related routes.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade, summaryService portssvc.SummarySvcFacade) {
	h := newRecordHandler(recordService, summaryService)

	records := rg.Group("/records")
	{
		records.GET("", h.listRecords)
		records.GET("/:date", h.getRecord)
		records.PUT("/:date/close", h.saveClosing)
		records.DELETE("/:date", h.deleteRecord)
		records.GET("/:date/audit", h.getAuditLog)
		records.GET("/:date/summary", h.getSummary)
	}
}

func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.recordService.ListRecords(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records))
}

func (h *recordHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	record, err := h.recordService.GetRecord(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get record", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

func (h *recordHandler) saveClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	var req dto.SaveClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for save closing request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Date != date {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body date does not match URL date"})
		return
	}

	logger = logger.With(slog.String("date", date))
	logger.Info("Received request to save closing")

	record, err := h.recordService.SaveClosing(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrReconciliationPending) {
			// The save cannot proceed until the operator answers the
			// prior-day prompt; the session is exposed on a dedicated route.
			c.JSON(http.StatusConflict, gin.H{
				"error":          "Prior-day reconciliation pending",
				"reconciliation": gin.H{"required": true, "targetDate": date},
			})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save closing", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save closing"})
		return
	}

	logger.Info("Closing saved successfully", slog.Int64("version", record.Version))
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

func (h *recordHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	err := h.recordService.DeleteRecord(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logger.Error("Failed to delete record", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	logger.Info("Record deleted", slog.String("date", date))
	c.Status(http.StatusNoContent)
}

func (h *recordHandler) getAuditLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	entries, err := h.recordService.GetAuditLog(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logger.Error("Failed to get audit log", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"auditLog": entries})
}

func (h *recordHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	text, err := h.summaryService.SummaryForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logger.Error("Failed to build summary", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "summary": text})
}
