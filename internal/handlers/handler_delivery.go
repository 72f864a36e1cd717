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

// deliveryHandler exposes the per-rider delivery command sheets over HTTP.
type deliveryHandler struct {
	deliveryService portssvc.DeliverySvcFacade
}

func newDeliveryHandler(ds portssvc.DeliverySvcFacade) *deliveryHandler {
	return &deliveryHandler{deliveryService: ds}
}

// registerDeliveryRoutes registers all delivery command routes.
func registerDeliveryRoutes(rg *gin.RouterGroup, deliveryService portssvc.DeliverySvcFacade) {
	h := newDeliveryHandler(deliveryService)

	commands := rg.Group("/records/:date/commands")
	{
		commands.GET("", h.getBoard)
		commands.POST("/:staffId", h.addCommand)
		commands.DELETE("/:staffId/:commandId", h.removeCommand)
	}
}

func (h *deliveryHandler) getBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	boards, err := h.deliveryService.Board(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to load delivery board", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load delivery board"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDeliveryBoardResponse(date, boards))
}

func (h *deliveryHandler) addCommand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")
	staffID := c.Param("staffId")

	var req dto.AddCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for add command request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.deliveryService.AddCommand(c.Request.Context(), date, staffID, req.Domain())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to add delivery command", slog.String("date", date), slog.String("staff_id", staffID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add delivery command"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

func (h *deliveryHandler) removeCommand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")
	staffID := c.Param("staffId")
	commandID := c.Param("commandId")

	record, err := h.deliveryService.RemoveCommand(c.Request.Context(), date, staffID, commandID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to remove delivery command", slog.String("date", date), slog.String("command_id", commandID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove delivery command"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}
