package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecomkit/prices/internal/apperrors"
	portssvc "github.com/ecomkit/prices/internal/core/ports/services"
	"github.com/ecomkit/prices/internal/dto"
	"github.com/ecomkit/prices/internal/middleware"
)

// actorHeader identifies the caller for the audit trail. The API has no
// user accounts, so a plain header with a default stands in.
const (
	actorHeader  = "X-Actor"
	defaultActor = "api"
)

// priceRecordHandler handles HTTP requests for the price catalog.
type priceRecordHandler struct {
	pricingService portssvc.PricingSvcFacade
}

// newPriceRecordHandler creates a new priceRecordHandler.
func newPriceRecordHandler(ps portssvc.PricingSvcFacade) *priceRecordHandler {
	return &priceRecordHandler{
		pricingService: ps,
	}
}

// registerPriceRecordRoutes registers the price catalog routes.
func registerPriceRecordRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPriceRecordHandler(pricingService)

	prices := rg.Group("/prices")
	{
		prices.POST("", h.createPriceRecord)
		prices.GET("", h.listPriceRecords)
		prices.GET("/:priceID", h.getPriceRecord)
		prices.PUT("/:priceID", h.updatePriceRecord)
		prices.DELETE("/:priceID", h.deletePriceRecord)
	}
}

func actorFrom(c *gin.Context) string {
	if actor := c.GetHeader(actorHeader); actor != "" {
		return actor
	}
	return defaultActor
}

func (h *priceRecordHandler) createPriceRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePriceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePriceRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := actorFrom(c)
	logger = logger.With(slog.String("actor", actor))
	logger.Info("Received request to create price record", slog.String("currency", req.Currency))

	record, err := h.pricingService.CreatePriceRecord(c.Request.Context(), req, actor)
	if err != nil {
		h.writeError(c, logger, err, "Failed to create price record")
		return
	}

	logger.Info("Price record created successfully", slog.String("price_id", record.PriceID))
	c.JSON(http.StatusCreated, dto.ToPriceRecordResponse(record))
}

func (h *priceRecordHandler) getPriceRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	priceID := c.Param("priceID")

	record, err := h.pricingService.GetPriceRecordByID(c.Request.Context(), priceID)
	if err != nil {
		h.writeError(c, logger.With(slog.String("price_id", priceID)), err, "Failed to retrieve price record")
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceRecordResponse(record))
}

func (h *priceRecordHandler) listPriceRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.pricingService.ListPriceRecords(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list price records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list price records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPriceRecordResponse(records))
}

func (h *priceRecordHandler) updatePriceRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	priceID := c.Param("priceID")

	var req dto.UpdatePriceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePriceRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := actorFrom(c)
	logger = logger.With(slog.String("price_id", priceID), slog.String("actor", actor))

	record, err := h.pricingService.UpdatePriceRecord(c.Request.Context(), priceID, req, actor)
	if err != nil {
		h.writeError(c, logger, err, "Failed to update price record")
		return
	}

	logger.Info("Price record updated successfully")
	c.JSON(http.StatusOK, dto.ToPriceRecordResponse(record))
}

func (h *priceRecordHandler) deletePriceRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	priceID := c.Param("priceID")

	if err := h.pricingService.DeletePriceRecord(c.Request.Context(), priceID); err != nil {
		h.writeError(c, logger.With(slog.String("price_id", priceID)), err, "Failed to delete price record")
		return
	}

	logger.Info("Price record deleted successfully", slog.String("price_id", priceID))
	c.Status(http.StatusNoContent)
}

// writeError maps service errors onto HTTP statuses.
func (h *priceRecordHandler) writeError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Price record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Price record not found"})
	case errors.Is(err, apperrors.ErrUnsupportedCurrency):
		logger.Warn("Unsupported currency", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCurrencyMismatch):
		logger.Warn("Currency mismatch", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
