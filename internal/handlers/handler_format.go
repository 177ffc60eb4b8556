package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ecomkit/prices/internal/apperrors"
	portssvc "github.com/ecomkit/prices/internal/core/ports/services"
	"github.com/ecomkit/prices/internal/dto"
	"github.com/ecomkit/prices/internal/middleware"
)

// formatHandler handles HTTP requests for currency formatting.
type formatHandler struct {
	formatService portssvc.FormatterSvcFacade
}

// newFormatHandler creates a new formatHandler.
func newFormatHandler(fs portssvc.FormatterSvcFacade) *formatHandler {
	return &formatHandler{
		formatService: fs,
	}
}

// registerFormatRoutes registers the formatting routes. The extra
// middleware (rate limiting) applies to this group only.
func registerFormatRoutes(rg *gin.RouterGroup, formatService portssvc.FormatterSvcFacade, extra ...gin.HandlerFunc) {
	h := newFormatHandler(formatService)

	format := rg.Group("/format", extra...)
	{
		format.GET("", h.formatPrice)
	}
}

// formatPrice renders a monetary value as localized text.
//
// Unsupported currency codes map to 422 so callers can distinguish "we
// do not know this currency" from a malformed request.
func (h *formatHandler) formatPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.FormatQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for FormatPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	value, err := decimal.NewFromString(query.Value)
	if err != nil {
		logger.Warn("Non-numeric value for FormatPrice", slog.String("value", query.Value))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Value must be a decimal number"})
		return
	}

	formatted, err := h.formatService.FormatPrice(value, query.Currency, dto.FormatOptions{
		Locale:    query.Locale,
		HTML:      query.HTML,
		Normalize: query.Normalize,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			logger.Warn("Unsupported currency requested", slog.String("currency", query.Currency))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unsupported currency: " + query.Currency})
			return
		}
		logger.Error("Failed to format price", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to format price"})
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{
		Formatted: formatted,
		Currency:  query.Currency,
	})
}
