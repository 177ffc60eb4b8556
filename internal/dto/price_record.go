package dto

import (
	"time"

	"github.com/ecomkit/prices/internal/core/domain"
	"github.com/ecomkit/prices/pkg/money"
)

// CreatePriceRecordRequest defines the data needed to create a price record.
// Net and gross are decimal text; they are parsed into the record's fixed
// currency by the service.
type CreatePriceRecordRequest struct {
	Description string `json:"description" binding:"required"`
	Currency    string `json:"currency" binding:"required,len=3,uppercase,currencycode"`
	Net         string `json:"net" binding:"required"`
	Gross       string `json:"gross" binding:"required"`
}

// UpdatePriceRecordRequest defines a partial update. Nil fields are left
// unchanged; amount fields go through form-level change detection so a
// resubmission of the stored value is not treated as an update.
type UpdatePriceRecordRequest struct {
	Description *string `json:"description"`
	Net         *string `json:"net"`
	Gross       *string `json:"gross"`
}

// PriceRecordResponse defines the data returned for a price record.
type PriceRecordResponse struct {
	PriceID       string    `json:"priceID"`
	Description   string    `json:"description"`
	Currency      string    `json:"currency"`
	Net           string    `json:"net,omitempty"`
	Gross         string    `json:"gross,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToPriceRecordResponse converts a domain.PriceRecord to its response DTO.
// Amounts are rendered at the currency's canonical fraction digits.
func ToPriceRecordResponse(rec *domain.PriceRecord) PriceRecordResponse {
	resp := PriceRecordResponse{
		PriceID:       rec.PriceID,
		Description:   rec.Description,
		Currency:      rec.Currency,
		CreatedAt:     rec.CreatedAt,
		CreatedBy:     rec.CreatedBy,
		LastUpdatedAt: rec.LastUpdatedAt,
		LastUpdatedBy: rec.LastUpdatedBy,
	}
	if rec.Price.Net != nil {
		resp.Net = fixedPoint(*rec.Price.Net)
	}
	if rec.Price.Gross != nil {
		resp.Gross = fixedPoint(*rec.Price.Gross)
	}
	return resp
}

// ToListPriceRecordResponse converts a slice of records to response DTOs.
func ToListPriceRecordResponse(records []domain.PriceRecord) []PriceRecordResponse {
	res := make([]PriceRecordResponse, len(records))
	for i, rec := range records {
		res[i] = ToPriceRecordResponse(&rec)
	}
	return res
}

func fixedPoint(a money.Amount) string {
	digits, err := money.FractionDigits(a.Currency)
	if err != nil {
		return a.Value.String()
	}
	return a.Value.StringFixed(int32(digits))
}
