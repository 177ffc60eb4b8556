package services

import (
	"context"

	"github.com/ecomkit/prices/internal/core/domain"
	"github.com/ecomkit/prices/internal/dto"
)

// PricingReaderSvc defines read operations for the price catalog.
type PricingReaderSvc interface {
	// GetPriceRecordByID retrieves a specific price record.
	GetPriceRecordByID(ctx context.Context, priceID string) (*domain.PriceRecord, error)

	// ListPriceRecords retrieves price records with limit/offset paging.
	ListPriceRecords(ctx context.Context, limit, offset int) ([]domain.PriceRecord, error)
}

// PricingWriterSvc defines write operations for the price catalog.
type PricingWriterSvc interface {
	// CreatePriceRecord persists a new price record.
	CreatePriceRecord(ctx context.Context, req dto.CreatePriceRecordRequest, creatorID string) (*domain.PriceRecord, error)

	// UpdatePriceRecord applies a partial update to an existing record.
	UpdatePriceRecord(ctx context.Context, priceID string, req dto.UpdatePriceRecordRequest, updaterID string) (*domain.PriceRecord, error)

	// DeletePriceRecord removes a price record.
	DeletePriceRecord(ctx context.Context, priceID string) error
}

// PricingSvcFacade combines all price catalog service interfaces.
type PricingSvcFacade interface {
	PricingReaderSvc
	PricingWriterSvc
}
