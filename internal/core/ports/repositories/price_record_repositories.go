package repositories

import (
	"context"

	"github.com/ecomkit/prices/internal/core/domain"
)

// PriceRecordReader defines read operations for price records.
type PriceRecordReader interface {
	// FindPriceRecordByID retrieves a price record by its ID.
	FindPriceRecordByID(ctx context.Context, priceID string) (*domain.PriceRecord, error)

	// ListPriceRecords retrieves price records with limit/offset paging.
	ListPriceRecords(ctx context.Context, limit, offset int) ([]domain.PriceRecord, error)
}

// PriceRecordWriter defines write operations for price records.
type PriceRecordWriter interface {
	// SavePriceRecord inserts a new price record.
	SavePriceRecord(ctx context.Context, record domain.PriceRecord) error

	// UpdatePriceRecord persists changes to an existing price record.
	UpdatePriceRecord(ctx context.Context, record domain.PriceRecord) error

	// DeletePriceRecord removes a price record.
	DeletePriceRecord(ctx context.Context, priceID string) error
}

// PriceRecordRepository combines all price record repository interfaces.
type PriceRecordRepository interface {
	PriceRecordReader
	PriceRecordWriter
}
