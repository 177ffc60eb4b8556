package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ecomkit/prices/internal/apperrors"
	"github.com/ecomkit/prices/internal/core/domain"
	portsrepo "github.com/ecomkit/prices/internal/core/ports/repositories"
	"github.com/ecomkit/prices/internal/models"
	"github.com/ecomkit/prices/internal/utils/mapping"
)

type PgxPriceRecordRepository struct {
	BaseRepository
}

// NewPgxPriceRecordRepository creates a new repository for price records.
func NewPgxPriceRecordRepository(pool *pgxpool.Pool) portsrepo.PriceRecordRepository {
	return &PgxPriceRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SavePriceRecord inserts a new price record.
func (r *PgxPriceRecordRepository) SavePriceRecord(ctx context.Context, record domain.PriceRecord) error {
	model, err := mapping.ToModelPriceRecord(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO price_records (price_id, description, currency, net_amount, gross_amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err = r.Pool.Exec(ctx, query,
		model.PriceID,
		model.Description,
		model.Currency,
		nullDecimal(model.NetAmount),
		nullDecimal(model.GrossAmount),
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save price record %s: %w", model.PriceID, err)
	}
	return nil
}

// FindPriceRecordByID retrieves a price record by its identifier.
func (r *PgxPriceRecordRepository) FindPriceRecordByID(ctx context.Context, priceID string) (*domain.PriceRecord, error) {
	query := `
		SELECT price_id, description, currency, net_amount, gross_amount, created_at, created_by, last_updated_at, last_updated_by
		FROM price_records
		WHERE price_id = $1;
	`
	model, err := scanPriceRecord(r.Pool.QueryRow(ctx, query, priceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find price record %s: %w", priceID, err)
	}

	record, err := mapping.ToDomainPriceRecord(model)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListPriceRecords retrieves price records ordered by creation time.
func (r *PgxPriceRecordRepository) ListPriceRecords(ctx context.Context, limit, offset int) ([]domain.PriceRecord, error) {
	query := `
		SELECT price_id, description, currency, net_amount, gross_amount, created_at, created_by, last_updated_at, last_updated_by
		FROM price_records
		ORDER BY created_at DESC, price_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query price records: %w", err)
	}
	defer rows.Close()

	recordModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PriceRecord, error) {
		return scanPriceRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan price records: %w", err)
	}

	records := make([]domain.PriceRecord, 0, len(recordModels))
	for _, model := range recordModels {
		record, err := mapping.ToDomainPriceRecord(model)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// UpdatePriceRecord rewrites the mutable columns of an existing record.
func (r *PgxPriceRecordRepository) UpdatePriceRecord(ctx context.Context, record domain.PriceRecord) error {
	model, err := mapping.ToModelPriceRecord(record)
	if err != nil {
		return err
	}

	query := `
		UPDATE price_records
		SET description = $2, net_amount = $3, gross_amount = $4, last_updated_at = $5, last_updated_by = $6
		WHERE price_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.PriceID,
		model.Description,
		nullDecimal(model.NetAmount),
		nullDecimal(model.GrossAmount),
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update price record %s: %w", model.PriceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePriceRecord removes a record by its identifier.
func (r *PgxPriceRecordRepository) DeletePriceRecord(ctx context.Context, priceID string) error {
	query := `DELETE FROM price_records WHERE price_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, priceID)
	if err != nil {
		return fmt.Errorf("failed to delete price record %s: %w", priceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanPriceRecord reads one row into the storage model, mapping NULL
// amount columns to nil pointers.
func scanPriceRecord(row pgx.Row) (models.PriceRecord, error) {
	var (
		model models.PriceRecord
		net   decimal.NullDecimal
		gross decimal.NullDecimal
	)
	err := row.Scan(
		&model.PriceID,
		&model.Description,
		&model.Currency,
		&net,
		&gross,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		return models.PriceRecord{}, err
	}
	if net.Valid {
		model.NetAmount = &net.Decimal
	}
	if gross.Valid {
		model.GrossAmount = &gross.Decimal
	}
	return model, nil
}

// nullDecimal converts an optional column value into the driver-friendly
// nullable form.
func nullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *value, Valid: true}
}
