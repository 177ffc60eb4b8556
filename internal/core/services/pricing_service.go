package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecomkit/prices/internal/apperrors"
	"github.com/ecomkit/prices/internal/core/domain"
	portsrepo "github.com/ecomkit/prices/internal/core/ports/repositories"
	portssvc "github.com/ecomkit/prices/internal/core/ports/services"
	"github.com/ecomkit/prices/internal/dto"
	"github.com/ecomkit/prices/internal/forms"
	"github.com/ecomkit/prices/pkg/money"
)

// pricingService manages the persisted price catalog.
type pricingService struct {
	repo portsrepo.PriceRecordRepository
}

// NewPricingService creates the price catalog service.
func NewPricingService(repo portsrepo.PriceRecordRepository) portssvc.PricingSvcFacade {
	return &pricingService{repo: repo}
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// CreatePriceRecord parses the submitted amounts into the record's fixed
// currency and persists the new record.
func (s *pricingService) CreatePriceRecord(ctx context.Context, req dto.CreatePriceRecordRequest, creatorID string) (*domain.PriceRecord, error) {
	if !money.IsSupported(req.Currency) {
		return nil, fmt.Errorf("currency %q: %w", req.Currency, apperrors.ErrUnsupportedCurrency)
	}

	field := forms.MoneyField{Currency: req.Currency, Required: true}
	net, err := field.Clean(&req.Net)
	if err != nil {
		return nil, fmt.Errorf("net amount: %w", err)
	}
	gross, err := field.Clean(&req.Gross)
	if err != nil {
		return nil, fmt.Errorf("gross amount: %w", err)
	}

	price, err := money.NewPrice(net, gross)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := domain.PriceRecord{
		PriceID:     uuid.NewString(),
		Description: req.Description,
		Currency:    req.Currency,
		Price:       price,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.repo.SavePriceRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("saving price record: %w", err)
	}
	return &record, nil
}

// GetPriceRecordByID retrieves a single price record.
func (s *pricingService) GetPriceRecordByID(ctx context.Context, priceID string) (*domain.PriceRecord, error) {
	return s.repo.FindPriceRecordByID(ctx, priceID)
}

// ListPriceRecords retrieves price records with limit/offset paging.
func (s *pricingService) ListPriceRecords(ctx context.Context, limit, offset int) ([]domain.PriceRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListPriceRecords(ctx, limit, offset)
}

// UpdatePriceRecord applies a partial update. Amount fields go through
// form-level change detection, so resubmitting the stored value leaves
// the record (and its audit trail) untouched.
func (s *pricingService) UpdatePriceRecord(ctx context.Context, priceID string, req dto.UpdatePriceRecordRequest, updaterID string) (*domain.PriceRecord, error) {
	record, err := s.repo.FindPriceRecordByID(ctx, priceID)
	if err != nil {
		return nil, err
	}

	field := forms.MoneyField{Currency: record.Currency, Required: true}
	changed := false

	if req.Net != nil && field.HasChanged(record.Price.Net, req.Net) {
		net, err := field.Clean(req.Net)
		if err != nil {
			return nil, fmt.Errorf("net amount: %w", err)
		}
		record.Price.Net = net
		changed = true
	}
	if req.Gross != nil && field.HasChanged(record.Price.Gross, req.Gross) {
		gross, err := field.Clean(req.Gross)
		if err != nil {
			return nil, fmt.Errorf("gross amount: %w", err)
		}
		record.Price.Gross = gross
		changed = true
	}
	if req.Description != nil && *req.Description != record.Description {
		record.Description = *req.Description
		changed = true
	}

	if !changed {
		return record, nil
	}

	record.LastUpdatedAt = time.Now().UTC()
	record.LastUpdatedBy = updaterID

	if err := s.repo.UpdatePriceRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("updating price record %s: %w", priceID, err)
	}
	return record, nil
}

// DeletePriceRecord removes a price record.
func (s *pricingService) DeletePriceRecord(ctx context.Context, priceID string) error {
	if err := s.repo.DeletePriceRecord(ctx, priceID); err != nil {
		return fmt.Errorf("deleting price record %s: %w", priceID, err)
	}
	return nil
}
