package mapping

import (
	"fmt"

	"github.com/ecomkit/prices/internal/core/domain"
	"github.com/ecomkit/prices/internal/fields"
	"github.com/ecomkit/prices/internal/models"
	"github.com/ecomkit/prices/pkg/money"
)

// priceRecordMaxDigits bounds the stored amounts; it matches the
// NUMERIC(30, 18) columns in the price_records migration. The column
// scale of 18 covers the registry's widest fraction class (ETH), so
// every supported currency keeps at least 12 integer digits.
const priceRecordMaxDigits = 30

// PriceRecordColumn builds the amount column configuration for one side of
// a price record: fixed record currency, storage scale at the currency's
// canonical fraction digits.
func PriceRecordColumn(currency string) (fields.AmountColumn, error) {
	digits, err := money.FractionDigits(currency)
	if err != nil {
		return fields.AmountColumn{}, err
	}
	return fields.NewAmountColumn(currency, priceRecordMaxDigits, int32(digits)), nil
}

// ToModelPriceRecord decomposes the record's price into the two bare
// decimal columns, validating each side against the record currency.
func ToModelPriceRecord(d domain.PriceRecord) (models.PriceRecord, error) {
	column, err := PriceRecordColumn(d.Currency)
	if err != nil {
		return models.PriceRecord{}, err
	}

	netValue, err := column.PrepValue(d.Price.Net)
	if err != nil {
		return models.PriceRecord{}, fmt.Errorf("price record %s net: %w", d.PriceID, err)
	}
	grossValue, err := column.PrepValue(d.Price.Gross)
	if err != nil {
		return models.PriceRecord{}, fmt.Errorf("price record %s gross: %w", d.PriceID, err)
	}

	return models.PriceRecord{
		PriceID:     d.PriceID,
		Description: d.Description,
		Currency:    d.Currency,
		NetAmount:   netValue,
		GrossAmount: grossValue,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainPriceRecord recomposes the price view from the stored columns.
// NULL columns stay unset; a fully unset pair yields an unset price.
func ToDomainPriceRecord(m models.PriceRecord) (domain.PriceRecord, error) {
	column, err := PriceRecordColumn(m.Currency)
	if err != nil {
		return domain.PriceRecord{}, err
	}
	accessor := fields.NewPriceAccessor(column, column)

	price, err := accessor.Get(column.Decode(m.NetAmount), column.Decode(m.GrossAmount))
	if err != nil {
		return domain.PriceRecord{}, fmt.Errorf("price record %s: %w", m.PriceID, err)
	}

	record := domain.PriceRecord{
		PriceID:     m.PriceID,
		Description: m.Description,
		Currency:    m.Currency,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if price != nil {
		record.Price = *price
	}
	return record, nil
}
