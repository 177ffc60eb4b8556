package mapping_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomkit/prices/internal/core/domain"
	"github.com/ecomkit/prices/internal/utils/mapping"
	"github.com/ecomkit/prices/pkg/money"
)

// Round-trips one record per registry fraction class (0, 2, 3, 8 and 18
// digits) through the storage model and back, including sub-0.001 values
// for the high-precision currencies.
func TestPriceRecordMapping_RoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		currency string
		net      string
		gross    string
	}{
		{"zero digits", "JPY", "123", "150"},
		{"two digits", "USD", "10.20", "12.30"},
		{"three digits", "BHD", "123.002", "130.500"},
		{"eight digits", "BTC", "0.00000001", "0.00000002"},
		{"eighteen digits", "ETH", "1", "1.000000000000000001"},
	}

	now := time.Now().UTC()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, err := money.NewFromString(tc.net, tc.currency)
			require.NoError(t, err)
			gross, err := money.NewFromString(tc.gross, tc.currency)
			require.NoError(t, err)

			record := domain.PriceRecord{
				PriceID:     "price-" + tc.currency,
				Description: "round trip",
				Currency:    tc.currency,
				Price:       money.Price{Net: &net, Gross: &gross},
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     "tester",
					LastUpdatedAt: now,
					LastUpdatedBy: "tester",
				},
			}

			model, err := mapping.ToModelPriceRecord(record)
			require.NoError(t, err)
			require.NotNil(t, model.NetAmount)
			require.NotNil(t, model.GrossAmount)

			restored, err := mapping.ToDomainPriceRecord(model)
			require.NoError(t, err)
			require.NotNil(t, restored.Price.Net)
			require.NotNil(t, restored.Price.Gross)
			assert.True(t, restored.Price.Net.Equal(net), "net changed: %s -> %s", net, *restored.Price.Net)
			assert.True(t, restored.Price.Gross.Equal(gross), "gross changed: %s -> %s", gross, *restored.Price.Gross)
		})
	}
}

// Every registry currency must leave room for a plain one-unit amount:
// the column's integer-digit budget may never go negative.
func TestPriceRecordColumn_OneUnitFitsForAllCurrencies(t *testing.T) {
	for _, code := range money.SupportedCurrencies() {
		column, err := mapping.PriceRecordColumn(code)
		require.NoError(t, err, code)

		one := money.NewFromInt(1, code)
		v, err := column.PrepValue(&one)
		require.NoError(t, err, code)
		require.NotNil(t, v, code)
	}
}

// Unset sides stay unset across the storage round trip.
func TestPriceRecordMapping_UnsetSides(t *testing.T) {
	record := domain.PriceRecord{
		PriceID:     "price-unset",
		Description: "no amounts yet",
		Currency:    "USD",
	}

	model, err := mapping.ToModelPriceRecord(record)
	require.NoError(t, err)
	assert.Nil(t, model.NetAmount)
	assert.Nil(t, model.GrossAmount)

	restored, err := mapping.ToDomainPriceRecord(model)
	require.NoError(t, err)
	assert.Nil(t, restored.Price.Net)
	assert.Nil(t, restored.Price.Gross)
}
