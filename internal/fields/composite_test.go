package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomkit/prices/internal/apperrors"
	"github.com/ecomkit/prices/internal/fields"
	"github.com/ecomkit/prices/pkg/money"
)

func btcAccessor(t *testing.T) fields.PriceAccessor {
	t.Helper()
	net, err := fields.NewAmountColumn("BTC", 9, 2).WithDefault("5")
	require.NoError(t, err)
	gross, err := fields.NewAmountColumn("BTC", 9, 2).WithDefault("5")
	require.NoError(t, err)
	return fields.NewPriceAccessor(net, gross)
}

func TestPriceAccessor_GetBothSides(t *testing.T) {
	accessor := btcAccessor(t)

	price, err := accessor.Get(
		amountPtr(money.NewFromInt(25, "BTC")),
		amountPtr(money.NewFromInt(30, "BTC")),
	)
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.True(t, price.Net.Equal(money.NewFromInt(25, "BTC")))
	assert.True(t, price.Gross.Equal(money.NewFromInt(30, "BTC")))
}

func TestPriceAccessor_GetOneSideFallsBackToDefault(t *testing.T) {
	accessor := btcAccessor(t)

	price, err := accessor.Get(amountPtr(money.NewFromInt(25, "BTC")), nil)
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.True(t, price.Net.Equal(money.NewFromInt(25, "BTC")))
	assert.True(t, price.Gross.Equal(money.NewFromInt(5, "BTC")))
}

func TestPriceAccessor_GetUnset(t *testing.T) {
	net := fields.NewAmountColumn("BTC", 9, 2)
	gross := fields.NewAmountColumn("BTC", 9, 2)
	accessor := fields.NewPriceAccessor(net, gross)

	price, err := accessor.Get(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestPriceAccessor_GetMismatchedSidesSurfacesError(t *testing.T) {
	// Sides independently assigned with different currencies are read
	// permissively; the mismatch surfaces from the Price constructor.
	accessor := btcAccessor(t)

	_, err := accessor.Get(
		amountPtr(money.NewFromInt(25, "USD")),
		amountPtr(money.NewFromInt(30, "BTC")),
	)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
}

func TestPriceAccessor_Set(t *testing.T) {
	accessor := btcAccessor(t)

	price, err := money.NewPrice(
		amountPtr(money.NewFromInt(25, "BTC")),
		amountPtr(money.NewFromInt(30, "BTC")),
	)
	require.NoError(t, err)

	net, gross, err := accessor.Set(&price)
	require.NoError(t, err)
	assert.True(t, net.Equal(money.NewFromInt(25, "BTC")))
	assert.True(t, gross.Equal(money.NewFromInt(30, "BTC")))
}

func TestPriceAccessor_SetUnsetClearsBoth(t *testing.T) {
	accessor := btcAccessor(t)

	net, gross, err := accessor.Set(nil)
	require.NoError(t, err)
	assert.Nil(t, net)
	assert.Nil(t, gross)
}

func TestPriceAccessor_SetWrongCurrencyFailsAtWriteTime(t *testing.T) {
	accessor := btcAccessor(t)

	price, err := money.NewPrice(
		amountPtr(money.NewFromInt(25, "USD")),
		amountPtr(money.NewFromInt(30, "USD")),
	)
	require.NoError(t, err)

	_, _, err = accessor.Set(&price)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
}
