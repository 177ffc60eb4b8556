package templatefilters_test

import (
	"bytes"
	"html/template"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomkit/prices/internal/core/services"
	"github.com/ecomkit/prices/internal/templatefilters"
	"github.com/ecomkit/prices/pkg/money"
)

func newFilters() *templatefilters.Filters {
	return templatefilters.New(services.NewFormatService("en-US"))
}

func amountPtr(a money.Amount) *money.Amount {
	return &a
}

func TestFilters_Amount(t *testing.T) {
	f := newFilters()

	got, err := f.Amount(money.NewFromInt(10, "USD"))
	require.NoError(t, err)
	assert.Equal(t, "10.00 USD", got)

	got, err = f.Amount(money.New(decimal.RequireFromString("10.20"), "USD"), "normalize")
	require.NoError(t, err)
	assert.Equal(t, "10.20 USD", got)

	got, err = f.Amount(money.NewFromInt(10, "USD"), "html")
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`10.00 <span class="currency">USD</span>`), got)
}

func TestFilters_FormatPrice(t *testing.T) {
	f := newFilters()

	got, err := f.FormatPrice(decimal.RequireFromString("12.00"), "USD", "normalize")
	require.NoError(t, err)
	assert.Equal(t, "$12", got)

	got, err = f.FormatPrice("1222", "USD")
	require.NoError(t, err)
	assert.Equal(t, "$1,222.00", got)

	// Unparseable values render as empty text, not as template errors.
	got, err = f.FormatPrice("not-a-number", "USD")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFilters_DiscountAmountFor(t *testing.T) {
	f := newFilters()

	price, err := money.NewPrice(
		amountPtr(money.NewFromInt(30, "BTC")),
		amountPtr(money.NewFromInt(30, "BTC")),
	)
	require.NoError(t, err)

	diff, err := f.DiscountAmountFor(money.PercentageDiscount(decimal.NewFromInt(50)), price)
	require.NoError(t, err)
	assert.True(t, diff.Net.Equal(money.NewFromInt(-15, "BTC")))
	assert.True(t, diff.Gross.Equal(money.NewFromInt(-15, "BTC")))
}

func TestFilters_RenderThroughTemplate(t *testing.T) {
	f := newFilters()

	tmpl := template.Must(template.New("price").Funcs(f.FuncMap()).Parse(
		`{{ amount .Amount "html" }}`))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{"Amount": money.NewFromInt(10, "USD")})
	require.NoError(t, err)
	assert.Equal(t, `10.00 <span class="currency">USD</span>`, buf.String())
}

func TestLegacyFilters_OutputIdenticalToCurrent(t *testing.T) {
	f := newFilters()
	legacy := templatefilters.NewLegacy(f, slog.New(slog.NewTextHandler(io.Discard, nil)))

	a := money.NewFromInt(10, "USD")

	current, err := f.Amount(a, "html")
	require.NoError(t, err)
	old, err := legacy.Amount(a, "html")
	require.NoError(t, err)
	assert.Equal(t, current, old)

	currentPrice, err := f.FormatPrice(decimal.RequireFromString("12.00"), "USD", "normalize")
	require.NoError(t, err)
	oldPrice, err := legacy.FormatPrice(decimal.RequireFromString("12.00"), "USD", "normalize")
	require.NoError(t, err)
	assert.Equal(t, currentPrice, oldPrice)

	currentFraction, err := f.CurrencyFraction("BHD")
	require.NoError(t, err)
	oldFraction, err := legacy.CurrencyFraction("BHD")
	require.NoError(t, err)
	assert.Equal(t, currentFraction, oldFraction)
}

func TestLegacyFilters_LogsDeprecationWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	legacy := templatefilters.NewLegacy(newFilters(), logger)

	_, err := legacy.CurrencyFraction("USD")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "deprecated template filter")
}
