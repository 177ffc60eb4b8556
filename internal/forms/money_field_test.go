package forms_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomkit/prices/internal/apperrors"
	"github.com/ecomkit/prices/internal/forms"
	"github.com/ecomkit/prices/pkg/money"
)

func strPtr(s string) *string {
	return &s
}

func amountPtr(a money.Amount) *money.Amount {
	return &a
}

func TestMoneyField_Clean(t *testing.T) {
	field := forms.MoneyField{Currency: "BTC", Required: true}

	a, err := field.Clean(strPtr("20"))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.True(t, a.Equal(money.NewFromInt(20, "BTC")))

	_, err = field.Clean(strPtr("twenty"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = field.Clean(nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	optional := forms.MoneyField{Currency: "BTC"}
	a, err = optional.Clean(nil)
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = optional.Clean(strPtr("  "))
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestMoneyField_CleanBounds(t *testing.T) {
	field := forms.MoneyField{
		Currency: "USD",
		Min:      amountPtr(money.NewFromInt(5, "USD")),
		Max:      amountPtr(money.NewFromInt(15, "USD")),
	}

	a, err := field.Clean(strPtr("10"))
	require.NoError(t, err)
	assert.True(t, a.Equal(money.NewFromInt(10, "USD")))

	_, err = field.Clean(strPtr("4.99"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = field.Clean(strPtr("15.01"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMoneyField_HasChanged(t *testing.T) {
	field := forms.MoneyField{Currency: "BTC"}

	tests := []struct {
		name    string
		data    *string
		initial any
		want    bool
	}{
		{
			name:    "same value as initial amount",
			data:    strPtr("5"),
			initial: money.NewFromInt(5, "BTC"),
			want:    false,
		},
		{
			name:    "different value from initial amount",
			data:    strPtr("5"),
			initial: money.NewFromInt(10, "BTC"),
			want:    true,
		},
		{
			name:    "same raw text",
			data:    strPtr("5"),
			initial: "5",
			want:    false,
		},
		{
			name:    "different raw text",
			data:    strPtr("5"),
			initial: "10",
			want:    true,
		},
		{
			name:    "set against unset initial",
			data:    strPtr("5"),
			initial: nil,
			want:    true,
		},
		{
			name:    "unset against initial amount",
			data:    nil,
			initial: money.NewFromInt(5, "BTC"),
			want:    true,
		},
		{
			name:    "unset against initial raw text",
			data:    nil,
			initial: "5",
			want:    true,
		},
		{
			name:    "both unset",
			data:    nil,
			initial: nil,
			want:    false,
		},
		{
			name:    "equivalent decimal spellings",
			data:    strPtr("5.0"),
			initial: "5",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, field.HasChanged(tt.initial, tt.data))
		})
	}
}

func TestPriceInput_Render(t *testing.T) {
	widget := forms.NewPriceInput("BTC", map[string]string{"type": "number"})
	result := string(widget.Render("price", 5, map[string]string{"foo": "bar"}))

	for _, attr := range []string{`foo="bar"`, `name="price"`, `type="number"`, `value="5"`, "BTC"} {
		assert.Contains(t, result, attr)
	}
	assert.True(t, strings.HasPrefix(result, "<input"))
	assert.True(t, strings.HasSuffix(result, "> BTC"))
}
