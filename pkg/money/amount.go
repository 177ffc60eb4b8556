// Package money provides the monetary value types shared by the rest of
// the module: Amount, a (decimal value, currency code) pair, and Price, a
// net/gross pair of Amounts sharing one currency. Values are immutable by
// convention: operations return new values and never modify receivers.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecomkit/prices/internal/apperrors"
)

// Amount is a monetary value: a decimal quantity plus an ISO 4217-style
// currency code. Two Amounts are equal only when both the value and the
// currency match.
type Amount struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// New returns an Amount of value in the given currency.
func New(value decimal.Decimal, currency string) Amount {
	return Amount{Value: value, Currency: currency}
}

// NewFromInt returns an Amount of a whole-number value in the given currency.
func NewFromInt(value int64, currency string) Amount {
	return Amount{Value: decimal.NewFromInt(value), Currency: currency}
}

// NewFromString parses a decimal string into an Amount in the given
// currency. It returns apperrors.ErrInvalidInput if the text is not a
// valid decimal number.
func NewFromString(value, currency string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", value, apperrors.ErrInvalidInput)
	}
	return Amount{Value: d, Currency: currency}, nil
}

// Equal reports whether both the numeric value and the currency match.
func (a Amount) Equal(b Amount) bool {
	return a.Currency == b.Currency && a.Value.Equal(b.Value)
}

// Add returns a + b. It returns apperrors.ErrCurrencyMismatch if the two
// amounts carry different currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.Currency != b.Currency {
		return Amount{}, fmt.Errorf("adding %s to %s: %w", b.Currency, a.Currency, apperrors.ErrCurrencyMismatch)
	}
	return Amount{Value: a.Value.Add(b.Value), Currency: a.Currency}, nil
}

// Sub returns a - b. It returns apperrors.ErrCurrencyMismatch if the two
// amounts carry different currencies.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Currency != b.Currency {
		return Amount{}, fmt.Errorf("subtracting %s from %s: %w", b.Currency, a.Currency, apperrors.ErrCurrencyMismatch)
	}
	return Amount{Value: a.Value.Sub(b.Value), Currency: a.Currency}, nil
}

// Mul returns the amount scaled by factor. The currency is preserved.
func (a Amount) Mul(factor decimal.Decimal) Amount {
	return Amount{Value: a.Value.Mul(factor), Currency: a.Currency}
}

// String implements fmt.Stringer, e.g. "10.20 USD".
func (a Amount) String() string {
	return a.Value.String() + " " + a.Currency
}
