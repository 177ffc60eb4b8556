// Package fields adapts money values to flat storage columns: AmountColumn
// translates a single Amount to and from a fixed-point decimal column with
// a fixed currency, and PriceAccessor presents two such columns as one
// logical net/gross price.
package fields

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecomkit/prices/internal/apperrors"
	"github.com/ecomkit/prices/pkg/money"
)

// AmountColumn describes one decimal storage column holding amounts of a
// single fixed currency. The currency is column configuration, not row
// data: it is stripped on write and restored on read.
type AmountColumn struct {
	Currency      string
	MaxDigits     int32
	DecimalPlaces int32

	defaultAmount *money.Amount
}

// NewAmountColumn configures a column for the given currency and
// precision. MaxDigits counts all digits, DecimalPlaces the fractional
// ones, mirroring NUMERIC(precision, scale).
func NewAmountColumn(currency string, maxDigits, decimalPlaces int32) AmountColumn {
	return AmountColumn{Currency: currency, MaxDigits: maxDigits, DecimalPlaces: decimalPlaces}
}

// WithDefault returns a copy of the column with a default value, coercing
// the decimal text into an Amount of the column currency at configuration
// time. Malformed defaults fail immediately.
func (c AmountColumn) WithDefault(value string) (AmountColumn, error) {
	a, err := money.NewFromString(value, c.Currency)
	if err != nil {
		return AmountColumn{}, fmt.Errorf("column default %q: %w", value, err)
	}
	c.defaultAmount = &a
	return c, nil
}

// Default returns the configured default amount, or nil when the column
// has none.
func (c AmountColumn) Default() *money.Amount {
	if c.defaultAmount == nil {
		return nil
	}
	a := *c.defaultAmount
	return &a
}

// PrepValue extracts the bare numeric value for storage, discarding the
// currency. A nil amount maps to a nil (NULL) value. It returns
// apperrors.ErrCurrencyMismatch if the amount's currency differs from the
// column's.
func (c AmountColumn) PrepValue(a *money.Amount) (*decimal.Decimal, error) {
	if a == nil {
		return nil, nil
	}
	if err := c.checkCurrency(*a); err != nil {
		return nil, err
	}
	if c.MaxDigits > 0 {
		integerDigits := len(a.Value.Abs().Truncate(0).String())
		if int32(integerDigits) > c.MaxDigits-c.DecimalPlaces {
			return nil, fmt.Errorf("amount %s exceeds %d integer digits: %w",
				a.Value, c.MaxDigits-c.DecimalPlaces, apperrors.ErrValidation)
		}
	}
	v := a.Value
	return &v, nil
}

// Encode serializes an amount as fixed-point decimal text at the column
// scale, e.g. "5.00" for a two-place column.
func (c AmountColumn) Encode(a *money.Amount) (string, error) {
	v, err := c.PrepValue(a)
	if err != nil || v == nil {
		return "", err
	}
	return v.StringFixed(c.DecimalPlaces), nil
}

// Decode wraps a stored decimal back into an Amount of the column
// currency. A nil stored value reads back as unset, not zero.
func (c AmountColumn) Decode(value *decimal.Decimal) *money.Amount {
	if value == nil {
		return nil
	}
	a := money.New(*value, c.Currency)
	return &a
}

// DecodeAmount validates an already-typed amount read from storage,
// checking currency identity against the column configuration.
func (c AmountColumn) DecodeAmount(a *money.Amount) (*money.Amount, error) {
	if a == nil {
		return nil, nil
	}
	if err := c.checkCurrency(*a); err != nil {
		return nil, err
	}
	v := *a
	return &v, nil
}

func (c AmountColumn) checkCurrency(a money.Amount) error {
	if a.Currency != c.Currency {
		return fmt.Errorf("amount currency %s, column currency %s: %w",
			a.Currency, c.Currency, apperrors.ErrCurrencyMismatch)
	}
	return nil
}
