// Package forms bridges user-submitted text input to money values: a
// validated parse into the field's fixed currency, change detection
// against an initial value, and an input widget rendering the currency
// marker next to the numeric input.
package forms

import (
	"fmt"
	"strings"

	"github.com/ecomkit/prices/internal/apperrors"
	"github.com/ecomkit/prices/pkg/money"
)

// MoneyField validates and converts submitted text into an Amount of one
// fixed currency.
type MoneyField struct {
	Currency string
	Required bool

	// Min and Max, when set, bound the cleaned amount inclusively.
	Min *money.Amount
	Max *money.Amount
}

// Clean parses submitted text into an Amount in the field's currency.
// Empty input yields nil for optional fields and apperrors.ErrValidation
// for required ones; non-numeric text yields apperrors.ErrInvalidInput.
func (f MoneyField) Clean(raw *string) (*money.Amount, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		if f.Required {
			return nil, fmt.Errorf("field is required: %w", apperrors.ErrValidation)
		}
		return nil, nil
	}

	a, err := money.NewFromString(strings.TrimSpace(*raw), f.Currency)
	if err != nil {
		return nil, err
	}

	if f.Min != nil {
		if f.Min.Currency != a.Currency {
			return nil, fmt.Errorf("min value: %w", apperrors.ErrCurrencyMismatch)
		}
		if a.Value.LessThan(f.Min.Value) {
			return nil, fmt.Errorf("amount below minimum %s: %w", f.Min, apperrors.ErrValidation)
		}
	}
	if f.Max != nil {
		if f.Max.Currency != a.Currency {
			return nil, fmt.Errorf("max value: %w", apperrors.ErrCurrencyMismatch)
		}
		if a.Value.GreaterThan(f.Max.Value) {
			return nil, fmt.Errorf("amount above maximum %s: %w", f.Max, apperrors.ErrValidation)
		}
	}

	return &a, nil
}

// HasChanged reports whether the submitted value differs from the initial
// one. The initial value may be raw text, an Amount, a *Amount or nil;
// both sides are normalized to Amounts before comparing, so submitting
// "5" against an initial Amount(5) is not a change. Any transition
// between set and unset counts as changed. Text that does not parse is
// compared verbatim.
func (f MoneyField) HasChanged(initial any, data *string) bool {
	initAmount, initRaw, initSet := f.normalize(initial)

	var submitted any
	if data != nil {
		submitted = *data
	}
	dataAmount, dataRaw, dataSet := f.normalize(submitted)

	if !initSet || !dataSet {
		return initSet != dataSet
	}
	if initAmount != nil && dataAmount != nil {
		return !initAmount.Equal(*dataAmount)
	}
	return initRaw != dataRaw
}

// normalize reduces the accepted initial/submitted shapes to a common
// representation: the parsed amount (nil when unparseable), the raw text
// form, and whether the value is set at all.
func (f MoneyField) normalize(v any) (*money.Amount, string, bool) {
	switch value := v.(type) {
	case nil:
		return nil, "", false
	case money.Amount:
		return &value, value.String(), true
	case *money.Amount:
		if value == nil {
			return nil, "", false
		}
		return value, value.String(), true
	case string:
		return f.normalizeText(value)
	case *string:
		if value == nil {
			return nil, "", false
		}
		return f.normalizeText(*value)
	default:
		return nil, fmt.Sprint(v), true
	}
}

func (f MoneyField) normalizeText(raw string) (*money.Amount, string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, "", false
	}
	a, err := money.NewFromString(raw, f.Currency)
	if err != nil {
		return nil, raw, true
	}
	return &a, raw, true
}
