// Package templatefilters exposes the currency formatter to html/template
// rendering as a FuncMap. It is a thin presentation shim: every filter
// delegates to the format service or the money package.
package templatefilters

import (
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/ecomkit/prices/internal/core/services"
	"github.com/ecomkit/prices/internal/dto"
	"github.com/ecomkit/prices/pkg/money"
)

// Filters bundles the template filter functions around one format service.
type Filters struct {
	formatter *services.FormatService
}

// New creates the filter set.
func New(formatter *services.FormatService) *Filters {
	return &Filters{formatter: formatter}
}

// FuncMap returns the filters keyed by their template names.
func (f *Filters) FuncMap() template.FuncMap {
	return template.FuncMap{
		"amount":            f.Amount,
		"formatPrice":       f.FormatPrice,
		"currencyFraction":  f.CurrencyFraction,
		"discountAmountFor": f.DiscountAmountFor,
	}
}

// Amount renders an amount in the plain "number CODE" form. Options are
// the strings "html" and "normalize"; with "html" the currency code is
// wrapped in a span and the result is template.HTML.
func (f *Filters) Amount(a money.Amount, opts ...string) (any, error) {
	htmlMode, normalize := parseOpts(opts)
	s, err := f.formatter.FormatAmount(a, htmlMode, normalize)
	if err != nil {
		return nil, err
	}
	if htmlMode {
		return template.HTML(s), nil
	}
	return s, nil
}

// FormatPrice renders a numeric value as localized currency text. The
// value may be a decimal, a string or a native number; unparseable values
// render as the empty string rather than failing the template. Options
// are "html" and "normalize" plus any other string, which is taken as the
// locale identifier.
func (f *Filters) FormatPrice(value any, currency string, opts ...string) (any, error) {
	d, ok := toDecimal(value)
	if !ok {
		return "", nil
	}

	htmlMode, normalize := parseOpts(opts)
	formatOpts := dto.FormatOptions{HTML: htmlMode, Normalize: normalize}
	for _, opt := range opts {
		if opt != "html" && opt != "normalize" {
			formatOpts.Locale = opt
		}
	}
	s, err := f.formatter.FormatPrice(d, currency, formatOpts)
	if err != nil {
		return nil, err
	}
	if htmlMode {
		return template.HTML(s), nil
	}
	return s, nil
}

// CurrencyFraction returns the canonical fraction digits for a currency.
func (f *Filters) CurrencyFraction(currency string) (int, error) {
	return money.FractionDigits(currency)
}

// DiscountAmountFor returns the price delta a discount produces, i.e.
// discounted minus original. A 50% discount on 30/30 yields -15/-15.
func (f *Filters) DiscountAmountFor(discount money.Discount, price money.Price) (money.Price, error) {
	discounted, err := discount(price)
	if err != nil {
		return money.Price{}, err
	}
	return discounted.Sub(price)
}

func parseOpts(opts []string) (htmlMode, normalize bool) {
	for _, opt := range opts {
		switch opt {
		case "html":
			htmlMode = true
		case "normalize":
			normalize = true
		}
	}
	return htmlMode, normalize
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case decimal.Decimal:
		return value, true
	case *decimal.Decimal:
		if value == nil {
			return decimal.Decimal{}, false
		}
		return *value, true
	case money.Amount:
		return value.Value, true
	case string:
		d, err := decimal.NewFromString(value)
		return d, err == nil
	case int:
		return decimal.NewFromInt(int64(value)), true
	case int64:
		return decimal.NewFromInt(value), true
	case float64:
		return decimal.NewFromFloat(value), true
	default:
		d, err := decimal.NewFromString(fmt.Sprint(v))
		return d, err == nil
	}
}
