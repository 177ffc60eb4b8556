package templatefilters

import (
	"html/template"
	"log/slog"

	"github.com/ecomkit/prices/pkg/money"
)

// LegacyFilters is the deprecated filter surface. Every call logs a
// deprecation warning and forwards unchanged to the current filters, so
// output stays byte-identical to the new entry points. The forwarding
// lives here so the current filters carry no deprecation awareness.
type LegacyFilters struct {
	inner  *Filters
	logger *slog.Logger
}

// NewLegacy wraps the current filters in the deprecated surface.
func NewLegacy(inner *Filters, logger *slog.Logger) *LegacyFilters {
	if logger == nil {
		logger = slog.Default()
	}
	return &LegacyFilters{inner: inner, logger: logger}
}

// FuncMap returns the deprecated filters under their historical names.
func (l *LegacyFilters) FuncMap() template.FuncMap {
	return template.FuncMap{
		"amount":           l.Amount,
		"formatPrice":      l.FormatPrice,
		"currencyFraction": l.CurrencyFraction,
	}
}

// Amount forwards to Filters.Amount.
func (l *LegacyFilters) Amount(a money.Amount, opts ...string) (any, error) {
	l.deprecationWarning("amount")
	return l.inner.Amount(a, opts...)
}

// FormatPrice forwards to Filters.FormatPrice.
func (l *LegacyFilters) FormatPrice(value any, currency string, opts ...string) (any, error) {
	l.deprecationWarning("formatPrice")
	return l.inner.FormatPrice(value, currency, opts...)
}

// CurrencyFraction forwards to Filters.CurrencyFraction.
func (l *LegacyFilters) CurrencyFraction(currency string) (int, error) {
	l.deprecationWarning("currencyFraction")
	return l.inner.CurrencyFraction(currency)
}

func (l *LegacyFilters) deprecationWarning(name string) {
	l.logger.Warn("deprecated template filter called, use the templatefilters.Filters surface",
		slog.String("filter", name))
}
