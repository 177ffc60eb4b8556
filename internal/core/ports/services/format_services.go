package services

import (
	"github.com/shopspring/decimal"

	"github.com/ecomkit/prices/internal/dto"
	"github.com/ecomkit/prices/pkg/money"
)

// FormatterSvcFacade defines the currency formatting operations exposed to
// the presentation layer. Implementations are pure: no state beyond
// read-only locale configuration.
type FormatterSvcFacade interface {
	// FormatPrice renders a decimal value as localized currency text.
	FormatPrice(value decimal.Decimal, currency string, opts dto.FormatOptions) (string, error)

	// FormatAmount renders an amount in the plain "number CODE" form.
	FormatAmount(a money.Amount, htmlMode, normalize bool) (string, error)
}
