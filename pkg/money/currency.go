package money

import (
	"fmt"

	"github.com/ecomkit/prices/internal/apperrors"
)

// currencyInfo holds the display properties of one currency: the canonical
// number of fractional digits it is rendered with, and its symbol. An
// empty symbol means the currency is conventionally written with its code
// ("BHD 123.002" style).
type currencyInfo struct {
	fractionDigits int
	symbol         string
}

// currencies is the static registry of supported currency codes, loaded
// once at process start. Lookups for codes outside this table fail with
// apperrors.ErrUnsupportedCurrency instead of falling back to a default.
var currencies = map[string]currencyInfo{
	"AED": {2, ""},
	"AUD": {2, "A$"},
	"BHD": {3, ""},
	"BRL": {2, "R$"},
	"BTC": {8, "₿"},
	"CAD": {2, "CA$"},
	"CHF": {2, "CHF"},
	"CNY": {2, "¥"},
	"CZK": {2, "Kč"},
	"DKK": {2, "kr"},
	"ETH": {18, "Ξ"},
	"EUR": {2, "€"},
	"GBP": {2, "£"},
	"HKD": {2, "HK$"},
	"HUF": {2, "Ft"},
	"IDR": {2, "Rp"},
	"ILS": {2, "₪"},
	"INR": {2, "₹"},
	"ISK": {0, "kr"},
	"JOD": {3, ""},
	"JPY": {0, "¥"},
	"KRW": {0, "₩"},
	"KWD": {3, ""},
	"MXN": {2, "MX$"},
	"NOK": {2, "kr"},
	"NZD": {2, "NZ$"},
	"OMR": {3, ""},
	"PLN": {2, "zł"},
	"RUB": {2, "₽"},
	"SEK": {2, "kr"},
	"SGD": {2, "S$"},
	"THB": {2, "฿"},
	"TND": {3, ""},
	"TRY": {2, "₺"},
	"USD": {2, "$"},
	"VND": {0, "₫"},
	"ZAR": {2, "R"},
}

// FractionDigits returns the canonical number of fractional digits for a
// currency code, e.g. 2 for USD, 0 for JPY and 3 for BHD.
func FractionDigits(code string) (int, error) {
	info, ok := currencies[code]
	if !ok {
		return 0, fmt.Errorf("currency %q: %w", code, apperrors.ErrUnsupportedCurrency)
	}
	return info.fractionDigits, nil
}

// Symbol returns the display symbol for a currency code. Currencies
// conventionally written with their code (BHD, KWD, ...) return the code
// itself.
func Symbol(code string) (string, error) {
	info, ok := currencies[code]
	if !ok {
		return "", fmt.Errorf("currency %q: %w", code, apperrors.ErrUnsupportedCurrency)
	}
	if info.symbol == "" {
		return code, nil
	}
	return info.symbol, nil
}

// IsSupported reports whether the currency code exists in the registry.
func IsSupported(code string) bool {
	_, ok := currencies[code]
	return ok
}

// SupportedCurrencies returns all registered currency codes, in no
// particular order.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	return codes
}
