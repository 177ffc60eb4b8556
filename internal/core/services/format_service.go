package services

import (
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ecomkit/prices/internal/core/locale"
	portssvc "github.com/ecomkit/prices/internal/core/ports/services"
	"github.com/ecomkit/prices/internal/dto"
	"github.com/ecomkit/prices/pkg/money"
)

// FormatService renders monetary values as locale- and currency-aware
// strings. It holds only read-only configuration (the fallback locale);
// every formatting call is a pure function of its inputs.
type FormatService struct {
	defaultLocale string
}

// NewFormatService creates a FormatService falling back to defaultLocale
// when a call does not name one.
func NewFormatService(defaultLocale string) *FormatService {
	return &FormatService{defaultLocale: defaultLocale}
}

var _ portssvc.FormatterSvcFacade = (*FormatService)(nil)

// FormatPrice renders a decimal value in the given currency using the
// locale's symbol, symbol placement and separators.
//
// The value is rendered at the currency's canonical fraction digits
// (2 for USD, 0 for JPY, 3 for BHD). With Normalize set, an all-zero
// fraction is dropped so "12.00" becomes "12"; a fraction with any
// significant digit is kept untouched. HTML mode wraps the currency
// marker in `<span class="currency">...</span>`.
//
// It returns apperrors.ErrUnsupportedCurrency for codes outside the
// registry. Unresolvable locales fall back to the default locale.
func (s *FormatService) FormatPrice(value decimal.Decimal, currency string, opts dto.FormatOptions) (string, error) {
	fraction, err := money.FractionDigits(currency)
	if err != nil {
		return "", err
	}

	id := opts.Locale
	if id == "" {
		id = s.defaultLocale
	}
	conv := locale.ConventionsFor(locale.Canonicalize(id))

	digits := renderDigits(value, fraction, opts.Normalize, conv.DecimalSep, conv.GroupSep)

	symbol, ok := conv.SymbolOverride(currency)
	if !ok {
		// Registry hit is guaranteed: FractionDigits already resolved the code.
		symbol, _ = money.Symbol(currency)
	}

	marker := symbol
	if opts.HTML {
		marker = `<span class="currency">` + html.EscapeString(symbol) + `</span>`
	}

	if conv.SymbolBefore {
		return marker + conv.SymbolGap + digits, nil
	}
	return digits + conv.SymbolGap + marker, nil
}

// FormatAmount renders an Amount in the plain, locale-independent form:
// canonical-digit number, one space, then the currency code. HTML mode
// wraps the code in the same span element FormatPrice uses for symbols.
func (s *FormatService) FormatAmount(a money.Amount, htmlMode, normalize bool) (string, error) {
	fraction, err := money.FractionDigits(a.Currency)
	if err != nil {
		return "", err
	}

	digits := renderDigits(a.Value, fraction, normalize, ".", "")

	marker := a.Currency
	if htmlMode {
		marker = `<span class="currency">` + a.Currency + `</span>`
	}
	return digits + " " + marker, nil
}

// renderDigits renders a decimal at the given fraction-digit count,
// applying the decimal separator and optional thousand grouping. With
// normalize set, an all-zero fraction is dropped entirely; the integer
// part is never changed.
func renderDigits(value decimal.Decimal, fraction int, normalize bool, decimalSep, groupSep string) string {
	s := value.StringFixed(int32(fraction))

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if normalize && strings.Trim(fracPart, "0") == "" {
		fracPart = ""
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if groupSep == "" {
		b.WriteString(intPart)
	} else {
		for i, c := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b.WriteString(groupSep)
			}
			b.WriteRune(c)
		}
	}
	if fracPart != "" {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}
