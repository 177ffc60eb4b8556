package money

import (
	"fmt"

	"github.com/ecomkit/prices/internal/apperrors"
)

// Price pairs a net and a gross Amount sharing one currency. Sides are
// pointers because a price read back from storage may have only one side
// populated; NewPrice only enforces the shared-currency invariant across
// the sides that are present.
type Price struct {
	Net   *Amount `json:"net"`
	Gross *Amount `json:"gross"`
}

// NewPrice builds a Price from its two sides. It returns
// apperrors.ErrCurrencyMismatch if both sides are set and their currencies
// differ.
func NewPrice(net, gross *Amount) (Price, error) {
	if net != nil && gross != nil && net.Currency != gross.Currency {
		return Price{}, fmt.Errorf("price net %s vs gross %s: %w", net.Currency, gross.Currency, apperrors.ErrCurrencyMismatch)
	}
	return Price{Net: net, Gross: gross}, nil
}

// Currency returns the currency code of the price, taken from whichever
// side is set. It returns the empty string for a fully unset price.
func (p Price) Currency() string {
	if p.Net != nil {
		return p.Net.Currency
	}
	if p.Gross != nil {
		return p.Gross.Currency
	}
	return ""
}

// Equal reports whether both sides match, treating an unset side as equal
// only to another unset side.
func (p Price) Equal(o Price) bool {
	return amountPtrEqual(p.Net, o.Net) && amountPtrEqual(p.Gross, o.Gross)
}

// Sub returns p - o side by side. A side must be set or unset on both
// prices; otherwise the operation is rejected.
func (p Price) Sub(o Price) (Price, error) {
	net, err := amountPtrSub(p.Net, o.Net)
	if err != nil {
		return Price{}, fmt.Errorf("price net: %w", err)
	}
	gross, err := amountPtrSub(p.Gross, o.Gross)
	if err != nil {
		return Price{}, fmt.Errorf("price gross: %w", err)
	}
	return NewPrice(net, gross)
}

func amountPtrEqual(a, b *Amount) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func amountPtrSub(a, b *Amount) (*Amount, error) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("one side unset: %w", apperrors.ErrValidation)
	}
	diff, err := a.Sub(*b)
	if err != nil {
		return nil, err
	}
	return &diff, nil
}
