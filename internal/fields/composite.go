package fields

import (
	"fmt"

	"github.com/ecomkit/prices/pkg/money"
)

// PriceAccessor presents two sibling amount columns as one logical
// net/gross price. It is a derived view: reading composes a Price from
// the two scalars on every call, writing decomposes one back. Nothing is
// cached and the composite has no storage identity of its own.
type PriceAccessor struct {
	net   AmountColumn
	gross AmountColumn
}

// NewPriceAccessor binds the accessor to its two column definitions.
func NewPriceAccessor(net, gross AmountColumn) PriceAccessor {
	return PriceAccessor{net: net, gross: gross}
}

// Get composes a Price from the two scalar values. Missing sides fall
// back to their column defaults; if both sides remain unset the result is
// nil. Each side is taken as-is, so a pair that was independently
// assigned with different currencies surfaces the Price constructor's
// currency-mismatch error here rather than being silently repaired.
func (p PriceAccessor) Get(net, gross *money.Amount) (*money.Price, error) {
	if net == nil {
		net = p.net.Default()
	}
	if gross == nil {
		gross = p.gross.Default()
	}
	if net == nil && gross == nil {
		return nil, nil
	}
	price, err := money.NewPrice(net, gross)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// Set decomposes a Price into the two scalar values. A nil price clears
// both columns. Each side is validated against its column's fixed
// currency eagerly, at write time.
func (p PriceAccessor) Set(price *money.Price) (net, gross *money.Amount, err error) {
	if price == nil {
		return nil, nil, nil
	}
	if net, err = p.net.DecodeAmount(price.Net); err != nil {
		return nil, nil, fmt.Errorf("price net: %w", err)
	}
	if gross, err = p.gross.DecodeAmount(price.Gross); err != nil {
		return nil, nil, fmt.Errorf("price gross: %w", err)
	}
	return net, gross, nil
}
