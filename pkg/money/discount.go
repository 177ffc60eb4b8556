package money

import (
	"github.com/shopspring/decimal"
)

// Discount transforms a price into its discounted form.
type Discount func(Price) (Price, error)

// PercentageDiscount returns a Discount that reduces both sides of a
// price by the given percentage. A 50% discount on a 30/30 price yields
// 15/15. Unset sides stay unset.
func PercentageDiscount(percentage decimal.Decimal) Discount {
	factor := decimal.NewFromInt(1).Sub(percentage.Div(decimal.NewFromInt(100)))
	return func(p Price) (Price, error) {
		var net, gross *Amount
		if p.Net != nil {
			discounted := p.Net.Mul(factor)
			net = &discounted
		}
		if p.Gross != nil {
			discounted := p.Gross.Mul(factor)
			gross = &discounted
		}
		return NewPrice(net, gross)
	}
}
