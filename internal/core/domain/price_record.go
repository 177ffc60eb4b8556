package domain

import "github.com/ecomkit/prices/pkg/money"

// PriceRecord is a persisted catalog entry: a described net/gross price in
// one fixed currency. The Price view is composed from the two persisted
// amount columns; it has no storage identity of its own.
type PriceRecord struct {
	PriceID     string      `json:"priceID"`
	Description string      `json:"description"`
	Currency    string      `json:"currency"`
	Price       money.Price `json:"price"`
	AuditFields
}
