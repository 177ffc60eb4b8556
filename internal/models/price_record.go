package models

import "github.com/shopspring/decimal"

// PriceRecord is the storage shape of a price catalog entry. The net and
// gross columns hold bare decimals; the currency lives once per row, not
// per amount. Nil amount pointers map to NULL columns ("unset", not zero).
type PriceRecord struct {
	PriceID     string
	Description string
	Currency    string
	NetAmount   *decimal.Decimal
	GrossAmount *decimal.Decimal
	AuditFields
}
