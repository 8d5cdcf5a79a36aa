package domain

import "github.com/shopspring/decimal"

// Product is static catalog reference data, seeded at startup and read-only
// from the order flow's perspective.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
