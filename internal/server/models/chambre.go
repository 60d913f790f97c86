package models

import "github.com/shopspring/decimal"

// Chambre is a bookable room. Prix is kept as a decimal so NUMERIC values
// round-trip through storage and the wire without floating-point drift.
type Chambre struct {
	ID         int64
	Type       string
	Prix       decimal.Decimal
	Disponible bool
}
