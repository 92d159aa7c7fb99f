package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPrice representa un precio de un producto.
//
// Dos variantes:
//   - Por defecto: IsDefault = true, FromDate y ToDate nil. A lo sumo uno
//     por producto.
//   - Por rango: IsDefault = false, ambas fechas presentes, FromDate < ToDate.
//     Los rangos de un mismo producto no se solapan entre sí (bordes
//     inclusivos, por fecha calendario).
type ProductPrice struct {
	ID        string
	ProductID string
	Price     decimal.Decimal
	FromDate  *time.Time
	ToDate    *time.Time
	IsDefault bool
	CreatedAt time.Time
}

// IsRanged indica si el precio tiene rango de fechas (override).
func (p *ProductPrice) IsRanged() bool {
	return !p.IsDefault && p.FromDate != nil && p.ToDate != nil
}
