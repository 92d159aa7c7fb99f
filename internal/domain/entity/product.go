package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El precio de venta no vive
// aquí: se maneja con registros ProductPrice (precio por defecto más
// overrides por rango de fechas).
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	TaxRate     decimal.Decimal // porcentaje, ej: 0, 5, 19
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
