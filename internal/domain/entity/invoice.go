package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura. Se crea de forma atómica
// junto con sus detalles y es inmutable después (no hay update ni delete).
type Invoice struct {
	ID          string
	CustomerID  string
	InvoiceDate time.Time // UTC, momento de creación
	Total       decimal.Decimal
	CreatedAt   time.Time
}
