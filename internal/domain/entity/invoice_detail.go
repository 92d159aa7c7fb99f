package entity

import "github.com/shopspring/decimal"

// InvoiceDetail representa una línea de detalle de una factura.
// Rate es el precio unitario resuelto al momento de facturar;
// SubTotal = Rate × Quantity; TaxAmount = SubTotal × (TaxRate producto / 100);
// TotalAmount = SubTotal + TaxAmount. Solo se crea durante el armado de la
// factura; nunca se modifica.
type InvoiceDetail struct {
	ID          string
	InvoiceID   string
	ProductID   string
	Quantity    int64
	Rate        decimal.Decimal
	SubTotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}
