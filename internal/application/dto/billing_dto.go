package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest una línea (producto, cantidad) de la solicitud de factura.
type InvoiceItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateInvoiceRequest entrada para crear una factura.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id" validate:"required"`
	Items      []InvoiceItemRequest `json:"items"`
}

// InvoiceDetailResponse salida de una línea de factura.
type InvoiceDetailResponse struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	ProductID   string          `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	SubTotal    decimal.Decimal `json:"sub_total"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// InvoiceResponse salida de una factura con sus detalles.
type InvoiceResponse struct {
	ID          string                  `json:"id"`
	CustomerID  string                  `json:"customer_id"`
	InvoiceDate time.Time               `json:"invoice_date"`
	Total       decimal.Decimal         `json:"total"`
	Details     []InvoiceDetailResponse `json:"details"`
}

// InvoiceListItemResponse salida de una factura en listados (sin detalles).
type InvoiceListItemResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	InvoiceDate time.Time       `json:"invoice_date"`
	Total       decimal.Decimal `json:"total"`
}
