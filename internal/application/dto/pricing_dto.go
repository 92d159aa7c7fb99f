package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddPriceRequest entrada para agregar un precio a un producto.
// Para un precio por defecto (is_default=true) las fechas van vacías;
// para un precio por rango ambas son obligatorias (YYYY-MM-DD inclusivo).
type AddPriceRequest struct {
	Price     decimal.Decimal `json:"price"`
	FromDate  *time.Time      `json:"from_date"`
	ToDate    *time.Time      `json:"to_date"`
	IsDefault bool            `json:"is_default"`
}

// PriceResponse salida de un precio de producto.
type PriceResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	FromDate  *time.Time      `json:"from_date,omitempty"`
	ToDate    *time.Time      `json:"to_date,omitempty"`
	IsDefault bool            `json:"is_default"`
	CreatedAt time.Time       `json:"created_at"`
}

// PriceForTodayResponse salida del precio vigente hoy para un producto.
type PriceForTodayResponse struct {
	ProductID string          `json:"product_id"`
	Date      string          `json:"date"` // YYYY-MM-DD (UTC)
	Price     decimal.Decimal `json:"price"`
	IsDefault bool            `json:"is_default"` // true si se usó el precio por defecto
}
