package pricing

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos de
// producto y precios. AddPrice lo usa para que la verificación de
// solapamiento y el insert sean atómicos.
type TxRunner interface {
	RunPricing(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		priceRepo repository.ProductPriceRepository,
	) error) error
}
