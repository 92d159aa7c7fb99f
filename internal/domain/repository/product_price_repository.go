package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// ProductPriceRepository define el puerto de persistencia para ProductPrice.
// ListByProduct devuelve todos los precios del producto (default y por
// rango) ordenados por ID, para que la resolución sea determinista.
type ProductPriceRepository interface {
	Create(price *entity.ProductPrice) error
	GetByID(id string) (*entity.ProductPrice, error)
	ListByProduct(productID string) ([]*entity.ProductPrice, error)
	FindDefault(productID string) (*entity.ProductPrice, error)
	Delete(id string) error
}
