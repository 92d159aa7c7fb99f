package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.ProductPriceRepository = (*ProductPriceRepo)(nil)

// ProductPriceRepo implementación de ProductPriceRepository (usable con pool o tx).
type ProductPriceRepo struct {
	q Querier
}

// NewProductPriceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductPriceRepository(q Querier) *ProductPriceRepo {
	return &ProductPriceRepo{q: q}
}

// Create persiste un nuevo precio (default o por rango).
func (r *ProductPriceRepo) Create(price *entity.ProductPrice) error {
	query := `
		INSERT INTO product_prices (id, product_id, price, from_date, to_date, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, price.ProductID, price.Price, price.FromDate, price.ToDate,
		price.IsDefault, price.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product price: %w", err)
	}
	return nil
}

// GetByID obtiene un precio por ID.
func (r *ProductPriceRepo) GetByID(id string) (*entity.ProductPrice, error) {
	query := `
		SELECT id, product_id, price, from_date, to_date, is_default, created_at
		FROM product_prices WHERE id = $1`
	var p entity.ProductPrice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProductID, &p.Price, &p.FromDate, &p.ToDate, &p.IsDefault, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product price: %w", err)
	}
	return &p, nil
}

// ListByProduct devuelve todos los precios del producto ordenados por ID
// (orden estable para la resolución determinista).
func (r *ProductPriceRepo) ListByProduct(productID string) ([]*entity.ProductPrice, error) {
	query := `
		SELECT id, product_id, price, from_date, to_date, is_default, created_at
		FROM product_prices WHERE product_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductPrice
	for rows.Next() {
		var p entity.ProductPrice
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Price, &p.FromDate, &p.ToDate, &p.IsDefault, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// FindDefault obtiene el precio por defecto del producto, o nil si no hay.
func (r *ProductPriceRepo) FindDefault(productID string) (*entity.ProductPrice, error) {
	query := `
		SELECT id, product_id, price, from_date, to_date, is_default, created_at
		FROM product_prices WHERE product_id = $1 AND is_default ORDER BY id LIMIT 1`
	var p entity.ProductPrice
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&p.ID, &p.ProductID, &p.Price, &p.FromDate, &p.ToDate, &p.IsDefault, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get default price: %w", err)
	}
	return &p, nil
}

// Delete elimina un precio por ID.
func (r *ProductPriceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product price: %w", err)
	}
	return nil
}
