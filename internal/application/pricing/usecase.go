package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	domainpricing "github.com/jhoicas/Facturacion-api/internal/domain/pricing"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// UseCase casos de uso de precios: agregar un precio (por defecto o por
// rango, con validaciones) y resolver el precio vigente hoy.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	priceRepo   repository.ProductPriceRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, priceRepo repository.ProductPriceRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, priceRepo: priceRepo}
}

// AddPrice agrega un precio a un producto dentro de una sola transacción.
//
//   - ErrNotFound si el producto no existe.
//   - Default: ErrConflict si el producto ya tiene precio por defecto.
//   - Por rango: ErrInvalidInput si falta alguna fecha o FromDate >= ToDate;
//     ErrConflict si el rango se solapa (inclusivo) con otro rango existente.
func (uc *UseCase) AddPrice(ctx context.Context, productID string, in dto.AddPriceRequest) (*dto.PriceResponse, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	var created *entity.ProductPrice
	err := uc.txRunner.RunPricing(ctx, func(productRepo repository.ProductRepository, priceRepo repository.ProductPriceRepository) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("Product with ID %s %w", productID, domain.ErrNotFound)
		}

		price := &entity.ProductPrice{
			ID:        uuid.New().String(),
			ProductID: productID,
			Price:     in.Price,
			IsDefault: in.IsDefault,
			CreatedAt: time.Now().UTC(),
		}

		if in.IsDefault {
			existing, err := priceRepo.FindDefault(productID)
			if err != nil {
				return err
			}
			if existing != nil {
				return fmt.Errorf("%w: default price already exists for this product", domain.ErrConflict)
			}
			// Un precio por defecto no lleva rango, venga lo que venga en el request.
			price.FromDate = nil
			price.ToDate = nil
		} else {
			if in.FromDate == nil || in.ToDate == nil {
				return fmt.Errorf("%w: from_date and to_date must be provided for a non-default price", domain.ErrInvalidInput)
			}
			if !in.FromDate.Before(*in.ToDate) {
				return fmt.Errorf("%w: from_date must be earlier than to_date", domain.ErrInvalidInput)
			}
			existing, err := priceRepo.ListByProduct(productID)
			if err != nil {
				return err
			}
			if domainpricing.ConflictsWith(*in.FromDate, *in.ToDate, existing) {
				return fmt.Errorf("%w: a price already exists for this product in the given date range", domain.ErrConflict)
			}
			price.FromDate = in.FromDate
			price.ToDate = in.ToDate
		}

		if err := priceRepo.Create(price); err != nil {
			return err
		}
		created = price
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPriceResponse(created), nil
}

// GetPriceForToday resuelve el precio vigente hoy (UTC) para un producto:
// el precio por rango que cubre hoy gana sobre el precio por defecto.
// Devuelve ErrNotFound si el producto no existe o si no hay precio disponible.
func (uc *UseCase) GetPriceForToday(ctx context.Context, productID string) (*dto.PriceForTodayResponse, error) {
	return uc.GetPriceForDate(ctx, productID, time.Now().UTC())
}

// GetPriceForDate resuelve el precio vigente en una fecha de referencia.
func (uc *UseCase) GetPriceForDate(_ context.Context, productID string, ref time.Time) (*dto.PriceForTodayResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("Product with ID %s %w", productID, domain.ErrNotFound)
	}
	prices, err := uc.priceRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	resolved, ok := domainpricing.Resolve(prices, ref)
	if !ok {
		return nil, fmt.Errorf("%w: no price available for today", domain.ErrNotFound)
	}
	return &dto.PriceForTodayResponse{
		ProductID: productID,
		Date:      ref.UTC().Format("2006-01-02"),
		Price:     resolved.Price,
		IsDefault: resolved.IsDefault,
	}, nil
}

// ListByProduct devuelve todos los precios registrados de un producto.
func (uc *UseCase) ListByProduct(_ context.Context, productID string) ([]dto.PriceResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("Product with ID %s %w", productID, domain.ErrNotFound)
	}
	prices, err := uc.priceRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, *toPriceResponse(p))
	}
	return out, nil
}

func toPriceResponse(p *entity.ProductPrice) *dto.PriceResponse {
	if p == nil {
		return nil
	}
	return &dto.PriceResponse{
		ID:        p.ID,
		ProductID: p.ProductID,
		Price:     p.Price,
		FromDate:  p.FromDate,
		ToDate:    p.ToDate,
		IsDefault: p.IsDefault,
		CreatedAt: p.CreatedAt,
	}
}
