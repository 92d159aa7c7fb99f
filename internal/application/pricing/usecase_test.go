package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	apppricing "github.com/jhoicas/Facturacion-api/internal/application/pricing"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error         { delete(r.products, id); return nil }

type fakePriceRepo struct {
	prices []*entity.ProductPrice
}

func (r *fakePriceRepo) Create(p *entity.ProductPrice) error {
	r.prices = append(r.prices, p)
	return nil
}
func (r *fakePriceRepo) GetByID(id string) (*entity.ProductPrice, error) {
	for _, p := range r.prices {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePriceRepo) ListByProduct(productID string) ([]*entity.ProductPrice, error) {
	var out []*entity.ProductPrice
	for _, p := range r.prices {
		if p.ProductID == productID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakePriceRepo) FindDefault(productID string) (*entity.ProductPrice, error) {
	for _, p := range r.prices {
		if p.ProductID == productID && p.IsDefault {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePriceRepo) Delete(id string) error {
	for i, p := range r.prices {
		if p.ID == id {
			r.prices = append(r.prices[:i], r.prices[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin
// transacción real.
type fakeTxRunner struct {
	productRepo repository.ProductRepository
	priceRepo   repository.ProductPriceRepository
}

func (r *fakeTxRunner) RunPricing(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	priceRepo repository.ProductPriceRepository,
) error) error {
	return fn(r.productRepo, r.priceRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testProductID = "11111111-1111-1111-1111-111111111111"

func buildUseCase(prices ...*entity.ProductPrice) (*apppricing.UseCase, *fakePriceRepo) {
	productRepo := newFakeProductRepo(&entity.Product{
		ID:      testProductID,
		Name:    "Monitor 27\"",
		TaxRate: decimal.NewFromInt(19),
	})
	priceRepo := &fakePriceRepo{prices: prices}
	tx := &fakeTxRunner{productRepo: productRepo, priceRepo: priceRepo}
	return apppricing.NewUseCase(tx, productRepo, priceRepo), priceRepo
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// ──────────────────────────────────────────────────────────────────────────────
// AddPrice
// ──────────────────────────────────────────────────────────────────────────────

func TestAddPrice_DefaultOK(t *testing.T) {
	uc, priceRepo := buildUseCase()

	out, err := uc.AddPrice(context.Background(), testProductID, dto.AddPriceRequest{
		Price:     decimal.NewFromInt(100),
		IsDefault: true,
	})

	require.NoError(t, err)
	assert.True(t, out.IsDefault)
	assert.Nil(t, out.FromDate)
	assert.Nil(t, out.ToDate)
	assert.Len(t, priceRepo.prices, 1)
}

func TestAddPrice_SegundoDefaultRechazado(t *testing.T) {
	uc, priceRepo := buildUseCase(&entity.ProductPrice{
		ID: "p-1", ProductID: testProductID,
		Price: decimal.NewFromInt(100), IsDefault: true,
	})

	_, err := uc.AddPrice(context.Background(), testProductID, dto.AddPriceRequest{
		Price:     decimal.NewFromInt(120),
		IsDefault: true,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, priceRepo.prices, 1, "el duplicado no debe persistirse")
}

func TestAddPrice_RangoSinFechasRechazado(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.AddPrice(context.Background(), testProductID, dto.AddPriceRequest{
		Price:    decimal.NewFromInt(80),
		FromDate: datePtr(2026, time.June, 1), // falta to_date
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddPrice_FromPosteriorOIgualAToRechazado(t *testing.T) {
	uc, _ := buildUseCase()

	// from == to
	_, err := uc.AddPrice(context.Background(), testProductID, dto.AddPriceRequest{
		Price:    decimal.NewFromInt(80),
		FromDate: datePtr(2026, time.June, 10),
		ToDate:   datePtr(2026, time.June, 10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// from > to
	_, err = uc.AddPrice(context.Background(), testProductID, dto.AddPriceRequest{
		Price:    decimal.NewFromInt(80),
		FromDate: datePtr(2026, time.June, 10),
		ToDate:   datePtr(2026, time.June, 1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddPrice_RangoSolapadoRechazado(t *testing.T) {
	uc, priceRepo := buildUseCase(&entity.ProductPrice{
		ID: "p-1", ProductID: testProductID,
		Price:    decimal.NewFromInt(80),
		FromDate: datePtr(2026, time.June, 1),
		ToDate:   datePtr(2026, time.June, 10),
	})

	// Comparte el día 10 con el rango existente: bordes inclusivos.
	_, err := uc.AddPrice(context.Background(), testProductID, dto.AddPriceRequest{
		Price:    decimal.NewFromInt(70),
		FromDate: datePtr(2026, time.June, 10),
		ToDate:   datePtr(2026, time.June, 20),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, priceRepo.prices, 1)
}

func TestAddPrice_RangoAdyacenteAceptado(t *testing.T) {
	uc, priceRepo := buildUseCase(&entity.ProductPrice{
		ID: "p-1", ProductID: testProductID,
		Price:    decimal.NewFromInt(80),
		FromDate: datePtr(2026, time.June, 1),
		ToDate:   datePtr(2026, time.June, 5),
	})

	// [6, 10] no comparte ningún día con [1, 5].
	out, err := uc.AddPrice(context.Background(), testProductID, dto.AddPriceRequest{
		Price:    decimal.NewFromInt(70),
		FromDate: datePtr(2026, time.June, 6),
		ToDate:   datePtr(2026, time.June, 10),
	})

	require.NoError(t, err)
	assert.False(t, out.IsDefault)
	assert.Len(t, priceRepo.prices, 2)
}

func TestAddPrice_ProductoInexistente(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.AddPrice(context.Background(), "no-such-id", dto.AddPriceRequest{
		Price:     decimal.NewFromInt(100),
		IsDefault: true,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product with ID no-such-id not found", err.Error())
}

func TestAddPrice_PrecioNegativoRechazado(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.AddPrice(context.Background(), testProductID, dto.AddPriceRequest{
		Price:     decimal.NewFromInt(-5),
		IsDefault: true,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetPriceForDate / GetPriceForToday
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPriceForDate_OverrideGanaSobreDefault(t *testing.T) {
	uc, _ := buildUseCase(
		&entity.ProductPrice{
			ID: "p-default", ProductID: testProductID,
			Price: decimal.NewFromInt(100), IsDefault: true,
		},
		&entity.ProductPrice{
			ID: "p-promo", ProductID: testProductID,
			Price:    decimal.NewFromInt(80),
			FromDate: datePtr(2026, time.June, 1),
			ToDate:   datePtr(2026, time.June, 30),
		},
	)

	dentro, err := uc.GetPriceForDate(context.Background(), testProductID, time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(80).Equal(dentro.Price))
	assert.False(t, dentro.IsDefault)
	assert.Equal(t, "2026-06-15", dentro.Date)

	fuera, err := uc.GetPriceForDate(context.Background(), testProductID, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(fuera.Price))
	assert.True(t, fuera.IsDefault)
}

func TestGetPriceForDate_SinPrecio(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.GetPriceForDate(context.Background(), testProductID, time.Now().UTC())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPriceForDate_ProductoInexistente(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.GetPriceForDate(context.Background(), "no-such-id", time.Now().UTC())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestListByProduct(t *testing.T) {
	uc, _ := buildUseCase(
		&entity.ProductPrice{ID: "p-1", ProductID: testProductID, Price: decimal.NewFromInt(100), IsDefault: true},
		&entity.ProductPrice{ID: "p-2", ProductID: "otro-producto", Price: decimal.NewFromInt(50), IsDefault: true},
	)

	out, err := uc.ListByProduct(context.Background(), testProductID)

	require.NoError(t, err)
	require.Len(t, out, 1, "solo los precios del producto consultado")
	assert.Equal(t, "p-1", out[0].ID)
}
