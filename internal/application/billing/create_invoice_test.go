package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
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
func (r *fakePriceRepo) GetByID(string) (*entity.ProductPrice, error) { return nil, nil }
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
func (r *fakePriceRepo) Delete(string) error { return nil }

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) Delete(id string) error          { delete(r.customers, id); return nil }

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	details  []*entity.InvoiceDetail
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.invoices = append(r.invoices, inv)
	return nil
}
func (r *fakeInvoiceRepo) CreateDetail(d *entity.InvoiceDetail) error {
	r.details = append(r.details, d)
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) { return r.invoices, nil }
func (r *fakeInvoiceRepo) GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error) {
	var out []*entity.InvoiceDetail
	for _, d := range r.details {
		if d.InvoiceID == invoiceID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeInvoiceRepo) GetDetailByID(id string) (*entity.InvoiceDetail, error) {
	for _, d := range r.details {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (r *fakeInvoiceRepo) ListDetails() ([]*entity.InvoiceDetail, error) { return r.details, nil }

// fakeBillingTx simula la transacción: el rollback se emula restaurando el
// estado del repo de facturas si el callback falla.
type fakeBillingTx struct {
	productRepo  *fakeProductRepo
	priceRepo    *fakePriceRepo
	customerRepo *fakeCustomerRepo
	invoiceRepo  *fakeInvoiceRepo
}

func (r *fakeBillingTx) RunBilling(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	priceRepo repository.ProductPriceRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	invBefore := len(r.invoiceRepo.invoices)
	detBefore := len(r.invoiceRepo.details)
	if err := fn(r.productRepo, r.priceRepo, r.customerRepo, r.invoiceRepo); err != nil {
		r.invoiceRepo.invoices = r.invoiceRepo.invoices[:invBefore]
		r.invoiceRepo.details = r.invoiceRepo.details[:detBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCustomerID = "c-1"
	testProductID  = "prod-1"
)

type fixture struct {
	uc          *billing.CreateInvoiceUseCase
	priceRepo   *fakePriceRepo
	invoiceRepo *fakeInvoiceRepo
}

// newFixture arma un caso de uso con un cliente y un producto (IVA 10%)
// con precio por defecto 50.
func newFixture() *fixture {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {
			ID:      testProductID,
			Name:    "Mouse inalámbrico",
			TaxRate: decimal.NewFromInt(10),
		},
	}}
	priceRepo := &fakePriceRepo{prices: []*entity.ProductPrice{
		{ID: "p-default", ProductID: testProductID, Price: decimal.NewFromInt(50), IsDefault: true},
	}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		testCustomerID: {ID: testCustomerID, Name: "Cliente Uno", Email: "uno@example.com"},
	}}
	invoiceRepo := &fakeInvoiceRepo{}
	tx := &fakeBillingTx{
		productRepo:  productRepo,
		priceRepo:    priceRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
	return &fixture{
		uc:          billing.NewCreateInvoiceUseCase(tx, customerRepo, invoiceRepo),
		priceRepo:   priceRepo,
		invoiceRepo: invoiceRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_CalculaImportesPorLinea(t *testing.T) {
	f := newFixture()

	// Tarifa 50, cantidad 2, IVA 10%:
	//   subTotal = 100, taxAmount = 10, totalAmount = 110
	out, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
		Items:      []dto.InvoiceItemRequest{{ProductID: testProductID, Quantity: 2}},
	})

	require.NoError(t, err)
	require.Len(t, out.Details, 1)

	d := out.Details[0]
	assert.True(t, decimal.NewFromInt(50).Equal(d.Rate), "rate = %s", d.Rate)
	assert.True(t, decimal.NewFromInt(100).Equal(d.SubTotal), "subTotal = %s", d.SubTotal)
	assert.True(t, decimal.NewFromInt(10).Equal(d.TaxAmount), "taxAmount = %s", d.TaxAmount)
	assert.True(t, decimal.NewFromInt(110).Equal(d.TotalAmount), "totalAmount = %s", d.TotalAmount)
	assert.True(t, decimal.NewFromInt(110).Equal(out.Total), "total = %s", out.Total)

	require.Len(t, f.invoiceRepo.invoices, 1)
	require.Len(t, f.invoiceRepo.details, 1)
}

func TestCreateInvoice_OverrideVigenteGanaSobreDefault(t *testing.T) {
	f := newFixture()

	// Override que cubre hoy: la tarifa de la línea debe ser 40, no 50.
	from := time.Now().UTC().AddDate(0, 0, -1)
	to := time.Now().UTC().AddDate(0, 0, 1)
	f.priceRepo.prices = append(f.priceRepo.prices, &entity.ProductPrice{
		ID: "p-promo", ProductID: testProductID,
		Price:    decimal.NewFromInt(40),
		FromDate: &from,
		ToDate:   &to,
	})

	out, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
		Items:      []dto.InvoiceItemRequest{{ProductID: testProductID, Quantity: 1}},
	})

	require.NoError(t, err)
	require.Len(t, out.Details, 1)
	assert.True(t, decimal.NewFromInt(40).Equal(out.Details[0].Rate))
}

func TestCreateInvoice_SinPrecioTarifaCero(t *testing.T) {
	f := newFixture()
	f.priceRepo.prices = nil // el producto no tiene ningún precio

	out, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
		Items:      []dto.InvoiceItemRequest{{ProductID: testProductID, Quantity: 3}},
	})

	require.NoError(t, err, "facturar un producto sin precio no es error: tarifa cero")
	require.Len(t, out.Details, 1)
	assert.True(t, out.Details[0].Rate.IsZero())
	assert.True(t, out.Total.IsZero())
}

func TestCreateInvoice_ListaVaciaTotalCero(t *testing.T) {
	f := newFixture()

	out, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Details)
	assert.True(t, out.Total.IsZero())
	assert.Len(t, f.invoiceRepo.invoices, 1, "la cabecera sí se persiste")
}

func TestCreateInvoice_ProductoInexistenteAbortaTodo(t *testing.T) {
	f := newFixture()

	// La primera línea es válida; la segunda referencia un producto
	// inexistente. No debe persistirse nada.
	_, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductID, Quantity: 1},
			{ProductID: "no-such-product", Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product with ID no-such-product not found", err.Error())
	assert.Empty(t, f.invoiceRepo.invoices, "no debe quedar cabecera persistida")
	assert.Empty(t, f.invoiceRepo.details, "no deben quedar detalles persistidos")
}

func TestCreateInvoice_ClienteInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: "no-such-customer",
		Items:      []dto.InvoiceItemRequest{{ProductID: testProductID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.invoiceRepo.invoices)
}

func TestCreateInvoice_ValidacionesDeEntrada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "customer_id es obligatorio")

	_, err = f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
		Items:      []dto.InvoiceItemRequest{{ProductID: testProductID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity debe ser positiva")

	_, err = f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
		Items:      []dto.InvoiceItemRequest{{Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "product_id es obligatorio en cada ítem")
}

func TestCreateInvoice_DecimalesSinErrorDeFlotante(t *testing.T) {
	f := newFixture()

	// Tarifa 19.99 e IVA 10%: con float64 habría ruido de redondeo; con
	// decimal el resultado es exacto.
	f.priceRepo.prices = []*entity.ProductPrice{{
		ID: "p-default", ProductID: testProductID,
		Price:     decimal.RequireFromString("19.99"),
		IsDefault: true,
	}}

	out, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
		Items:      []dto.InvoiceItemRequest{{ProductID: testProductID, Quantity: 3}},
	})

	require.NoError(t, err)
	d := out.Details[0]
	assert.True(t, decimal.RequireFromString("59.97").Equal(d.SubTotal), "subTotal = %s", d.SubTotal)
	assert.True(t, decimal.RequireFromString("5.997").Equal(d.TaxAmount), "taxAmount = %s", d.TaxAmount)
	assert.True(t, decimal.RequireFromString("65.967").Equal(d.TotalAmount), "totalAmount = %s", d.TotalAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_ConDetalles(t *testing.T) {
	f := newFixture()

	created, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: testCustomerID,
		Items:      []dto.InvoiceItemRequest{{ProductID: testProductID, Quantity: 2}},
	})
	require.NoError(t, err)

	got, err := f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Details, 1)
	assert.True(t, created.Total.Equal(got.Total))
}

func TestGetByID_Inexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.GetByID(context.Background(), "no-such-invoice")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
