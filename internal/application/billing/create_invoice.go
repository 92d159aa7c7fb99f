package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	domainpricing "github.com/jhoicas/Facturacion-api/internal/domain/pricing"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// CreateInvoiceUseCase crea facturas: resuelve el precio vigente de cada
// línea, calcula impuestos y totales con aritmética decimal exacta y
// persiste cabecera y detalles en una sola transacción.
type CreateInvoiceUseCase struct {
	txRunner     BillingTxRunner
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(txRunner BillingTxRunner, customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{txRunner: txRunner, customerRepo: customerRepo, invoiceRepo: invoiceRepo}
}

// CreateInvoice crea la factura completa. Por cada línea, en orden:
//
//  1. Busca el producto; si no existe aborta toda la operación con
//     ErrNotFound (no se persiste nada).
//  2. Resuelve el precio vigente hoy (override por rango gana sobre el
//     precio por defecto). Si no hay precio la tarifa es cero: se permite
//     facturar productos aún sin precio, no es un error.
//  3. SubTotal = rate × qty; TaxAmount = SubTotal × (tax/100);
//     TotalAmount = SubTotal + TaxAmount. El total acumulado de la factura
//     es la suma de los TotalAmount.
//
// Una lista de líneas vacía es válida y produce una factura con total 0.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id is required", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id is required in every item", domain.ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
		}
	}

	now := time.Now().UTC()
	var inv *entity.Invoice
	var details []*entity.InvoiceDetail

	err := uc.txRunner.RunBilling(ctx, func(
		productRepo repository.ProductRepository,
		priceRepo repository.ProductPriceRepository,
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		customer, err := customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return fmt.Errorf("Customer with ID %s %w", in.CustomerID, domain.ErrNotFound)
		}

		inv = &entity.Invoice{
			ID:          uuid.New().String(),
			CustomerID:  in.CustomerID,
			InvoiceDate: now,
			CreatedAt:   now,
		}

		grandTotal := decimal.Zero
		for _, item := range in.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("Product with ID %s %w", item.ProductID, domain.ErrNotFound)
			}

			// Tarifa cero si el producto aún no tiene precio configurado.
			rate := decimal.Zero
			prices, err := priceRepo.ListByProduct(item.ProductID)
			if err != nil {
				return err
			}
			if resolved, ok := domainpricing.Resolve(prices, now); ok {
				rate = resolved.Price
			}

			qty := decimal.NewFromInt(item.Quantity)
			subTotal := rate.Mul(qty)
			taxAmount := subTotal.Mul(product.TaxRate).Div(decimal.NewFromInt(100))
			totalAmount := subTotal.Add(taxAmount)

			details = append(details, &entity.InvoiceDetail{
				ID:          uuid.New().String(),
				InvoiceID:   inv.ID,
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				Rate:        rate,
				SubTotal:    subTotal,
				TaxAmount:   taxAmount,
				TotalAmount: totalAmount,
			})
			grandTotal = grandTotal.Add(totalAmount)
		}
		inv.Total = grandTotal

		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, detail := range details {
			if err := invoiceRepo.CreateDetail(detail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, details), nil
}

// GetByID obtiene una factura por ID con su detalle completo.
func (uc *CreateInvoiceUseCase) GetByID(_ context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("Invoice with ID %s %w", id, domain.ErrNotFound)
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, details), nil
}

// List lista todas las facturas (cabeceras, sin detalles).
func (uc *CreateInvoiceUseCase) List(_ context.Context) ([]dto.InvoiceListItemResponse, error) {
	list, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceListItemResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.InvoiceListItemResponse{
			ID:          inv.ID,
			CustomerID:  inv.CustomerID,
			InvoiceDate: inv.InvoiceDate,
			Total:       inv.Total,
		})
	}
	return out, nil
}

// ListDetails lista todas las líneas de detalle de todas las facturas.
func (uc *CreateInvoiceUseCase) ListDetails(_ context.Context) ([]dto.InvoiceDetailResponse, error) {
	list, err := uc.invoiceRepo.ListDetails()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDetailResponse(d))
	}
	return out, nil
}

// GetDetailByID obtiene una línea de detalle por ID.
func (uc *CreateInvoiceUseCase) GetDetailByID(_ context.Context, id string) (*dto.InvoiceDetailResponse, error) {
	d, err := uc.invoiceRepo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("Invoice detail with ID %s %w", id, domain.ErrNotFound)
	}
	resp := toDetailResponse(d)
	return &resp, nil
}

func toInvoiceResponse(inv *entity.Invoice, details []*entity.InvoiceDetail) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		InvoiceDate: inv.InvoiceDate,
		Total:       inv.Total,
		Details:     make([]dto.InvoiceDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, toDetailResponse(d))
	}
	return resp
}

func toDetailResponse(d *entity.InvoiceDetail) dto.InvoiceDetailResponse {
	return dto.InvoiceDetailResponse{
		ID:          d.ID,
		InvoiceID:   d.InvoiceID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
		Rate:        d.Rate,
		SubTotal:    d.SubTotal,
		TaxAmount:   d.TaxAmount,
		TotalAmount: d.TotalAmount,
	}
}
