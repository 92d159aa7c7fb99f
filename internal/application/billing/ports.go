package billing

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción con los
// repos que necesita la creación de facturas. Todo CreateInvoice corre
// dentro de una sola transacción: las lecturas de productos y precios y el
// insert de cabecera y detalles comparten snapshot, y un AddPrice
// concurrente no puede observarse a mitad de la resolución de líneas.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		priceRepo repository.ProductPriceRepository,
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoiceLineForPDF línea de factura con el nombre del producto ya resuelto,
// lista para el render.
type InvoiceLineForPDF struct {
	Detail      *entity.InvoiceDetail
	ProductName string
}

// InvoicePDFGenerator puerto para generar la representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer, lines []InvoiceLineForPDF) ([]byte, error)
}
