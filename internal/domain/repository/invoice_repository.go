package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus
// detalles. Las facturas son inmutables: no hay Update ni Delete.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateDetail(detail *entity.InvoiceDetail) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error)
	GetDetailByID(id string) (*entity.InvoiceDetail, error)
	ListDetails() ([]*entity.InvoiceDetail, error)
}
