package repository

import "github.com/jortegav/retailos-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Invoice, error)
	// UpdateStatus persiste la transición de estado; la validez de la
	// transición la decide el caso de uso, no el repositorio.
	UpdateStatus(invoice *entity.Invoice) error
}
