package billing

import (
	"context"

	"github.com/jortegav/retailos-api/internal/domain/repository"
)

// TxRunner ejecuta el caso de uso de facturación dentro de una sola
// transacción de BD: factura, líneas, descuentos de stock y filas del ledger
// se confirman juntos o se revierten juntos.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
