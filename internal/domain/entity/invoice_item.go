package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem representa una línea de una factura. CostPrice y SalePrice son
// snapshots tomados al momento de la venta: ediciones posteriores del producto
// no alteran facturas históricas. Se crea una vez y nunca se modifica.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	ProductName string // snapshot del nombre al momento de la venta
	Quantity    int    // entero positivo
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal // retail o wholesale según el tipo de cliente
	Profit      decimal.Decimal // por unidad: SalePrice - CostPrice
	CreatedAt   time.Time
}
