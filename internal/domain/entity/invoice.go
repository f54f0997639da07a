package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cliente para la facturación: determinan el precio aplicado por línea.
const (
	CustomerTypeRetail    = "retail"
	CustomerTypeWholesale = "wholesale"
)

// Estados de una factura.
const (
	InvoiceStatusPending = "pending" // estado inicial, siempre
	InvoiceStatusPaid    = "paid"    // terminal
	InvoiceStatusPartial = "partial" // intermedio, solo puede ir a paid
)

// Invoice representa la cabecera de una factura. Inmutable después de creada,
// salvo la transición de Status.
type Invoice struct {
	ID           string
	UserID       string
	Number       string // consecutivo legible, ej. INV-1735689600; referenciado por el ledger
	BusinessName string
	CustomerName string
	CustomerType string // retail | wholesale
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	Total        decimal.Decimal // Subtotal + TaxAmount
	Profit       decimal.Decimal // Σ (profit unitario × cantidad)
	Status       string
	DueDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidCustomerType indica si el tipo de cliente es retail o wholesale.
func ValidCustomerType(t string) bool {
	return t == CustomerTypeRetail || t == CustomerTypeWholesale
}

// CanTransitionStatus valida la máquina de estados de la factura:
// pending → paid, pending → partial, partial → paid. Nada sale de paid.
func CanTransitionStatus(from, to string) bool {
	switch from {
	case InvoiceStatusPending:
		return to == InvoiceStatusPaid || to == InvoiceStatusPartial
	case InvoiceStatusPartial:
		return to == InvoiceStatusPaid
	}
	return false
}
