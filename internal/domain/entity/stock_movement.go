package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement representa una entrada del ledger de inventario: append-only,
// exactamente una fila por cada delta aplicado al stock de un producto.
// La suma de deltas en orden de creación debe reproducir el stock actual.
type StockMovement struct {
	ID          string
	UserID      string
	ProductID   string
	ProductName string // snapshot
	Type        string // in | out
	Quantity    int    // siempre positivo; el signo lo da Type
	Reason      string // ej. "Invoice #INV-1735689600", "Initial stock"
	CreatedAt   time.Time
}

// Delta devuelve el efecto del movimiento sobre el stock (+cantidad o -cantidad).
func (m *StockMovement) Delta() int {
	if m.Type == MovementTypeOut {
		return -m.Quantity
	}
	return m.Quantity
}
