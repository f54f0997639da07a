package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un tenant (UserID).
// Name es único por tenant (sin distinguir mayúsculas); SKU es único global.
// Stock solo se modifica vía el motor de facturación o movimientos de inventario,
// nunca por edición directa del producto.
type Product struct {
	ID             string
	UserID         string
	Name           string
	SKU            string
	CostPrice      decimal.Decimal
	RetailPrice    decimal.Decimal
	WholesalePrice decimal.Decimal
	Stock          int // invariante: nunca negativo
	MinStock       int // umbral de alerta de stock bajo
	Category       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
