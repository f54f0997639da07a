package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del tenant. Entidad independiente: el motor
// de facturación no la toca (las facturas denormalizan el nombre del cliente).
type Customer struct {
	ID             string
	UserID         string
	Name           string
	Type           string // retail | wholesale
	Email          string
	Phone          string
	Address        string
	TotalPurchases decimal.Decimal
	Credit         decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
