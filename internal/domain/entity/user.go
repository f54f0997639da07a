package entity

import "time"

// User representa la cuenta de negocio (tenant). Todo Product, Invoice,
// Customer y StockMovement pertenece exclusivamente a un User.
type User struct {
	ID           string
	Email        string // único global
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Name         string
	BusinessName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
