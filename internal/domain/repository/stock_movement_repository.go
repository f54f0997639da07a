package repository

import "github.com/jortegav/retailos-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el ledger de
// inventario. Append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByUser(userID string, limit, offset int) ([]*entity.StockMovement, error)
	// ListByProduct devuelve el ledger completo de un producto en orden de
	// creación (el orden en que los deltas fueron aplicados).
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
