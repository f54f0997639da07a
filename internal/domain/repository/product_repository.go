package repository

import "github.com/jortegav/retailos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos de stock existen solo para el motor de inventario/facturación:
// toda mutación de stock debe ocurrir dentro de una transacción con su
// movimiento correspondiente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByUserAndName busca por tenant y nombre sin distinguir mayúsculas.
	GetByUserAndName(userID, name string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) durante la
	// transacción en curso. Devuelve nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock aplica stock = stock - qty solo si stock >= qty.
	// Devuelve false si la condición no se cumplió (ninguna fila afectada).
	DecrementStock(id string, qty int) (bool, error)
	IncrementStock(id string, qty int) error
	ListByUser(userID string, limit, offset int) ([]*entity.Product, error)
	// Delete elimina el producto del tenant. Devuelve false si no existía.
	Delete(userID, id string) (bool, error)
}
