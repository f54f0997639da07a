package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de inventario.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // in | out
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// StockMovementResponse salida de un movimiento del ledger.
type StockMovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ReconciliationResponse resultado de reconciliar el ledger de un producto:
// el stock implicado por la suma de deltas contra el stock vigente.
type ReconciliationResponse struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	CurrentStock  int    `json:"current_stock"`
	ImpliedStock  int    `json:"implied_stock"`
	MovementCount int    `json:"movement_count"`
	Consistent    bool   `json:"consistent"`
}
