package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock es el inventario
// inicial; queda registrado en el ledger como movimiento de entrada.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Stock          int             `json:"stock"`
	MinStock       int             `json:"min_stock"`
	Category       string          `json:"category"`
}

// UpdateProductRequest entrada para actualizar un producto. No incluye Stock:
// el inventario solo cambia vía movimientos o facturas.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	CostPrice      *decimal.Decimal `json:"cost_price"`
	RetailPrice    *decimal.Decimal `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	MinStock       *int             `json:"min_stock"`
	Category       *string          `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Stock          int             `json:"stock"`
	MinStock       int             `json:"min_stock"`
	Category       string          `json:"category"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
