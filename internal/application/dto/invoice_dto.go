package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineRequest una línea solicitada: producto y cantidad. Los precios
// los resuelve el motor contra el catálogo, nunca vienen del cliente.
type InvoiceLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateInvoiceRequest entrada para crear una factura.
type CreateInvoiceRequest struct {
	BusinessName string               `json:"business_name"`
	CustomerName string               `json:"customer_name"`
	CustomerType string               `json:"customer_type"` // retail | wholesale
	Items        []InvoiceLineRequest `json:"items"`
	TaxPercent   decimal.Decimal      `json:"tax_percent"`
	DueDate      string               `json:"due_date"` // YYYY-MM-DD
}

// UpdateInvoiceStatusRequest entrada para la transición de estado.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"` // paid | partial
}

// InvoiceItemResponse salida de una línea de factura.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Profit      decimal.Decimal `json:"profit"`
}

// InvoiceResponse salida de una factura; Items solo en detalle.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	BusinessName string                `json:"business_name"`
	CustomerName string                `json:"customer_name"`
	CustomerType string                `json:"customer_type"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	TaxAmount    decimal.Decimal       `json:"tax_amount"`
	Total        decimal.Decimal       `json:"total"`
	Profit       decimal.Decimal       `json:"profit"`
	Status       string                `json:"status"`
	DueDate      string                `json:"due_date"`
	CreatedAt    time.Time             `json:"created_at"`
	Items        []InvoiceItemResponse `json:"items,omitempty"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
