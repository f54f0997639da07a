package dto

import "github.com/shopspring/decimal"

// DailySalesDTO punto de la serie de ventas diarias.
type DailySalesDTO struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	InvoiceCount int             `json:"invoice_count"`
}

// ProductProfitDTO ganancia acumulada por producto.
type ProductProfitDTO struct {
	ProductName string          `json:"product_name"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	SalesCount  int             `json:"sales_count"`
}

// LowStockProductDTO producto en o bajo su umbral mínimo.
type LowStockProductDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// DashboardSummaryDTO resumen del dashboard (últimos 30 días).
type DashboardSummaryDTO struct {
	SalesData        []DailySalesDTO      `json:"sales_data"`
	ProfitByProduct  []ProductProfitDTO   `json:"profit_by_product"`
	LowStockProducts []LowStockProductDTO `json:"low_stock_products"`
}
