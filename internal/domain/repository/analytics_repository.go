package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySales ventas agregadas de un día (para la serie del dashboard).
type DailySales struct {
	Date         time.Time
	TotalSales   decimal.Decimal
	TotalProfit  decimal.Decimal
	InvoiceCount int
}

// ProductProfit ganancia acumulada por producto (sobre líneas de factura).
type ProductProfit struct {
	ProductName string
	TotalProfit decimal.Decimal
	SalesCount  int
}

// LowStockProduct producto con stock en o por debajo del umbral mínimo.
type LowStockProduct struct {
	ID       string
	Name     string
	Stock    int
	MinStock int
}

// AnalyticsRepository consultas read-only para el dashboard. No participa en
// las transacciones del motor de facturación.
type AnalyticsRepository interface {
	GetDailySales(ctx context.Context, userID string, from, to time.Time) ([]DailySales, error)
	GetProfitByProduct(ctx context.Context, userID string) ([]ProductProfit, error)
	GetLowStockProducts(ctx context.Context, userID string) ([]LowStockProduct, error)
}
