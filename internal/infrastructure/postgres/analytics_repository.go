package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jortegav/retailos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. Trabaja siempre
// sobre el pool: nunca participa en las transacciones de facturación.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDailySales agrupa ventas, ganancia y número de facturas por día del
// rango. Los días sin ventas no aparecen en el resultado.
func (r *AnalyticsRepo) GetDailySales(
	ctx context.Context,
	userID string,
	from, to time.Time,
) ([]repository.DailySales, error) {
	const query = `
	SELECT
	    date_trunc('day', created_at)  AS day,
	    COALESCE(SUM(total),  0)       AS total_sales,
	    COALESCE(SUM(profit), 0)       AS total_profit,
	    COUNT(*)                       AS invoice_count
	FROM invoices
	WHERE user_id = $1
	  AND created_at BETWEEN $2 AND $3
	GROUP BY day
	ORDER BY day`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDailySales: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySales
	for rows.Next() {
		var row repository.DailySales
		if err := rows.Scan(&row.Date, &row.TotalSales, &row.TotalProfit, &row.InvoiceCount); err != nil {
			return nil, fmt.Errorf("analytics.GetDailySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetProfitByProduct acumula la ganancia por producto sobre las líneas de
// factura del tenant, ordenada de mayor a menor. Agrupa por el nombre
// snapshot, así productos ya eliminados siguen apareciendo.
func (r *AnalyticsRepo) GetProfitByProduct(
	ctx context.Context,
	userID string,
) ([]repository.ProductProfit, error) {
	const query = `
	SELECT
	    d.product_name                              AS product_name,
	    COALESCE(SUM(d.profit * d.quantity), 0)     AS total_profit,
	    COALESCE(SUM(d.quantity), 0)                AS sales_count
	FROM invoice_items d
	JOIN invoices i ON i.id = d.invoice_id
	WHERE i.user_id = $1
	GROUP BY d.product_name
	ORDER BY total_profit DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProfitByProduct: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductProfit
	for rows.Next() {
		var row repository.ProductProfit
		if err := rows.Scan(&row.ProductName, &row.TotalProfit, &row.SalesCount); err != nil {
			return nil, fmt.Errorf("analytics.GetProfitByProduct scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetLowStockProducts devuelve los productos con stock en o por debajo del
// umbral mínimo configurado, los más críticos primero.
func (r *AnalyticsRepo) GetLowStockProducts(
	ctx context.Context,
	userID string,
) ([]repository.LowStockProduct, error) {
	const query = `
	SELECT id, name, stock, min_stock
	FROM products
	WHERE user_id = $1
	  AND stock <= min_stock
	ORDER BY stock - min_stock, name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetLowStockProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockProduct
	for rows.Next() {
		var row repository.LowStockProduct
		if err := rows.Scan(&row.ID, &row.Name, &row.Stock, &row.MinStock); err != nil {
			return nil, fmt.Errorf("analytics.GetLowStockProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
