// Package analytics contiene el caso de uso del dashboard de negocio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/domain/repository"
)

const dashboardSalesDays = 30 // ventana de la serie diaria del dashboard

// DashboardUseCase genera el resumen del dashboard: serie de ventas diarias,
// ganancia por producto y productos con stock bajo.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el tenant indicado.
//
// Tres llamadas en paralelo:
//  1. GetDailySales(últimos 30 días) → SalesData
//  2. GetProfitByProduct             → ProfitByProduct
//  3. GetLowStockProducts            → LowStockProducts
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	userID string,
) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rango de fechas ────────────────────────────────────────────────────────
	// Últimos 30 días incluyendo hoy completo
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := todayStart.AddDate(0, 0, -(dashboardSalesDays - 1))
	to := todayStart.Add(24*time.Hour - time.Nanosecond)

	// ── Goroutines para paralelizar las 3 consultas DB ────────────────────────
	type salesResult struct {
		rows []repository.DailySales
		err  error
	}
	type profitResult struct {
		rows []repository.ProductProfit
		err  error
	}
	type lowStockResult struct {
		rows []repository.LowStockProduct
		err  error
	}

	salesCh := make(chan salesResult, 1)
	profitCh := make(chan profitResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetDailySales(ctx, userID, from, to)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetProfitByProduct(ctx, userID)
		profitCh <- profitResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetLowStockProducts(ctx, userID)
		lowStockCh <- lowStockResult{rows, err}
	}()

	sales := <-salesCh
	profit := <-profitCh
	lowStock := <-lowStockCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas diarias: %w", sales.err)
	}
	if profit.err != nil {
		return nil, fmt.Errorf("dashboard: ganancia por producto: %w", profit.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	summary := &dto.DashboardSummaryDTO{
		SalesData:        make([]dto.DailySalesDTO, 0, len(sales.rows)),
		ProfitByProduct:  make([]dto.ProductProfitDTO, 0, len(profit.rows)),
		LowStockProducts: make([]dto.LowStockProductDTO, 0, len(lowStock.rows)),
	}
	for _, row := range sales.rows {
		summary.SalesData = append(summary.SalesData, dto.DailySalesDTO{
			Date:         row.Date.Format("2006-01-02"),
			TotalSales:   row.TotalSales.Round(2),
			TotalProfit:  row.TotalProfit.Round(2),
			InvoiceCount: row.InvoiceCount,
		})
	}
	for _, row := range profit.rows {
		summary.ProfitByProduct = append(summary.ProfitByProduct, dto.ProductProfitDTO{
			ProductName: row.ProductName,
			TotalProfit: row.TotalProfit.Round(2),
			SalesCount:  row.SalesCount,
		})
	}
	for _, row := range lowStock.rows {
		summary.LowStockProducts = append(summary.LowStockProducts, dto.LowStockProductDTO{
			ID:       row.ID,
			Name:     row.Name,
			Stock:    row.Stock,
			MinStock: row.MinStock,
		})
	}
	return summary, nil
}
