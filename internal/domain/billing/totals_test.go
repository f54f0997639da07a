package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jortegav/retailos-api/internal/domain/billing"
	"github.com/jortegav/retailos-api/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// SalePriceFor
// ──────────────────────────────────────────────────────────────────────────────

func TestSalePriceFor_RetailUsaPrecioRetail(t *testing.T) {
	p := &entity.Product{RetailPrice: d("80"), WholesalePrice: d("65")}
	assert.True(t, d("80").Equal(billing.SalePriceFor(entity.CustomerTypeRetail, p)))
}

func TestSalePriceFor_WholesaleUsaPrecioMayorista(t *testing.T) {
	p := &entity.Product{RetailPrice: d("80"), WholesalePrice: d("65")}
	assert.True(t, d("65").Equal(billing.SalePriceFor(entity.CustomerTypeWholesale, p)))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

// Caso de referencia: 3 unidades a costo 50 y precio retail 80, IVA 10%.
// Subtotal 240, impuesto 24, total 264, ganancia 90.
func TestComputeTotals_LineaRetailConImpuesto(t *testing.T) {
	totals := billing.ComputeTotals([]billing.Line{
		{Quantity: 3, CostPrice: d("50"), SalePrice: d("80")},
	}, d("10"))

	assert.True(t, d("240").Equal(totals.Subtotal), "subtotal: %s", totals.Subtotal)
	assert.True(t, d("24").Equal(totals.TaxAmount), "impuesto: %s", totals.TaxAmount)
	assert.True(t, d("264").Equal(totals.Total), "total: %s", totals.Total)
	assert.True(t, d("90").Equal(totals.Profit), "ganancia: %s", totals.Profit)
}

func TestComputeTotals_VariasLineasSumanYRespetanInvariante(t *testing.T) {
	totals := billing.ComputeTotals([]billing.Line{
		{Quantity: 2, CostPrice: d("10.50"), SalePrice: d("15.99")},
		{Quantity: 1, CostPrice: d("100"), SalePrice: d("150")},
		{Quantity: 5, CostPrice: d("3"), SalePrice: d("4.20")},
	}, d("19"))

	// Total = Subtotal + TaxAmount siempre
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)))

	// Subtotal = 31.98 + 150 + 21 = 202.98
	assert.True(t, d("202.98").Equal(totals.Subtotal), "subtotal: %s", totals.Subtotal)
	// Profit = 10.98 + 50 + 6 = 66.98
	assert.True(t, d("66.98").Equal(totals.Profit), "ganancia: %s", totals.Profit)
}

func TestComputeTotals_ImpuestoCeroNoAlteraElTotal(t *testing.T) {
	totals := billing.ComputeTotals([]billing.Line{
		{Quantity: 4, CostPrice: d("25"), SalePrice: d("40")},
	}, decimal.Zero)

	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.Equal(totals.Subtotal))
}

func TestComputeTotals_SinLineasTodoEnCero(t *testing.T) {
	totals := billing.ComputeTotals(nil, d("10"))

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Profit.IsZero())
}

// Venta bajo costo: la ganancia puede ser negativa, el motor no lo impide.
func TestComputeTotals_GananciaNegativaPermitida(t *testing.T) {
	totals := billing.ComputeTotals([]billing.Line{
		{Quantity: 2, CostPrice: d("50"), SalePrice: d("30")},
	}, decimal.Zero)

	assert.True(t, d("-40").Equal(totals.Profit), "ganancia: %s", totals.Profit)
}
