// Package billing contiene la lógica financiera pura de facturación
// (servicios de dominio, sin persistencia).
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jortegav/retailos-api/internal/domain/entity"
)

// Line es una línea valorizada de una factura: precios ya snapshoteados.
type Line struct {
	Quantity  int
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
}

// Totals agrupa los totales financieros de una factura.
// Invariantes: Total = Subtotal + TaxAmount; Profit = Σ (sale-cost) × qty.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	Profit    decimal.Decimal
}

// SalePriceFor selecciona el precio de venta según el tipo de cliente:
// retail → RetailPrice, wholesale → WholesalePrice.
func SalePriceFor(customerType string, p *entity.Product) decimal.Decimal {
	if customerType == entity.CustomerTypeWholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

// ComputeTotals calcula subtotal, impuesto, total y ganancia de una factura.
// taxPercent es porcentaje (10 = 10%): TaxAmount = Subtotal × taxPercent / 100.
func ComputeTotals(lines []Line, taxPercent decimal.Decimal) Totals {
	var subtotal, profit decimal.Decimal
	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		subtotal = subtotal.Add(l.SalePrice.Mul(qty))
		profit = profit.Add(l.SalePrice.Sub(l.CostPrice).Mul(qty))
	}
	taxAmount := subtotal.Mul(taxPercent).Div(decimal.NewFromInt(100))
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
		Profit:    profit,
	}
}
