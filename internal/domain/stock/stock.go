// Package stock contiene las reglas de dominio puras del flujo de inventario:
// clasificación de stock, margen de ganancia y valoración de movimientos.
// Sin efectos secundarios; todas las funciones son deterministas.
package stock

import "github.com/shopspring/decimal"

// Estados de stock de un producto.
const (
	StatusLow    = "low"    // stock_current <= stock_min (rojo)
	StatusExcess = "excess" // stock_current > stock_max, con techo configurado (naranja)
	StatusNormal = "normal" // verde
)

// Classify clasifica el stock de un producto. La precedencia es: bajo mínimo
// primero, exceso después. StockMax en 0 significa "sin techo configurado" y
// suprime la verificación de exceso.
func Classify(current, min, max decimal.Decimal) string {
	if current.LessThanOrEqual(min) {
		return StatusLow
	}
	if max.GreaterThan(decimal.Zero) && current.GreaterThan(max) {
		return StatusExcess
	}
	return StatusNormal
}

// ProfitPercent calcula el margen porcentual (venta - costo) / costo * 100.
// Con costo 0 el margen es indefinido y se devuelve 0 en lugar de fallar.
func ProfitPercent(cost, sale decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return sale.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100)).Round(2)
}

// EntryValue valora una entrada: cantidad por precio de costo, 2 decimales.
func EntryValue(quantity, priceCost decimal.Decimal) decimal.Decimal {
	return quantity.Mul(priceCost).Round(2)
}

// ExitValue valora una salida: cantidad por precio de venta, 2 decimales.
func ExitValue(quantity, priceSale decimal.Decimal) decimal.Decimal {
	return quantity.Mul(priceSale).Round(2)
}
