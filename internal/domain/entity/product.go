package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del PDV.
// StockCurrent se deriva de StockStart más el neto del historial de movimientos;
// la única mutación sin asiento en el historial es la corrección manual desde el
// formulario de edición (que a su vez genera el asiento de conciliación).
type Product struct {
	ID           string
	CompanyID    string
	Code         string // código de barras, puede ser vacío
	Name         string
	SupplierID   *string
	CategoryID   *string
	UnitID       *string
	PriceCost    decimal.Decimal // precio de costo
	PriceSale    decimal.Decimal // precio de venta
	StockStart   decimal.Decimal // fijado una sola vez al crear
	StockMin     decimal.Decimal
	StockMax     decimal.Decimal // 0 = sin techo configurado
	StockCurrent decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
