package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada (compra/recepción)
	MovementTypeExit  = "exit"  // salida (venta/consumo)
)

// StockMovement representa un asiento inmutable del historial de stock: el
// valor monetario de un cambio de cantidad y su tipo. La única vía de mutación
// es el borrado masivo por producto (reinicio de historial).
type StockMovement struct {
	ID        string
	CompanyID string
	ProductID string
	Type      string          // entry, exit
	Value     decimal.Decimal // valor monetario, 2 decimales
	CreatedAt time.Time
}
