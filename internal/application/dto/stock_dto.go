package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest entrada para registrar un movimiento manual de stock.
type RegisterMovementRequest struct {
	Type     string          `json:"type"` // entry, exit
	Quantity decimal.Decimal `json:"quantity"`
}

// MovementResponse salida de un asiento del historial de stock.
type MovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"`
	Value     decimal.Decimal `json:"value"`
	ValueFmt  string          `json:"value_fmt"`
	CreatedAt time.Time       `json:"created_at"`
}

// HistoryResponse historial completo de un producto.
type HistoryResponse struct {
	ProductID string             `json:"product_id"`
	Items     []MovementResponse `json:"items"`
}
