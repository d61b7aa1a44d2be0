package repository

import "github.com/jhoicas/pdv-admin-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el historial
// de stock. Los asientos son inmutables: no hay Update; la única mutación es
// DeleteByProduct (reinicio de historial).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(companyID, productID string) ([]*entity.StockMovement, error)
	CountByProduct(companyID, productID string) (int, error)
	DeleteByProduct(companyID, productID string) error
}
