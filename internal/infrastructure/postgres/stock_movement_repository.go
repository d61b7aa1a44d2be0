package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/pdv-admin-api/internal/domain/entity"
	"github.com/jhoicas/pdv-admin-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL del historial de stock
// (usable con pool o tx). Los asientos son inmutables.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un asiento del historial.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_history (id, company_id, product_id, type, value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.ProductID,
		movement.Type, movement.Value, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista los asientos del producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(companyID, productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, company_id, product_id, type, value, created_at
		FROM stock_history WHERE company_id = $1 AND product_id = $2
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ProductID, &m.Type, &m.Value, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduct cuenta los asientos del producto (para la conciliación de edición).
func (r *StockMovementRepo) CountByProduct(companyID, productID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_history WHERE company_id = $1 AND product_id = $2`,
		companyID, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return n, nil
}

// DeleteByProduct borra todos los asientos del producto (reinicio de historial).
// Sin asientos es un no-op.
func (r *StockMovementRepo) DeleteByProduct(companyID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_history WHERE company_id = $1 AND product_id = $2`,
		companyID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete stock movements: %w", err)
	}
	return nil
}
