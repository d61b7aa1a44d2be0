package stock

import (
	"context"

	"github.com/jhoicas/pdv-admin-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Las secuencias de escritura del flujo de stock
// (alta de producto + asiento inicial, asiento + actualización de cantidad)
// van juntas en una transacción: o se persisten ambas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error) error
}
