package repository

import "github.com/jhoicas/pdv-admin-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
// Solo lectura desde el flujo de stock.
type SupplierRepository interface {
	ListByCompany(companyID string) ([]*entity.Supplier, error)
}
