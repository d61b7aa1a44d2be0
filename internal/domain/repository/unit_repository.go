package repository

import "github.com/jhoicas/pdv-admin-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	ListByCompany(companyID string) ([]*entity.Unit, error)
}
