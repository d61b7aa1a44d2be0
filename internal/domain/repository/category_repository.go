package repository

import "github.com/jhoicas/pdv-admin-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	ListByCompany(companyID string) ([]*entity.Category, error)
}
