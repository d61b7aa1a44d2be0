package catalog

import (
	"github.com/jhoicas/pdv-admin-api/internal/application/dto"
	"github.com/jhoicas/pdv-admin-api/internal/domain/repository"
)

// UseCase catálogos de referencia del formulario de productos: proveedores,
// categorías y unidades de medida. Solo lectura desde el flujo de stock.
type UseCase struct {
	suppliers  repository.SupplierRepository
	categories repository.CategoryRepository
	units      repository.UnitRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(suppliers repository.SupplierRepository, categories repository.CategoryRepository, units repository.UnitRepository) *UseCase {
	return &UseCase{suppliers: suppliers, categories: categories, units: units}
}

// Catalog devuelve los tres catálogos de la empresa en una sola respuesta,
// como los carga el formulario al abrirse.
func (uc *UseCase) Catalog(companyID string) (*dto.CatalogResponse, error) {
	suppliers, err := uc.suppliers.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	units, err := uc.units.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	out := &dto.CatalogResponse{
		Suppliers:  make([]dto.SupplierResponse, 0, len(suppliers)),
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
		Units:      make([]dto.UnitResponse, 0, len(units)),
	}
	for _, s := range suppliers {
		out.Suppliers = append(out.Suppliers, dto.SupplierResponse{ID: s.ID, Name: s.Name})
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	for _, u := range units {
		out.Units = append(out.Units, dto.UnitResponse{ID: u.ID, Name: u.Name, Initials: u.Initials})
	}
	return out, nil
}
