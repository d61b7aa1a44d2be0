package dto

// SupplierResponse proveedor de referencia.
type SupplierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryResponse categoría de referencia.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnitResponse unidad de medida de referencia.
type UnitResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// CatalogResponse catálogos de referencia para el formulario de productos.
type CatalogResponse struct {
	Suppliers  []SupplierResponse `json:"suppliers"`
	Categories []CategoryResponse `json:"categories"`
	Units      []UnitResponse     `json:"units"`
}
