package entity

import "time"

// Supplier representa un proveedor (entidad de referencia, solo lectura desde
// el flujo de stock).
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}
