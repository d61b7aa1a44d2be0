package entity

import "time"

// Company representa la organización dueña de los datos: toda entidad y
// operación se filtra implícitamente por empresa.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
