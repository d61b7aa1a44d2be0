package entity

import "time"

// Unit representa una unidad de medida (ej. "Quilograma"/"KG").
type Unit struct {
	ID        string
	CompanyID string
	Name      string
	Initials  string
	CreatedAt time.Time
}
