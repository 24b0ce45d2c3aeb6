package entity

import "time"

// Business representa el negocio (tenant) al que pertenecen usuarios,
// asientos y productos.
type Business struct {
	ID         string
	Name       string
	OwnerEmail string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
