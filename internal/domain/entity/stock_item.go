package entity

import "time"

// StockItem representa un producto del negocio con su inventario actual.
// Invariante: Quantity >= 0, TotalSold >= 0. El stock inicial recibido de
// por vida se deriva como TotalSold + Quantity (ver InitialStock).
type StockItem struct {
	ID         string
	BusinessID string
	Name       string
	Quantity   int64 // unidades en mano
	TotalSold  int64 // unidades vendidas acumuladas
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InitialStock devuelve el total de unidades que alguna vez entraron al
// inventario de este producto.
func (s *StockItem) InitialStock() int64 {
	return s.TotalSold + s.Quantity
}
