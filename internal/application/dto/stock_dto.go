package dto

import "time"

// CreateStockItemRequest body para POST /api/stock/items.
type CreateStockItemRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"` // stock inicial en mano
}

// UpdateStockItemRequest body para PUT /api/stock/items/:id.
// Solo el nombre es editable directamente; las cantidades se mueven con
// asientos del libro diario para mantener el historial consistente.
type UpdateStockItemRequest struct {
	Name string `json:"name"`
}

// StockItemDTO salida de un producto del inventario.
type StockItemDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Quantity     int64     `json:"quantity"`
	TotalSold    int64     `json:"total_sold"`
	InitialStock int64     `json:"initial_stock"` // total_sold + quantity
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
