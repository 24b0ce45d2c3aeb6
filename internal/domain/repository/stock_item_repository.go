package repository

import "github.com/jhoicas/Caja-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para productos del inventario (DIP).
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE);
	// usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	ListByBusiness(businessID string) ([]*entity.StockItem, error)
	Delete(id string) error
}
