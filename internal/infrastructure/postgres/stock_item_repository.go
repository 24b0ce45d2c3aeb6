package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = "id, business_id, name, quantity, total_sold, created_at, updated_at"

// Create persiste un producto nuevo con su stock inicial.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, business_id, name, quantity, total_sold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BusinessID, item.Name, item.Quantity, item.TotalSold,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *StockItemRepo) getOne(query, id string) (*entity.StockItem, error) {
	var s entity.StockItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.BusinessID, &s.Name, &s.Quantity, &s.TotalSold, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &s, nil
}

// Update actualiza nombre y contadores de stock.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $2, quantity = $3, total_sold = $4, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.TotalSold,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByBusiness lista todos los productos del negocio en orden de creación.
// El orden estable importa: los empates de ranking del reporte de desempeño
// se resuelven por este orden.
func (r *StockItemRepo) ListByBusiness(businessID string) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items
		WHERE business_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var items []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name, &s.Quantity, &s.TotalSold, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

// Delete elimina un producto del inventario.
func (r *StockItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
