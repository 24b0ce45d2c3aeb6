package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del libro diario. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un asiento. Los asientos son inmutables: no hay update.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, business_id, product_id, type, amount, quantity, note, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	productID := (*string)(nil)
	if entry.ProductID != "" {
		productID = &entry.ProductID
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.BusinessID, productID, entry.Type, entry.Amount,
		entry.Quantity, entry.Note, entry.Date, entry.CreatedAt, entry.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID. Devuelve nil, nil si no existe.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `
		SELECT id, business_id, product_id, type, amount, quantity, note, date, created_at, created_by
		FROM ledger_entries WHERE id = $1`
	e, err := scanEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return e, nil
}

// ListByBusiness lista asientos del negocio con filtro de fechas y paginación,
// del más reciente al más antiguo.
func (r *LedgerRepo) ListByBusiness(businessID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, business_id, product_id, type, amount, quantity, note, date, created_at, created_by
		FROM ledger_entries
		WHERE business_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, businessID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListAllByBusiness devuelve todos los asientos del negocio en orden de
// registro. Alimenta el motor de desempeño (la agregación es conmutativa,
// pero el orden estable mantiene los reportes reproducibles).
func (r *LedgerRepo) ListAllByBusiness(businessID string) ([]entity.LedgerEntry, error) {
	query := `
		SELECT id, business_id, product_id, type, amount, quantity, note, date, created_at, created_by
		FROM ledger_entries
		WHERE business_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list all ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []entity.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// scanEntry mapea una fila a LedgerEntry; product_id NULL queda como "".
func scanEntry(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	var productID *string
	err := row.Scan(
		&e.ID, &e.BusinessID, &productID, &e.Type, &e.Amount,
		&e.Quantity, &e.Note, &e.Date, &e.CreatedAt, &e.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if productID != nil {
		e.ProductID = *productID
	}
	return &e, nil
}
