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

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación de BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste un negocio nuevo.
func (r *BusinessRepo) Create(business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, name, owner_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.OwnerEmail, business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID. Devuelve nil, nil si no existe.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	query := `SELECT id, name, owner_email, created_at, updated_at FROM businesses WHERE id = $1`
	var b entity.Business
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Name, &b.OwnerEmail, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// Update actualiza los datos del negocio.
func (r *BusinessRepo) Update(business *entity.Business) error {
	query := `UPDATE businesses SET name = $2, owner_email = $3, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, business.ID, business.Name, business.OwnerEmail)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
