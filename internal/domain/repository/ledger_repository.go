package repository

import (
	"time"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para asientos del libro diario.
// Los asientos son append-only: no hay Update ni Delete.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	ListByBusiness(businessID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
	// ListAllByBusiness devuelve todos los asientos del negocio sin paginar,
	// en orden de registro. Lo consume el motor de desempeño.
	ListAllByBusiness(businessID string) ([]entity.LedgerEntry, error)
}
