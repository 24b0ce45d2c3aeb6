package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterEntryRequest body para POST /api/ledger/entries.
// ProductID es opcional: un gasto general del negocio no va ligado a producto.
type RegisterEntryRequest struct {
	ProductID string          `json:"product_id,omitempty"`
	Type      string          `json:"type"` // SALE | EXPENSE | STOCK_IN | ADJUSTMENT
	Amount    decimal.Decimal `json:"amount"`
	Quantity  int64           `json:"quantity,omitempty"` // unidades (SALE y STOCK_IN)
	Note      string          `json:"note,omitempty"`
	Date      *time.Time      `json:"date,omitempty"` // por defecto: ahora
}

// LedgerEntryDTO salida de un asiento del libro diario.
type LedgerEntryDTO struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id,omitempty"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Quantity  int64           `json:"quantity"`
	Note      string          `json:"note,omitempty"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListEntriesRequest parámetros para GET /api/ledger/entries.
type ListEntriesRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
	PageRequest
}

// ListEntriesResponse respuesta paginada del listado de asientos.
type ListEntriesResponse struct {
	Entries []LedgerEntryDTO `json:"entries"`
	Page    PageResponse     `json:"page"`
}
