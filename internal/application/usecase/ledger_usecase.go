package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

// validEntryTypes tipos de asiento aceptados en el registro. El motor de
// desempeño tolera tipos desconocidos ya persistidos, pero la API no deja
// entrar basura nueva.
var validEntryTypes = map[string]bool{
	entity.EntryTypeSale:       true,
	entity.EntryTypeExpense:    true,
	entity.EntryTypeStockIn:    true,
	entity.EntryTypeAdjustment: true,
}

// LedgerUseCase registra y consulta los asientos del libro diario. El
// registro de una venta o compra ajusta el stock del producto en la misma
// transacción que persiste el asiento.
type LedgerUseCase struct {
	tx         TxRunner
	ledgerRepo repository.LedgerRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(tx TxRunner, ledgerRepo repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{tx: tx, ledgerRepo: ledgerRepo}
}

// RegisterEntry valida y persiste un asiento, aplicando el efecto de
// inventario cuando el asiento referencia un producto:
//   - SALE: descuenta Quantity del stock y acumula TotalSold (falla con
//     ErrInsufficientStock si no alcanza).
//   - STOCK_IN: suma Quantity al stock.
//   - EXPENSE y ADJUSTMENT: no mueven inventario.
func (uc *LedgerUseCase) RegisterEntry(ctx context.Context, businessID, userID string, in dto.RegisterEntryRequest) (*dto.LedgerEntryDTO, error) {
	if !validEntryTypes[in.Type] {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrUnknownEntryType, in.Type)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	e := &entity.LedgerEntry{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		ProductID:  in.ProductID,
		Type:       in.Type,
		Amount:     in.Amount,
		Quantity:   in.Quantity,
		Note:       in.Note,
		Date:       date,
		CreatedAt:  now,
		CreatedBy:  userID,
	}

	err := uc.tx.Run(ctx, func(ledgerRepo repository.LedgerRepository, stockRepo repository.StockItemRepository) error {
		if e.ProductID != "" {
			if err := applyStockEffect(stockRepo, businessID, e); err != nil {
				return err
			}
		}
		return ledgerRepo.Create(e)
	})
	if err != nil {
		return nil, err
	}
	return toEntryDTO(e), nil
}

// applyStockEffect aplica el movimiento de inventario del asiento sobre la
// fila bloqueada del producto.
func applyStockEffect(stockRepo repository.StockItemRepository, businessID string, e *entity.LedgerEntry) error {
	item, err := stockRepo.GetForUpdate(e.ProductID)
	if err != nil {
		return err
	}
	if item == nil || item.BusinessID != businessID {
		return domain.ErrNotFound
	}
	switch e.Type {
	case entity.EntryTypeSale:
		if item.Quantity < e.Quantity {
			return domain.ErrInsufficientStock
		}
		item.Quantity -= e.Quantity
		item.TotalSold += e.Quantity
	case entity.EntryTypeStockIn:
		item.Quantity += e.Quantity
	default:
		// gastos y ajustes no mueven unidades
		return nil
	}
	return stockRepo.Update(item)
}

// ListEntries lista los asientos del negocio con filtro de período y
// paginación.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, businessID string, in dto.ListEntriesRequest) (*dto.ListEntriesResponse, error) {
	from, to, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	in.DefaultPage()

	entries, err := uc.ledgerRepo.ListByBusiness(businessID, from, to, in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("libro diario: listar asientos: %w", err)
	}

	out := make([]dto.LedgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toEntryDTO(e))
	}
	return &dto.ListEntriesResponse{
		Entries: out,
		Page:    dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

func toEntryDTO(e *entity.LedgerEntry) *dto.LedgerEntryDTO {
	return &dto.LedgerEntryDTO{
		ID:        e.ID,
		ProductID: e.ProductID,
		Type:      e.Type,
		Amount:    e.Amount,
		Quantity:  e.Quantity,
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}

// parsePeriod convierte los strings de fecha en time.Time; nil significa
// "sin filtro" por ese extremo.
func parsePeriod(startStr, endStr string) (start, end *time.Time, err error) {
	now := time.Now()

	if startStr != "" {
		s, err := time.ParseInLocation("2006-01-02", startStr, now.Location())
		if err != nil {
			return nil, nil, fmt.Errorf("%w: start_date inválido", domain.ErrInvalidInput)
		}
		start = &s
	}
	if endStr != "" {
		e, err := time.ParseInLocation("2006-01-02", endStr, now.Location())
		if err != nil {
			return nil, nil, fmt.Errorf("%w: end_date inválido", domain.ErrInvalidInput)
		}
		e = e.Add(23*time.Hour + 59*time.Minute + 59*time.Second) // inclusive hasta el final del día
		end = &e
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return start, end, nil
}
