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

// StockUseCase administra los productos del inventario.
type StockUseCase struct {
	stockRepo repository.StockItemRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockItemRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo}
}

// Create da de alta un producto con su stock inicial en mano.
func (uc *StockUseCase) Create(ctx context.Context, businessID string, in dto.CreateStockItemRequest) (*dto.StockItemDTO, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		Quantity:   in.Quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.stockRepo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemDTO(item), nil
}

// Update renombra un producto. Las cantidades solo se mueven con asientos.
func (uc *StockUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateStockItemRequest) (*dto.StockItemDTO, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	if err := uc.stockRepo.Update(item); err != nil {
		return nil, err
	}
	return toStockItemDTO(item), nil
}

// GetByID devuelve un producto del negocio.
func (uc *StockUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.StockItemDTO, error) {
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return toStockItemDTO(item), nil
}

// List devuelve todos los productos del negocio.
func (uc *StockUseCase) List(ctx context.Context, businessID string) ([]dto.StockItemDTO, error) {
	items, err := uc.stockRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("inventario: listar productos: %w", err)
	}
	out := make([]dto.StockItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, *toStockItemDTO(item))
	}
	return out, nil
}

// Delete elimina un producto del inventario.
func (uc *StockUseCase) Delete(ctx context.Context, businessID, id string) error {
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil || item.BusinessID != businessID {
		return domain.ErrNotFound
	}
	return uc.stockRepo.Delete(id)
}

func toStockItemDTO(item *entity.StockItem) *dto.StockItemDTO {
	return &dto.StockItemDTO{
		ID:           item.ID,
		Name:         item.Name,
		Quantity:     item.Quantity,
		TotalSold:    item.TotalSold,
		InitialStock: item.InitialStock(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
