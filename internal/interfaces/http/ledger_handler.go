package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/application/usecase"
	"github.com/jhoicas/Caja-api/internal/domain"
)

// LedgerHandler maneja las peticiones HTTP del libro diario (protegido).
type LedgerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar asiento del libro diario
// @Description  Una venta o compra ligada a producto ajusta el stock en la misma transacción.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "Datos del asiento"
// @Success      201   {object}  dto.LedgerEntryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/ledger/entries [post]
func (h *LedgerHandler) RegisterEntry(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id requerido"})
	}
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type es requerido"})
	}
	out, err := h.uc.RegisterEntry(c.UserContext(), businessID, GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownEntryType), errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el producto no existe en este negocio"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la venta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEntries godoc
// @Summary      Listar asientos del libro diario
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ListEntriesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/entries [get]
func (h *LedgerHandler) ListEntries(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id requerido"})
	}
	var in dto.ListEntriesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ListEntries(c.UserContext(), businessID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
