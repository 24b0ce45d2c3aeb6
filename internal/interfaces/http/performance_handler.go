package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/application/usecase"
)

// PerformanceHandler expone el reporte de desempeño de productos (protegido).
type PerformanceHandler struct {
	uc    *usecase.PerformanceUseCase
	pdfUC *usecase.ReportPDFUseCase
}

// NewPerformanceHandler construye el handler.
func NewPerformanceHandler(uc *usecase.PerformanceUseCase, pdfUC *usecase.ReportPDFUseCase) *PerformanceHandler {
	return &PerformanceHandler{uc: uc, pdfUC: pdfUC}
}

// GetReport godoc
// @Summary      Reporte de desempeño de productos
// @Description  Scorecard por producto (métricas, etapa del ciclo de vida, puntaje y rankings) más el resumen del portafolio.
// @Tags         performance
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana de análisis en días"  default(30)
// @Success      200   {object}  dto.PerformanceReportDTO
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/performance/report [get]
func (h *PerformanceHandler) GetReport(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id requerido"})
	}
	var in dto.PerformanceReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetReport(c.UserContext(), businessID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetReportPDF godoc
// @Summary      Reporte de desempeño en PDF
// @Tags         performance
// @Security     Bearer
// @Produce      application/pdf
// @Param        days  query  int  false  "Ventana de análisis en días"  default(30)
// @Success      200   {file}    file
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/performance/report/pdf [get]
func (h *PerformanceHandler) GetReportPDF(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id requerido"})
	}
	days := c.QueryInt("days", 0)
	pdfBytes, err := h.pdfUC.Generate(c.UserContext(), businessID, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("desempeno-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}

// Categories godoc
// @Summary      Catálogo de etapas del ciclo de vida
// @Description  Etiquetas, badges e iconos de cada etapa, para no duplicarlos en la UI.
// @Tags         performance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryDTO
// @Router       /api/performance/categories [get]
func (h *PerformanceHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}
