package usecase

import (
	"context"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/performance"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el asiento del libro diario y
// el ajuste de inventario sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.StockItemRepository,
	) error) error
}

// ReportPDFGenerator renderiza el reporte de desempeño como PDF.
// La implementación vive en infrastructure (Maroto).
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, business *entity.Business, report *performance.Report, days int) ([]byte, error)
}
