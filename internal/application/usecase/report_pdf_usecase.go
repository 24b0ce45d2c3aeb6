package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

// ReportPDFUseCase genera la versión imprimible del reporte de desempeño.
type ReportPDFUseCase struct {
	perfUC       *PerformanceUseCase
	businessRepo repository.BusinessRepository
	generator    ReportPDFGenerator
}

// NewReportPDFUseCase construye el caso de uso.
func NewReportPDFUseCase(
	perfUC *PerformanceUseCase,
	businessRepo repository.BusinessRepository,
	generator ReportPDFGenerator,
) *ReportPDFUseCase {
	return &ReportPDFUseCase{perfUC: perfUC, businessRepo: businessRepo, generator: generator}
}

// Generate arma el reporte de dominio y lo renderiza como PDF.
func (uc *ReportPDFUseCase) Generate(ctx context.Context, businessID string, days int) ([]byte, error) {
	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	report, days, err := uc.perfUC.BuildReport(ctx, businessID, days)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateReportPDF(ctx, business, report, days)
	if err != nil {
		return nil, fmt.Errorf("reporte PDF: %w", err)
	}
	return pdf, nil
}
