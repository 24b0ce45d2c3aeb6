package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/performance"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
	"github.com/jhoicas/Caja-api/pkg/logger"
)

// AnalysisConfig límites de la ventana de análisis del reporte.
type AnalysisConfig struct {
	DefaultDays int
	MaxDays     int
}

// PerformanceUseCase orquesta el reporte de desempeño: carga los asientos y
// el inventario del negocio, invoca el motor puro y convierte el resultado
// en DTOs. El motor no toca la BD; toda la E/S vive aquí.
type PerformanceUseCase struct {
	ledgerRepo repository.LedgerRepository
	stockRepo  repository.StockItemRepository
	cfg        AnalysisConfig
	log        *logger.Logger
}

// NewPerformanceUseCase construye el caso de uso.
func NewPerformanceUseCase(
	ledgerRepo repository.LedgerRepository,
	stockRepo repository.StockItemRepository,
	cfg AnalysisConfig,
	log *logger.Logger,
) *PerformanceUseCase {
	if cfg.DefaultDays <= 0 {
		cfg.DefaultDays = performance.DefaultAnalysisDays
	}
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = 365
	}
	return &PerformanceUseCase{
		ledgerRepo: ledgerRepo,
		stockRepo:  stockRepo,
		cfg:        cfg,
		log:        log.Component("performance"),
	}
}

// BuildReport carga las entradas y corre el motor. Devuelve el reporte de
// dominio sin convertir (lo usan el endpoint JSON y el generador de PDF).
//
// Las dos consultas son independientes y se lanzan en paralelo.
func (uc *PerformanceUseCase) BuildReport(ctx context.Context, businessID string, days int) (*performance.Report, int, error) {
	if days <= 0 {
		days = uc.cfg.DefaultDays
	}
	if days > uc.cfg.MaxDays {
		days = uc.cfg.MaxDays
	}

	type entriesResult struct {
		entries []entity.LedgerEntry
		err     error
	}
	type itemsResult struct {
		items []*entity.StockItem
		err   error
	}

	entriesCh := make(chan entriesResult, 1)
	itemsCh := make(chan itemsResult, 1)

	go func() {
		entries, err := uc.ledgerRepo.ListAllByBusiness(businessID)
		entriesCh <- entriesResult{entries, err}
	}()
	go func() {
		items, err := uc.stockRepo.ListByBusiness(businessID)
		itemsCh <- itemsResult{items, err}
	}()

	eRes := <-entriesCh
	iRes := <-itemsCh

	if eRes.err != nil {
		return nil, 0, fmt.Errorf("desempeño: asientos: %w", eRes.err)
	}
	if iRes.err != nil {
		return nil, 0, fmt.Errorf("desempeño: inventario: %w", iRes.err)
	}

	report := performance.BuildReport(eRes.entries, iRes.items, days)

	// La categoría UNKNOWN solo aparece con datos inconsistentes
	// (quantitySold > initialStock). Se reporta como advertencia de calidad
	// de datos; el cálculo sigue siendo válido para el resto del portafolio.
	for _, p := range report.Products {
		if p.Category == performance.CategoryUnknown {
			uc.log.Warn().
				Str("business_id", businessID).
				Str("product_id", p.ProductID).
				Float64("realization_rate", p.RealizationRate).
				Int64("current_stock", p.CurrentStock).
				Msg("producto con datos de inventario inconsistentes")
		}
	}

	return report, days, nil
}

// GetReport genera el reporte completo listo para serializar.
func (uc *PerformanceUseCase) GetReport(ctx context.Context, businessID string, in dto.PerformanceReportRequest) (*dto.PerformanceReportDTO, error) {
	report, days, err := uc.BuildReport(ctx, businessID, in.Days)
	if err != nil {
		return nil, err
	}
	return toReportDTO(report, days), nil
}

// Categories devuelve el catálogo de etapas del ciclo de vida con su triple
// de presentación, para que la capa de UI no duplique las etiquetas.
func (uc *PerformanceUseCase) Categories() []dto.CategoryDTO {
	cats := performance.AllCategories()
	out := make([]dto.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryDTO(c))
	}
	return out
}

// ── Mapeo a DTOs ──────────────────────────────────────────────────────────────

func toReportDTO(report *performance.Report, days int) *dto.PerformanceReportDTO {
	products := make([]dto.ProductPerformanceDTO, 0, len(report.Products))
	for _, p := range report.Products {
		products = append(products, *toPerformanceDTO(p))
	}
	s := report.Summary
	summary := dto.PerformanceSummaryDTO{
		TotalProducts: s.TotalProducts,
		TotalRevenue:  s.TotalRevenue.Round(2),
		TotalProfit:   s.TotalProfit.Round(2),
		AverageMargin: round2(s.AverageMargin),
	}
	if s.BestByRevenue != nil {
		summary.BestByRevenue = toPerformanceDTO(s.BestByRevenue)
	}
	if s.BestByProfit != nil {
		summary.BestByProfit = toPerformanceDTO(s.BestByProfit)
	}
	if s.BestByScore != nil {
		summary.BestByScore = toPerformanceDTO(s.BestByScore)
	}
	return &dto.PerformanceReportDTO{
		Days:     days,
		Products: products,
		Summary:  summary,
	}
}

func toPerformanceDTO(p *performance.ProductPerformance) *dto.ProductPerformanceDTO {
	// +Inf no es serializable en JSON: el runway infinito viaja como null.
	var runway *float64
	if !math.IsInf(p.DaysOfStockLeft, 1) {
		v := round2(p.DaysOfStockLeft)
		runway = &v
	}
	return &dto.ProductPerformanceDTO{
		ProductID: p.ProductID,
		Name:      p.Name,

		Revenue:      p.Revenue.Round(2),
		TotalCost:    p.TotalCost.Round(2),
		ActualProfit: p.ActualProfit.Round(2),
		QuantitySold: p.QuantitySold,
		AvgPrice:     p.AvgPrice.Round(2),
		ProfitMargin: round2(p.ProfitMargin),

		CurrentStock:    p.CurrentStock,
		TotalSold:       p.TotalSold,
		InitialStock:    p.InitialStock,
		StockTurnover:   round2(p.StockTurnover),
		DailySalesRate:  round2(p.DailySalesRate),
		DaysOfStockLeft: runway,
		StockEfficiency: round2(p.StockEfficiency),
		RealizationRate: round2(p.RealizationRate),

		ProjectedRevenue: p.ProjectedRevenue.Round(2),
		ProjectedProfit:  p.ProjectedProfit.Round(2),
		ProjectedMargin:  round2(p.ProjectedMargin),
		UnrealizedValue:  p.UnrealizedValue.Round(2),

		Category:        string(p.Category),
		CategoryDisplay: toCategoryDTO(p.Category),
		Score:           p.Score,

		RankByRevenue:    p.RankByRevenue,
		RankByProfit:     p.RankByProfit,
		RankByEfficiency: p.RankByEfficiency,
	}
}

func toCategoryDTO(c performance.Category) dto.CategoryDTO {
	d := c.Display()
	return dto.CategoryDTO{
		Code:  string(c),
		Label: d.Label,
		Badge: d.Badge,
		Icon:  d.Icon,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
