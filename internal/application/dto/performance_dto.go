package dto

import "github.com/shopspring/decimal"

// PerformanceReportRequest parámetros para GET /api/performance/report.
type PerformanceReportRequest struct {
	Days int `query:"days"` // ventana de análisis para el runway de stock; default 30
}

// ProductPerformanceDTO scorecard completo de un producto.
type ProductPerformanceDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`

	// Realizado
	Revenue      decimal.Decimal `json:"revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	ActualProfit decimal.Decimal `json:"actual_profit"`
	QuantitySold int64           `json:"quantity_sold"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	ProfitMargin float64         `json:"profit_margin"`

	// Inventario
	CurrentStock    int64    `json:"current_stock"`
	TotalSold       int64    `json:"total_sold"`
	InitialStock    int64    `json:"initial_stock"`
	StockTurnover   float64  `json:"stock_turnover"`
	DailySalesRate  float64  `json:"daily_sales_rate"`
	DaysOfStockLeft *float64 `json:"days_of_stock_left"` // null = el stock no se agota al ritmo actual
	StockEfficiency float64  `json:"stock_efficiency"`
	RealizationRate float64  `json:"realization_rate"`

	// Proyectado
	ProjectedRevenue decimal.Decimal `json:"projected_revenue"`
	ProjectedProfit  decimal.Decimal `json:"projected_profit"`
	ProjectedMargin  float64         `json:"projected_margin"`
	UnrealizedValue  decimal.Decimal `json:"unrealized_value"`

	// Clasificación y puntaje
	Category        string      `json:"category"`
	CategoryDisplay CategoryDTO `json:"category_display"`
	Score           int         `json:"score"`

	// Rankings (1 = mejor)
	RankByRevenue    int `json:"rank_by_revenue"`
	RankByProfit     int `json:"rank_by_profit"`
	RankByEfficiency int `json:"rank_by_efficiency"`
}

// CategoryDTO triple de presentación de una etapa del ciclo de vida.
type CategoryDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Badge string `json:"badge"`
	Icon  string `json:"icon"`
}

// PerformanceSummaryDTO agregados del portafolio.
type PerformanceSummaryDTO struct {
	TotalProducts int             `json:"total_products"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	AverageMargin float64         `json:"average_margin"`

	// Punteros al mejor producto por dimensión; ausentes con portafolio vacío.
	BestByRevenue *ProductPerformanceDTO `json:"best_by_revenue,omitempty"`
	BestByProfit  *ProductPerformanceDTO `json:"best_by_profit,omitempty"`
	BestByScore   *ProductPerformanceDTO `json:"best_by_score,omitempty"`
}

// PerformanceReportDTO respuesta completa de GET /api/performance/report.
type PerformanceReportDTO struct {
	Days     int                     `json:"days"`
	Products []ProductPerformanceDTO `json:"products"`
	Summary  PerformanceSummaryDTO   `json:"summary"`
}
