package performance

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// DefaultAnalysisDays ventana de análisis por defecto para la estimación de
// días de stock restante.
const DefaultAnalysisDays = 30

// ProductPerformance es el informe completo de un producto: métricas
// realizadas, de inventario, proyectadas, clasificación de ciclo de vida,
// puntaje compuesto y rankings. Se construye nuevo en cada invocación; los
// únicos campos que se escriben después de construido son los tres ranks.
type ProductPerformance struct {
	ProductID string
	Name      string

	// Realizado (derivado estrictamente de los asientos registrados)
	Revenue      decimal.Decimal
	TotalCost    decimal.Decimal
	ActualProfit decimal.Decimal
	QuantitySold int64
	AvgPrice     decimal.Decimal
	ProfitMargin float64 // % sobre ingresos

	// Inventario
	CurrentStock    int64
	TotalSold       int64
	InitialStock    int64
	AvgStock        float64
	StockTurnover   float64
	DailySalesRate  float64
	DaysOfStockLeft float64 // +Inf cuando no hay ritmo de venta medible
	StockEfficiency float64 // % del stock inicial ya vendido
	RealizationRate float64 // idéntico a StockEfficiency por construcción

	// Proyectado (supone que el stock restante se vende al precio promedio)
	ProjectedRevenue decimal.Decimal
	ProjectedProfit  decimal.Decimal
	ProjectedMargin  float64
	UnrealizedValue  decimal.Decimal

	// Clasificación y puntaje
	Category Category
	Score    int

	// Rankings 1-based, asignados por BuildReport
	RankByRevenue    int
	RankByProfit     int
	RankByEfficiency int
}

// ComputeMetrics deriva las métricas de un producto combinando su stock
// actual con los flujos agregados del libro diario. Función pura de sus
// tres entradas. Toda división está protegida: denominador cero produce 0,
// salvo los días de stock restante, que producen +Inf ("al ritmo actual el
// stock nunca se agota"). Una ventana de análisis <= 0 se trata igual que
// "sin ritmo de venta calculable", nunca como división por cero.
func ComputeMetrics(item *entity.StockItem, agg Aggregate, daysToAnalyze int) *ProductPerformance {
	initialStock := item.InitialStock()

	actualProfit := agg.Revenue.Sub(agg.TotalCost)

	avgPrice := decimal.Zero
	if agg.QuantitySold > 0 {
		avgPrice = agg.Revenue.Div(decimal.NewFromInt(agg.QuantitySold))
	}

	avgStock := float64(initialStock+item.Quantity) / 2
	stockTurnover := 0.0
	if avgStock > 0 {
		stockTurnover = float64(agg.QuantitySold) / avgStock
	}

	dailySalesRate := 0.0
	if daysToAnalyze > 0 {
		dailySalesRate = float64(agg.QuantitySold) / float64(daysToAnalyze)
	}
	daysOfStockLeft := math.Inf(1)
	if dailySalesRate > 0 {
		daysOfStockLeft = float64(item.Quantity) / dailySalesRate
	}

	stockEfficiency := 0.0
	if initialStock > 0 {
		stockEfficiency = float64(agg.QuantitySold) / float64(initialStock) * 100
	}
	// RealizationRate y StockEfficiency comparten fórmula y guarda: son el
	// mismo número con dos nombres, y los consumidores esperan ambos.
	realizationRate := stockEfficiency

	profitMargin := 0.0
	if agg.Revenue.IsPositive() {
		profitMargin = actualProfit.InexactFloat64() / agg.Revenue.InexactFloat64() * 100
	}

	remaining := decimal.NewFromInt(item.Quantity)
	unrealizedValue := remaining.Mul(avgPrice)
	projectedRevenue := agg.Revenue.Add(unrealizedValue)
	projectedProfit := projectedRevenue.Sub(agg.TotalCost)
	projectedMargin := 0.0
	if projectedRevenue.IsPositive() {
		projectedMargin = projectedProfit.InexactFloat64() / projectedRevenue.InexactFloat64() * 100
	}

	p := &ProductPerformance{
		ProductID: item.ID,
		Name:      item.Name,

		Revenue:      agg.Revenue,
		TotalCost:    agg.TotalCost,
		ActualProfit: actualProfit,
		QuantitySold: agg.QuantitySold,
		AvgPrice:     avgPrice,
		ProfitMargin: profitMargin,

		CurrentStock:    item.Quantity,
		TotalSold:       item.TotalSold,
		InitialStock:    initialStock,
		AvgStock:        avgStock,
		StockTurnover:   stockTurnover,
		DailySalesRate:  dailySalesRate,
		DaysOfStockLeft: daysOfStockLeft,
		StockEfficiency: stockEfficiency,
		RealizationRate: realizationRate,

		ProjectedRevenue: projectedRevenue,
		ProjectedProfit:  projectedProfit,
		ProjectedMargin:  projectedMargin,
		UnrealizedValue:  unrealizedValue,
	}
	p.Category = Classify(actualProfit, projectedProfit, realizationRate, item.Quantity)
	p.Score = ComputeScore(p)
	return p
}
