package performance_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/performance"
)

func item(id string, quantity, totalSold int64) *entity.StockItem {
	return &entity.StockItem{ID: id, Name: "Producto " + id, Quantity: quantity, TotalSold: totalSold}
}

func agg(revenue, cost float64, sold int64) performance.Aggregate {
	return performance.Aggregate{
		Revenue:      decimal.NewFromFloat(revenue),
		TotalCost:    decimal.NewFromFloat(cost),
		QuantitySold: sold,
	}
}

// Escenario de referencia: producto agotado, vendido completo con ganancia.
// revenue=100000, costo=50000, 10 vendidas, 0 en stock.
func TestComputeMetrics_ProductoAgotadoConGanancia(t *testing.T) {
	p := performance.ComputeMetrics(item("p1", 0, 10), agg(100_000, 50_000, 10), 30)

	assert.True(t, p.ActualProfit.Equal(decimal.NewFromInt(50_000)), "ganancia: %s", p.ActualProfit)
	assert.InDelta(t, 50.0, p.ProfitMargin, 1e-9)
	assert.EqualValues(t, 10, p.InitialStock)
	assert.InDelta(t, 100.0, p.RealizationRate, 1e-9)
	assert.True(t, p.AvgPrice.Equal(decimal.NewFromInt(10_000)))
	// sin stock restante no hay valor por realizar: proyección == realizado
	assert.True(t, p.ProjectedRevenue.Equal(p.Revenue))
	assert.True(t, p.UnrealizedValue.IsZero())
	assert.Equal(t, performance.CategoryCompletedProfitable, p.Category)
}

// RealizationRate y StockEfficiency son el mismo número con dos nombres.
func TestComputeMetrics_RealizacionIgualAEficiencia(t *testing.T) {
	cases := []struct {
		name     string
		item     *entity.StockItem
		agg      performance.Aggregate
	}{
		{"mitad vendida", item("a", 5, 5), agg(500, 300, 5)},
		{"sin ventas", item("b", 8, 0), agg(0, 100, 0)},
		{"agotado", item("c", 0, 3), agg(90, 60, 3)},
	}
	for _, tc := range cases {
		p := performance.ComputeMetrics(tc.item, tc.agg, 30)
		assert.Equal(t, p.StockEfficiency, p.RealizationRate, tc.name)
	}
}

// La proyección extrapola el stock restante al precio promedio actual.
func TestComputeMetrics_Proyeccion(t *testing.T) {
	// 4 vendidas a promedio 250, quedan 6 en stock
	p := performance.ComputeMetrics(item("p1", 6, 4), agg(1000, 1200, 4), 30)

	assert.True(t, p.AvgPrice.Equal(decimal.NewFromInt(250)))
	assert.True(t, p.UnrealizedValue.Equal(decimal.NewFromInt(1500)), "valor por realizar: %s", p.UnrealizedValue)
	assert.True(t, p.ProjectedRevenue.Equal(decimal.NewFromInt(2500)))
	assert.True(t, p.ProjectedProfit.Equal(decimal.NewFromInt(1300)))
	assert.InDelta(t, 52.0, p.ProjectedMargin, 1e-9)
	// realizado pierde, proyectado gana: en recuperación
	assert.True(t, p.ActualProfit.IsNegative())
	assert.Equal(t, performance.CategoryInProgressRecover, p.Category)
}

// Sin ritmo de venta el stock nunca se agota: +Inf como centinela, no error.
func TestComputeMetrics_RunwayInfinitoSinVentas(t *testing.T) {
	p := performance.ComputeMetrics(item("p1", 20, 0), agg(0, 500, 0), 30)

	assert.Zero(t, p.DailySalesRate)
	require.True(t, math.IsInf(p.DaysOfStockLeft, 1), "runway debe ser +Inf, fue %v", p.DaysOfStockLeft)
	assert.Equal(t, performance.CategoryNotStarted, p.Category)
}

// Ventana de análisis cero o negativa: se trata como "ritmo no calculable",
// nunca como división por cero.
func TestComputeMetrics_VentanaCeroNoDividePorCero(t *testing.T) {
	for _, days := range []int{0, -5} {
		p := performance.ComputeMetrics(item("p1", 3, 7), agg(700, 200, 7), days)
		assert.Zero(t, p.DailySalesRate, "days=%d", days)
		assert.True(t, math.IsInf(p.DaysOfStockLeft, 1), "days=%d", days)
	}
}

// Runway finito: quantity / tasa diaria.
func TestComputeMetrics_RunwayFinito(t *testing.T) {
	// 15 vendidas en 30 días = 0.5/día; 10 en stock → 20 días
	p := performance.ComputeMetrics(item("p1", 10, 15), agg(1500, 900, 15), 30)

	assert.InDelta(t, 0.5, p.DailySalesRate, 1e-9)
	assert.InDelta(t, 20.0, p.DaysOfStockLeft, 1e-9)
}

// Rotación: vendidas sobre stock promedio.
func TestComputeMetrics_Rotacion(t *testing.T) {
	// initialStock=10, quantity=0 → avgStock=5; 10 vendidas → rotación 2
	p := performance.ComputeMetrics(item("p1", 0, 10), agg(1000, 400, 10), 30)

	assert.InDelta(t, 5.0, p.AvgStock, 1e-9)
	assert.InDelta(t, 2.0, p.StockTurnover, 1e-9)
}

// Producto sin flujos y sin stock: todas las métricas en cero, sin pánicos
// de división.
func TestComputeMetrics_TodoEnCero(t *testing.T) {
	p := performance.ComputeMetrics(item("p1", 0, 0), performance.Aggregate{
		Revenue: decimal.Zero, TotalCost: decimal.Zero,
	}, 30)

	assert.True(t, p.Revenue.IsZero())
	assert.True(t, p.ActualProfit.IsZero())
	assert.True(t, p.AvgPrice.IsZero())
	assert.Zero(t, p.StockTurnover)
	assert.Zero(t, p.StockEfficiency)
	assert.Zero(t, p.ProfitMargin)
	assert.Zero(t, p.ProjectedMargin)
	assert.Zero(t, p.Score)
	assert.Equal(t, performance.CategoryNotStarted, p.Category)
}

// Idempotencia: mismas entradas, salida idéntica.
func TestComputeMetrics_Determinista(t *testing.T) {
	a := performance.ComputeMetrics(item("p1", 6, 4), agg(1000, 1200, 4), 30)
	b := performance.ComputeMetrics(item("p1", 6, 4), agg(1000, 1200, 4), 30)
	assert.Equal(t, a, b)
}
