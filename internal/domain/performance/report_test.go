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

// Portafolio de prueba: tres productos con ventas y uno sin ventas.
func portfolio() ([]entity.LedgerEntry, []*entity.StockItem) {
	entries := []entity.LedgerEntry{
		entry("a", entity.EntryTypeSale, 3000, 3),
		entry("a", entity.EntryTypeStockIn, 1000, 0),
		entry("b", entity.EntryTypeSale, 5000, 10),
		entry("b", entity.EntryTypeExpense, 4500, 0),
		entry("c", entity.EntryTypeSale, 1000, 2),
		entry("c", entity.EntryTypeStockIn, 200, 0),
	}
	items := []*entity.StockItem{
		item("a", 2, 3),
		item("b", 0, 10),
		item("c", 8, 2),
		item("d", 5, 0), // sin ventas: fuera del reporte
	}
	return entries, items
}

// Productos sin ventas realizadas quedan fuera del reporte y los rankings
// forman una permutación de 1..N.
func TestBuildReport_ExclusionYRankings(t *testing.T) {
	entries, items := portfolio()
	report := performance.BuildReport(entries, items, 30)

	require.Len(t, report.Products, 3, "d no debe aparecer")
	for _, p := range report.Products {
		assert.NotEqual(t, "d", p.ProductID)
	}

	seenRev := map[int]bool{}
	seenProfit := map[int]bool{}
	seenEff := map[int]bool{}
	for _, p := range report.Products {
		seenRev[p.RankByRevenue] = true
		seenProfit[p.RankByProfit] = true
		seenEff[p.RankByEfficiency] = true
	}
	for rank := 1; rank <= 3; rank++ {
		assert.True(t, seenRev[rank], "falta rank por ingresos %d", rank)
		assert.True(t, seenProfit[rank], "falta rank por ganancia %d", rank)
		assert.True(t, seenEff[rank], "falta rank por eficiencia %d", rank)
	}
}

// Orden de cada dimensión: b lidera ingresos (5000), a lidera ganancia
// (2000), b lidera eficiencia (100%).
func TestBuildReport_DimensionesIndependientes(t *testing.T) {
	entries, items := portfolio()
	report := performance.BuildReport(entries, items, 30)

	byID := map[string]*performance.ProductPerformance{}
	for _, p := range report.Products {
		byID[p.ProductID] = p
	}

	assert.Equal(t, 1, byID["b"].RankByRevenue)
	assert.Equal(t, 2, byID["a"].RankByRevenue)
	assert.Equal(t, 3, byID["c"].RankByRevenue)

	assert.Equal(t, 1, byID["a"].RankByProfit) // 3000-1000=2000
	assert.Equal(t, 2, byID["c"].RankByProfit) // 1000-200=800
	assert.Equal(t, 3, byID["b"].RankByProfit) // 5000-4500=500

	assert.Equal(t, 1, byID["b"].RankByEfficiency) // 10/10 = 100%
	assert.Equal(t, 2, byID["a"].RankByEfficiency) // 3/5 = 60%
	assert.Equal(t, 3, byID["c"].RankByEfficiency) // 2/10 = 20%
}

// Empates: sort estable, gana el orden relativo original; nunca rangos
// repetidos.
func TestBuildReport_EmpatesPorOrdenOriginal(t *testing.T) {
	entries := []entity.LedgerEntry{
		entry("x", entity.EntryTypeSale, 1000, 2),
		entry("y", entity.EntryTypeSale, 1000, 2),
	}
	items := []*entity.StockItem{
		item("x", 2, 2),
		item("y", 2, 2),
	}
	report := performance.BuildReport(entries, items, 30)

	require.Len(t, report.Products, 2)
	first, second := report.Products[0], report.Products[1]
	assert.Equal(t, "x", first.ProductID)
	assert.Equal(t, 1, first.RankByRevenue)
	assert.Equal(t, 2, second.RankByRevenue)
	assert.Equal(t, 1, first.RankByProfit)
	assert.Equal(t, 1, first.RankByEfficiency)
}

// Resumen: totales, margen promedio y mejores por dimensión.
func TestBuildReport_Resumen(t *testing.T) {
	entries, items := portfolio()
	report := performance.BuildReport(entries, items, 30)

	s := report.Summary
	assert.Equal(t, 3, s.TotalProducts)
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(9000)), "ingresos: %s", s.TotalRevenue)
	assert.True(t, s.TotalProfit.Equal(decimal.NewFromInt(3300)), "ganancia: %s", s.TotalProfit)
	assert.InDelta(t, 3300.0/9000.0*100, s.AverageMargin, 1e-9)

	require.NotNil(t, s.BestByRevenue)
	require.NotNil(t, s.BestByProfit)
	require.NotNil(t, s.BestByScore)
	assert.Equal(t, "b", s.BestByRevenue.ProductID)
	assert.Equal(t, "a", s.BestByProfit.ProductID)
}

// Portafolio vacío: agregados en cero y punteros "best" ausentes.
func TestBuildReport_PortafolioVacio(t *testing.T) {
	report := performance.BuildReport(nil, nil, 30)

	assert.Empty(t, report.Products)
	s := report.Summary
	assert.Zero(t, s.TotalProducts)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.TotalProfit.IsZero())
	assert.Zero(t, s.AverageMargin)
	assert.Nil(t, s.BestByRevenue)
	assert.Nil(t, s.BestByProfit)
	assert.Nil(t, s.BestByScore)
}

// Stock sin ventas junto a productos activos: el producto sin ventas queda
// fuera, y el runway infinito del resto no contamina el reporte.
func TestBuildReport_StockSinVentasNoContamina(t *testing.T) {
	entries := []entity.LedgerEntry{
		entry("activo", entity.EntryTypeSale, 500, 5),
	}
	items := []*entity.StockItem{
		item("parado", 20, 0), // quantitySold=0 → excluido
		item("activo", 5, 5),
	}
	report := performance.BuildReport(entries, items, 30)

	require.Len(t, report.Products, 1)
	p := report.Products[0]
	assert.Equal(t, "activo", p.ProductID)
	assert.False(t, math.IsInf(p.DaysOfStockLeft, 1))
}

// Idempotencia de la invocación completa: sin aleatoriedad ni estado,
// dos corridas con las mismas entradas son idénticas.
func TestBuildReport_Idempotente(t *testing.T) {
	entriesA, itemsA := portfolio()
	entriesB, itemsB := portfolio()

	a := performance.BuildReport(entriesA, itemsA, 30)
	b := performance.BuildReport(entriesB, itemsB, 30)

	require.Len(t, b.Products, len(a.Products))
	for i := range a.Products {
		assert.Equal(t, a.Products[i], b.Products[i])
	}
	assert.Equal(t, a.Summary.TotalProducts, b.Summary.TotalProducts)
	assert.True(t, a.Summary.TotalRevenue.Equal(b.Summary.TotalRevenue))
	assert.Equal(t, a.Summary.AverageMargin, b.Summary.AverageMargin)
}
