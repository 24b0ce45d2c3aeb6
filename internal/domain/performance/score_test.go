package performance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Caja-api/internal/domain/performance"
)

func perf(revenue, profit float64, efficiency, turnover, margin, realization float64) *performance.ProductPerformance {
	return &performance.ProductPerformance{
		Revenue:         decimal.NewFromFloat(revenue),
		ActualProfit:    decimal.NewFromFloat(profit),
		StockEfficiency: efficiency,
		StockTurnover:   turnover,
		ProfitMargin:    margin,
		RealizationRate: realization,
	}
}

// Producto totalmente en cero: puntaje exactamente 0.
func TestComputeScore_TodoCeroDaCero(t *testing.T) {
	assert.Zero(t, performance.ComputeScore(perf(0, 0, 0, 0, 0, 0)))
}

// Cada sub-score se normaliza linealmente contra su constante de
// calibración y se pondera.
func TestComputeScore_SubScoresPonderados(t *testing.T) {
	// solo ingresos: 50.000 de 100.000 → sub-score 50 * 0.20 = 10
	assert.Equal(t, 10, performance.ComputeScore(perf(50_000, 0, 0, 0, 0, 0)))

	// solo ganancia: 25.000 de 50.000 → sub-score 50 * 0.30 = 15
	assert.Equal(t, 15, performance.ComputeScore(perf(0, 25_000, 0, 0, 0, 0)))

	// solo eficiencia: 50% * 0.20 = 10
	assert.Equal(t, 10, performance.ComputeScore(perf(0, 0, 50, 0, 0, 0)))

	// solo rotación: 1.0 * 50 = 50 * 0.15 = 7.5 → 8
	assert.Equal(t, 8, performance.ComputeScore(perf(0, 0, 0, 1, 0, 0)))

	// solo margen: 50% * 0.15 = 7.5 → 8
	assert.Equal(t, 8, performance.ComputeScore(perf(0, 0, 0, 0, 50, 0)))

	// solo realización: 50% * 0.10 = 5
	assert.Equal(t, 5, performance.ComputeScore(perf(0, 0, 0, 0, 0, 50)))
}

// Los topes son solo superiores: cada sub-score se recorta en 100 por
// arriba, pero no existe piso.
func TestComputeScore_TopeSuperior(t *testing.T) {
	// ingresos muy por encima de la escala: sub-score capado en 100
	capped := performance.ComputeScore(perf(10_000_000, 0, 0, 0, 0, 0))
	assert.Equal(t, 20, capped)

	// rotación extrema: 100 * 0.15 = 15
	assert.Equal(t, 15, performance.ComputeScore(perf(0, 0, 0, 500, 0, 0)))
}

// La asimetría intencional: pérdidas y márgenes negativos NO se recortan
// en cero, así que el compuesto puede quedar por debajo de 0.
func TestComputeScore_PerdidasEmpujanBajoCero(t *testing.T) {
	// pérdida de 100.000: sub-score de ganancia = -200 * 0.30 = -60
	score := performance.ComputeScore(perf(0, -100_000, 0, 0, -50, 0))
	assert.Less(t, score, 0, "un producto a pérdida debe poder puntuar negativo")
}

// Puntaje del escenario de referencia (agotado, 50% de margen): las seis
// contribuciones exactas suman 102.5 y el redondeo da 103.
func TestComputeScore_EscenarioReferencia(t *testing.T) {
	p := perf(100_000, 50_000, 100, 2, 50, 100)
	assert.Equal(t, 103, performance.ComputeScore(p))
}
