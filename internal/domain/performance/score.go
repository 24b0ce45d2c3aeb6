package performance

import "math"

// Constantes de calibración del puntaje compuesto. Son valores fijos de
// diseño, no derivados de los datos; cambiarlos cambia todos los puntajes
// calculados.
const (
	revenueScale = 100_000 // ingresos que equivalen a sub-score 100
	profitScale  = 50_000  // ganancia que equivale a sub-score 100
	turnoverGain = 50      // rotación 2x equivale a sub-score 100

	weightRevenue     = 0.20
	weightProfit      = 0.30
	weightEfficiency  = 0.20
	weightTurnover    = 0.15
	weightMargin      = 0.15
	weightRealization = 0.10
)

// ComputeScore combina seis sub-scores normalizados linealmente en un
// puntaje compuesto redondeado, en [0, 100] para entradas normales.
//
// Los topes son de un solo lado (superior): una ganancia o margen negativo
// NO se recorta en cero antes de ponderar, así que un producto a pérdida
// puede empujar el compuesto por debajo de 0. La asimetría es intencional:
// premia a los productos rentables y castiga a los que pierden plata.
func ComputeScore(p *ProductPerformance) int {
	revenueScore := min(p.Revenue.InexactFloat64()/revenueScale*100, 100)
	profitScore := min(p.ActualProfit.InexactFloat64()/profitScale*100, 100)
	efficiencyScore := min(p.StockEfficiency, 100)
	turnoverScore := min(p.StockTurnover*turnoverGain, 100)
	marginScore := min(p.ProfitMargin, 100)
	realizationScore := min(p.RealizationRate, 100)

	total := revenueScore*weightRevenue +
		profitScore*weightProfit +
		efficiencyScore*weightEfficiency +
		turnoverScore*weightTurnover +
		marginScore*weightMargin +
		realizationScore*weightRealization

	return int(math.Round(total))
}
