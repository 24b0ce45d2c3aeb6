package performance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// Summary agregados de portafolio sobre los productos incluidos en el
// reporte, más los punteros al mejor producto por cada dimensión. Los
// punteros son nil cuando el reporte no tiene productos.
type Summary struct {
	TotalProducts int
	TotalRevenue  decimal.Decimal
	TotalProfit   decimal.Decimal
	AverageMargin float64

	BestByRevenue *ProductPerformance
	BestByProfit  *ProductPerformance
	BestByScore   *ProductPerformance
}

// Report resultado completo del motor: productos con ventas realizadas,
// rankeados, más el resumen de portafolio. El llamador es dueño exclusivo
// del valor devuelto; el motor no retiene referencias.
type Report struct {
	Products []*ProductPerformance
	Summary  Summary
}

// BuildReport ejecuta el pipeline completo: agrega los asientos por
// producto, deriva métricas por cada producto del inventario, excluye los
// que no registran ventas (QuantitySold == 0), asigna los tres rankings y
// calcula el resumen. daysToAnalyze <= 0 usa DefaultAnalysisDays.
//
// Los productos conservan el orden relativo de la lista de entrada; los
// empates de ranking se resuelven por ese orden (sort estable), nunca con
// rangos repetidos.
func BuildReport(entries []entity.LedgerEntry, items []*entity.StockItem, daysToAnalyze int) *Report {
	if daysToAnalyze <= 0 {
		daysToAnalyze = DefaultAnalysisDays
	}
	byProduct := AggregateEntries(entries)

	products := make([]*ProductPerformance, 0, len(items))
	for _, item := range items {
		agg, ok := byProduct[item.ID]
		if !ok {
			agg = zeroAggregate()
		}
		p := ComputeMetrics(item, agg, daysToAnalyze)
		if p.QuantitySold == 0 {
			// sin ventas realizadas: fuera del reporte y de los rankings
			continue
		}
		products = append(products, p)
	}

	rankProducts(products)

	return &Report{
		Products: products,
		Summary:  summarize(products),
	}
}

// rankProducts escribe los rankings 1-based por ingresos, ganancia
// realizada y eficiencia de stock. Cada dimensión es un sort descendente
// estable independiente sobre una copia del slice.
func rankProducts(products []*ProductPerformance) {
	ranked := make([]*ProductPerformance, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	for i, p := range ranked {
		p.RankByRevenue = i + 1
	}

	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ActualProfit.GreaterThan(ranked[j].ActualProfit)
	})
	for i, p := range ranked {
		p.RankByProfit = i + 1
	}

	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].StockEfficiency > ranked[j].StockEfficiency
	})
	for i, p := range ranked {
		p.RankByEfficiency = i + 1
	}
}

// summarize calcula los totales del portafolio y encuentra el mejor
// producto por ingresos, ganancia y puntaje (reducción izquierda-derecha:
// en empate gana el primero encontrado).
func summarize(products []*ProductPerformance) Summary {
	s := Summary{
		TotalProducts: len(products),
		TotalRevenue:  decimal.Zero,
		TotalProfit:   decimal.Zero,
	}
	for _, p := range products {
		s.TotalRevenue = s.TotalRevenue.Add(p.Revenue)
		s.TotalProfit = s.TotalProfit.Add(p.ActualProfit)

		if s.BestByRevenue == nil || p.Revenue.GreaterThan(s.BestByRevenue.Revenue) {
			s.BestByRevenue = p
		}
		if s.BestByProfit == nil || p.ActualProfit.GreaterThan(s.BestByProfit.ActualProfit) {
			s.BestByProfit = p
		}
		if s.BestByScore == nil || p.Score > s.BestByScore.Score {
			s.BestByScore = p
		}
	}
	if s.TotalRevenue.IsPositive() {
		s.AverageMargin = s.TotalProfit.InexactFloat64() / s.TotalRevenue.InexactFloat64() * 100
	}
	return s
}
