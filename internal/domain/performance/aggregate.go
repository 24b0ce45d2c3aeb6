// Package performance implementa el motor de desempeño de productos: a partir
// de los asientos del libro diario y el estado actual del inventario deriva,
// por producto, las métricas financieras realizadas y proyectadas, la etapa
// del ciclo de vida, un puntaje compuesto 0-100 y los rankings cruzados.
//
// Todo el paquete es cálculo puro: sin I/O, sin estado compartido y sin
// efectos secundarios. Una invocación es una función total de sus entradas;
// dos invocaciones con las mismas entradas producen salidas idénticas.
package performance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// Aggregate acumula los flujos realizados de un producto: ingresos por
// ventas, unidades vendidas y costo incurrido (gastos + compras de
// mercancía). Es un valor efímero de una sola invocación del motor.
type Aggregate struct {
	Revenue      decimal.Decimal
	QuantitySold int64
	TotalCost    decimal.Decimal
}

// zeroAggregate agregado por defecto para productos sin asientos.
func zeroAggregate() Aggregate {
	return Aggregate{Revenue: decimal.Zero, TotalCost: decimal.Zero}
}

// AggregateEntries agrupa los asientos por producto y acumula sus flujos.
// Asientos sin ProductID no son atribuibles a un producto y se ignoran,
// igual que los tipos de asiento que no afectan ingresos ni costos
// (política de degradación permisiva: un asiento mal formado nunca tumba
// el cálculo completo). La suma es conmutativa, así que el orden de los
// asientos no altera el resultado.
func AggregateEntries(entries []entity.LedgerEntry) map[string]Aggregate {
	byProduct := make(map[string]Aggregate, len(entries))
	for _, e := range entries {
		if e.ProductID == "" {
			continue
		}
		agg, ok := byProduct[e.ProductID]
		if !ok {
			agg = zeroAggregate()
		}
		switch e.Type {
		case entity.EntryTypeSale:
			agg.Revenue = agg.Revenue.Add(e.Amount)
			agg.QuantitySold += e.Quantity
		case entity.EntryTypeExpense, entity.EntryTypeStockIn:
			agg.TotalCost = agg.TotalCost.Add(e.Amount)
		default:
			// tipo desconocido: no aporta ni a ingresos ni a costos
			continue
		}
		byProduct[e.ProductID] = agg
	}
	return byProduct
}
