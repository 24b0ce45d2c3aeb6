package performance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/performance"
)

// entry helper para construir asientos de prueba.
func entry(productID, entryType string, amount float64, qty int64) entity.LedgerEntry {
	return entity.LedgerEntry{
		ProductID: productID,
		Type:      entryType,
		Amount:    decimal.NewFromFloat(amount),
		Quantity:  qty,
	}
}

// Las ventas suman ingresos y unidades; gastos y compras suman costo.
func TestAggregateEntries_SumaFlujosPorProducto(t *testing.T) {
	entries := []entity.LedgerEntry{
		entry("p1", entity.EntryTypeSale, 1000, 2),
		entry("p1", entity.EntryTypeSale, 500, 1),
		entry("p1", entity.EntryTypeExpense, 200, 0),
		entry("p1", entity.EntryTypeStockIn, 300, 5),
		entry("p2", entity.EntryTypeSale, 80, 4),
	}

	byProduct := performance.AggregateEntries(entries)

	p1, ok := byProduct["p1"]
	require.True(t, ok, "p1 debe tener agregado")
	assert.True(t, p1.Revenue.Equal(decimal.NewFromInt(1500)), "revenue p1: %s", p1.Revenue)
	assert.EqualValues(t, 3, p1.QuantitySold)
	assert.True(t, p1.TotalCost.Equal(decimal.NewFromInt(500)), "costo p1: %s", p1.TotalCost)

	p2 := byProduct["p2"]
	assert.True(t, p2.Revenue.Equal(decimal.NewFromInt(80)))
	assert.EqualValues(t, 4, p2.QuantitySold)
	assert.True(t, p2.TotalCost.IsZero())
}

// Asientos sin producto no son atribuibles y se ignoran.
func TestAggregateEntries_IgnoraAsientosSinProducto(t *testing.T) {
	entries := []entity.LedgerEntry{
		entry("", entity.EntryTypeSale, 9999, 10),
		entry("p1", entity.EntryTypeSale, 100, 1),
	}

	byProduct := performance.AggregateEntries(entries)

	require.Len(t, byProduct, 1)
	assert.True(t, byProduct["p1"].Revenue.Equal(decimal.NewFromInt(100)))
}

// Tipos desconocidos no aportan ni a ingresos ni a costos (degradación
// permisiva: un asiento raro nunca tumba el cálculo).
func TestAggregateEntries_TiposDesconocidosNoAportan(t *testing.T) {
	entries := []entity.LedgerEntry{
		entry("p1", entity.EntryTypeAdjustment, 400, 2),
		entry("p1", "REFUND", 250, 1),
		entry("p1", entity.EntryTypeSale, 100, 1),
	}

	byProduct := performance.AggregateEntries(entries)

	p1 := byProduct["p1"]
	assert.True(t, p1.Revenue.Equal(decimal.NewFromInt(100)))
	assert.EqualValues(t, 1, p1.QuantitySold)
	assert.True(t, p1.TotalCost.IsZero())
}

// La suma es conmutativa: el orden de los asientos no altera el resultado.
func TestAggregateEntries_OrdenIndependiente(t *testing.T) {
	a := []entity.LedgerEntry{
		entry("p1", entity.EntryTypeSale, 100, 1),
		entry("p1", entity.EntryTypeExpense, 40, 0),
		entry("p1", entity.EntryTypeSale, 60, 2),
	}
	b := []entity.LedgerEntry{a[2], a[0], a[1]}

	aggA := performance.AggregateEntries(a)["p1"]
	aggB := performance.AggregateEntries(b)["p1"]

	assert.True(t, aggA.Revenue.Equal(aggB.Revenue))
	assert.Equal(t, aggA.QuantitySold, aggB.QuantitySold)
	assert.True(t, aggA.TotalCost.Equal(aggB.TotalCost))
}
