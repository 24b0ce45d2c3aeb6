package performance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Caja-api/internal/domain/performance"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Cada rama del clasificador, evaluadas en el orden de diseño.
func TestClassify_TodasLasRamas(t *testing.T) {
	cases := []struct {
		name            string
		actualProfit    decimal.Decimal
		projectedProfit decimal.Decimal
		realizationRate float64
		currentStock    int64
		want            performance.Category
	}{
		{"sin ventas", dec(0), dec(0), 0, 10, performance.CategoryNotStarted},
		{"sin ventas y sin stock", dec(0), dec(0), 0, 0, performance.CategoryNotStarted},

		{"agotado con ganancia", dec(500), dec(500), 100, 0, performance.CategoryCompletedProfitable},
		{"agotado en equilibrio", dec(0), dec(0), 100, 0, performance.CategoryCompletedBreakeven},
		{"agotado con pérdida", dec(-300), dec(-300), 100, 0, performance.CategoryCompletedLoss},

		{"vendiendo fuerte", dec(200), dec(800), 40, 6, performance.CategoryInProgressStrong},
		{"en recuperación", dec(-100), dec(400), 40, 6, performance.CategoryInProgressRecover},
		{"en problemas", dec(-100), dec(-50), 40, 6, performance.CategoryInProgressTroubled},
		{"en declive", dec(100), dec(-50), 40, 6, performance.CategoryInProgressDeclining},
		{"realizado en cero", dec(0), dec(300), 40, 6, performance.CategoryInProgressNeutral},
		{"proyectado en cero", dec(150), dec(0), 40, 6, performance.CategoryInProgressNeutral},

		{"datos inconsistentes", dec(100), dec(100), 120, 6, performance.CategoryUnknown},
		{"realización 100 con stock", dec(100), dec(100), 100, 6, performance.CategoryUnknown},
	}

	for _, tc := range cases {
		got := performance.Classify(tc.actualProfit, tc.projectedProfit, tc.realizationRate, tc.currentStock)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

// Frontera: stock agotado con ventas registradas siempre es COMPLETED_*,
// nunca IN_PROGRESS_*. La rama de stock==0 se evalúa antes que la de
// realización < 100, así que realización 100 con stock 0 no cae en UNKNOWN.
func TestClassify_AgotadoNuncaEnProgreso(t *testing.T) {
	for _, profit := range []int64{-100, 0, 100} {
		got := performance.Classify(dec(profit), dec(profit), 100, 0)
		assert.Contains(t, []performance.Category{
			performance.CategoryCompletedProfitable,
			performance.CategoryCompletedBreakeven,
			performance.CategoryCompletedLoss,
		}, got, "profit=%d", profit)
	}
}

// El clasificador es puro: misma entrada, misma categoría.
func TestClassify_Idempotente(t *testing.T) {
	a := performance.Classify(dec(-100), dec(400), 40, 6)
	b := performance.Classify(dec(-100), dec(400), 40, 6)
	assert.Equal(t, a, b)
}

// El triple de presentación cubre las diez categorías y cae a UNKNOWN para
// valores no reconocidos.
func TestCategoryDisplay_CatalogoCompleto(t *testing.T) {
	for _, cat := range performance.AllCategories() {
		d := cat.Display()
		assert.NotEmpty(t, d.Label, "categoría %s sin etiqueta", cat)
		assert.NotEmpty(t, d.Badge, "categoría %s sin badge", cat)
		assert.NotEmpty(t, d.Icon, "categoría %s sin glifo", cat)
	}

	fallback := performance.Category("ALGO_RARO").Display()
	assert.Equal(t, performance.CategoryUnknown.Display(), fallback)
}
