package performance

import "github.com/shopspring/decimal"

// Category etapa del ciclo de vida comercial de un producto. Conjunto
// cerrado: el clasificador solo produce las constantes de abajo.
type Category string

// Etapas del ciclo de vida.
const (
	CategoryNotStarted          Category = "NOT_STARTED"
	CategoryCompletedProfitable Category = "COMPLETED_PROFITABLE"
	CategoryCompletedBreakeven  Category = "COMPLETED_BREAKEVEN"
	CategoryCompletedLoss       Category = "COMPLETED_LOSS"
	CategoryInProgressStrong    Category = "IN_PROGRESS_STRONG"
	CategoryInProgressRecover   Category = "IN_PROGRESS_RECOVERING"
	CategoryInProgressTroubled  Category = "IN_PROGRESS_TROUBLED"
	CategoryInProgressDeclining Category = "IN_PROGRESS_DECLINING"
	CategoryInProgressNeutral   Category = "IN_PROGRESS_NEUTRAL"
	// CategoryUnknown solo es alcanzable con datos de entrada inconsistentes
	// (realización >= 100% con stock todavía en mano). El llamador debe
	// tratarla como señal de integridad de datos, no como falla del cálculo.
	CategoryUnknown Category = "UNKNOWN"
)

// Classify determina la etapa del ciclo de vida de un producto. Decisión
// determinista evaluada de arriba hacia abajo; las ramas son mutuamente
// excluyentes y exhaustivas sobre el dominio de entrada:
//
//  1. Sin ventas registradas → NOT_STARTED.
//  2. Stock agotado (estados terminales) → COMPLETED_* según el signo de
//     la ganancia realizada.
//  3. Todavía vendiendo (realización < 100%) → IN_PROGRESS_* según los
//     signos de la ganancia realizada y la proyectada.
//  4. Realización >= 100% con stock en mano → UNKNOWN (solo posible con
//     datos upstream inconsistentes, ej. quantitySold > initialStock).
func Classify(actualProfit, projectedProfit decimal.Decimal, realizationRate float64, currentStock int64) Category {
	switch {
	case realizationRate == 0:
		return CategoryNotStarted

	case currentStock == 0:
		switch {
		case actualProfit.IsPositive():
			return CategoryCompletedProfitable
		case actualProfit.IsZero():
			return CategoryCompletedBreakeven
		default:
			return CategoryCompletedLoss
		}

	case realizationRate < 100:
		switch {
		case actualProfit.IsPositive() && projectedProfit.IsPositive():
			return CategoryInProgressStrong
		case actualProfit.IsNegative() && projectedProfit.IsPositive():
			return CategoryInProgressRecover
		case actualProfit.IsNegative() && projectedProfit.IsNegative():
			return CategoryInProgressTroubled
		case actualProfit.IsPositive() && projectedProfit.IsNegative():
			return CategoryInProgressDeclining
		default:
			// alguna de las dos ganancias es exactamente cero
			return CategoryInProgressNeutral
		}

	default:
		return CategoryUnknown
	}
}
