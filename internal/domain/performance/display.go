package performance

// CategoryDisplay triple de presentación de una etapa del ciclo de vida:
// etiqueta legible, tag de estilo para la capa de presentación y glifo.
type CategoryDisplay struct {
	Label string
	Badge string // success | info | warning | danger | secondary
	Icon  string
}

var categoryDisplays = map[Category]CategoryDisplay{
	CategoryNotStarted:          {Label: "Sin ventas aún", Badge: "secondary", Icon: "⏸"},
	CategoryCompletedProfitable: {Label: "Agotado con ganancia", Badge: "success", Icon: "🏆"},
	CategoryCompletedBreakeven:  {Label: "Agotado en punto de equilibrio", Badge: "info", Icon: "⚖"},
	CategoryCompletedLoss:       {Label: "Agotado con pérdida", Badge: "danger", Icon: "📉"},
	CategoryInProgressStrong:    {Label: "Vendiendo con ganancia", Badge: "success", Icon: "📈"},
	CategoryInProgressRecover:   {Label: "En recuperación", Badge: "warning", Icon: "🔄"},
	CategoryInProgressTroubled:  {Label: "En problemas", Badge: "danger", Icon: "⚠"},
	CategoryInProgressDeclining: {Label: "En declive", Badge: "warning", Icon: "🔻"},
	CategoryInProgressNeutral:   {Label: "En equilibrio", Badge: "info", Icon: "➖"},
	CategoryUnknown:             {Label: "Indeterminado", Badge: "secondary", Icon: "❔"},
}

// Display devuelve el triple de presentación de la categoría. Cualquier
// valor no reconocido cae al triple de UNKNOWN.
func (c Category) Display() CategoryDisplay {
	if d, ok := categoryDisplays[c]; ok {
		return d
	}
	return categoryDisplays[CategoryUnknown]
}

// AllCategories lista las etapas del ciclo de vida en el orden de
// evaluación del clasificador, incluida UNKNOWN.
func AllCategories() []Category {
	return []Category{
		CategoryNotStarted,
		CategoryCompletedProfitable,
		CategoryCompletedBreakeven,
		CategoryCompletedLoss,
		CategoryInProgressStrong,
		CategoryInProgressRecover,
		CategoryInProgressTroubled,
		CategoryInProgressDeclining,
		CategoryInProgressNeutral,
		CategoryUnknown,
	}
}
