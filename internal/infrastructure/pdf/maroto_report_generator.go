// Package pdf implementa la versión imprimible del reporte de desempeño de
// productos usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio  │  Título del reporte + ventana de días    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ingresos / ganancia / margen / mejores productos   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Ingresos | Ganancia | Efic. | Score   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda del puntaje                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Caja-api/internal/application/usecase"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/performance"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte de desempeño y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	business *entity.Business,
	report *performance.Report,
	days int,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Desempeño de Productos", true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, days))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.Products) {
		m.AddRows(r)
	}
	if len(report.Products) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin productos con ventas registradas en este período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y título + ventana de análisis (der).
func headerRow(business *entity.Business, days int) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(business.OwnerEmail, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DESEMPEÑO DE PRODUCTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ventana de análisis: %d días", days), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRows: KPIs del portafolio y mejores productos por dimensión.
func summaryRows(s performance.Summary) []core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	rows := []core.Row{
		row.New(14).Add(
			kpi("Productos activos", fmt.Sprintf("%d", s.TotalProducts)),
			kpi("Ingresos totales", "$"+formatMoney(s.TotalRevenue.StringFixed(0))),
			kpi("Ganancia total", "$"+formatMoney(s.TotalProfit.StringFixed(0))),
			kpi("Margen promedio", fmt.Sprintf("%.1f%%", s.AverageMargin)),
		),
	}

	if s.BestByRevenue != nil {
		best := func(label string, p *performance.ProductPerformance) core.Col {
			return col.New(4).Add(
				text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 5}),
			)
		}
		rows = append(rows, row.New(12).Add(
			best("Mayor ingreso", s.BestByRevenue),
			best("Mayor ganancia", s.BestByProfit),
			best("Mejor puntaje", s.BestByScore),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 3, align.Left),
		h("Ingresos", 2, align.Right),
		h("Ganancia", 2, align.Right),
		h("Efic.", 1, align.Right),
		h("Etapa", 2, align.Left),
		h("Score", 1, align.Right),
	)
}

// tableRows: una fila por producto, ordenadas por el ranking de ingresos.
func tableRows(products []*performance.ProductPerformance) []core.Row {
	ordered := make([]*performance.ProductPerformance, len(products))
	copy(ordered, products)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].RankByRevenue < ordered[j].RankByRevenue
	})

	result := make([]core.Row, 0, len(ordered))
	for _, p := range ordered {
		profitColor := (*props.Color)(nil)
		if p.ActualProfit.IsNegative() {
			profitColor = colorDanger
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.RankByRevenue),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(p.Revenue.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(p.ActualProfit.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: profitColor},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%.0f%%", p.StockEfficiency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				p.Category.Display().Label,
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.Score),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda del puntaje compuesto.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"El puntaje combina ingresos, ganancia, eficiencia de stock, rotación, margen y "+
				"realización con pesos fijos. Un puntaje negativo indica un producto a pérdida.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	if len(s) > 0 && s[0] == '-' {
		return "-" + formatMoney(s[1:])
	}
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
