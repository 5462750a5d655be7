// Package pdf implementa la generación del reporte de reposición en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Stock | Mín | Pedido | Proveedor | Costo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de productos y costo estimado del pedido    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	appinv "github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa inventory.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ appinv.ReportGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReplenishmentPDF genera el reporte de reposición y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReplenishmentPDF(
	_ context.Context,
	suggestions []*domaininv.ReplenishmentSuggestion,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Reposición de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, s := range suggestions {
		m.AddRows(suggestionRow(s))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(suggestions))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte + fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE REPOSICIÓN DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de sugerencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Stock", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Pedido", 1, align.Right),
		h("Urgencia", 1, align.Center),
		h("Mejor proveedor", 3, align.Left),
		h("Costo est.", 2, align.Right),
	)
}

// suggestionRow: una fila por producto sugerido. Urgencia >= 0.9 en rojo.
func suggestionRow(s *domaininv.ReplenishmentSuggestion) core.Row {
	urgencyColor := colorGray
	if s.UrgencyScore >= 0.9 {
		urgencyColor = colorAlert
	}
	proveedor, costo := "—", "—"
	if s.BestQuote != nil {
		proveedor = s.BestQuote.SupplierName
		costo = money.BRL(s.BestQuote.TotalCost).Formatted()
	}
	return row.New(7).Add(
		col.New(3).Add(text.New(s.ProductName, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(1).Add(text.New(s.CurrentStock.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(1).Add(text.New(s.MinStockLevel.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(1).Add(text.New(s.SuggestedOrderQty.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%.0f%%", s.UrgencyScore*100), props.Text{
			Size: 8, Align: align.Center, Top: 1, Color: urgencyColor,
		})),
		col.New(3).Add(text.New(proveedor, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(costo, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// summaryRow: total de productos y costo estimado del pedido completo.
func summaryRow(suggestions []*domaininv.ReplenishmentSuggestion) core.Row {
	total := decimal.Zero
	for _, s := range suggestions {
		if s.BestQuote != nil {
			total = total.Add(s.BestQuote.TotalCost)
		}
	}
	return row.New(10).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("Productos a reponer: %d", len(suggestions)),
			props.Text{Size: 9, Top: 2, Color: colorGray},
		)),
		col.New(6).Add(text.New(
			"Costo estimado total: "+money.BRL(total).Formatted(),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary},
		)),
	)
}
