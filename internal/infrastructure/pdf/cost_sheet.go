// Package pdf genera la hoja de costos de una entrada de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega + vendedor    │  Lote + QR                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CARGOS: transporte / otros / impuestos / pago               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant | P.Unit | Transp | Otros | Imp |    │
//	│         Costo total | Costo unitario final                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES + notas                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	appinventory "github.com/jhoicas/Inventario-console/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appinventory.CostSheetRenderer = (*CostSheetGenerator)(nil)

// CostSheetGenerator implementa inventory.CostSheetRenderer usando Maroto v2.
type CostSheetGenerator struct{}

// NewCostSheetGenerator construye el generador.
func NewCostSheetGenerator() *CostSheetGenerator { return &CostSheetGenerator{} }

// RenderStockInCostSheet genera el PDF y devuelve sus bytes.
func (g *CostSheetGenerator) RenderStockInCostSheet(_ context.Context, sheet appinventory.CostSheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de costos de entrada", true).
		WithAuthor(nonEmpty(sheet.SellerID, "consola"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(chargesRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(sheet.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sheet))

	if strings.TrimSpace(sheet.Notes) != "" {
		m.AddRows(row.New(3))
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("NOTAS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(sheet.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de costos: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(sheet appinventory.CostSheet) core.Row {
	right := col.New(4).Add(
		text.New("LOTE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
		text.New(nonEmpty(sheet.BatchNumber, "(se asigna al registrar)"), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
		}),
	)
	header := row.New(22).Add(
		col.New(6).Add(
			text.New("HOJA DE COSTOS DE ENTRADA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Bodega: "+nonEmpty(sheet.WarehouseID, "—"), props.Text{Size: 9, Top: 9, Color: colorGray}),
			text.New("Vendedor: "+nonEmpty(sheet.SellerID, "—"), props.Text{Size: 9, Top: 14, Color: colorGray}),
		),
		right,
	)
	if sheet.BatchNumber != "" {
		header.Add(col.New(2).Add(code.NewQr(sheet.BatchNumber, props.Rect{Percent: 90, Center: true})))
	} else {
		header.Add(col.New(2))
	}
	return header
}

func chargesRow(sheet appinventory.CostSheet) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CARGOS DE LA ENTRADA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Transporte: $%s   |   Otros: $%s   |   Impuestos: $%s   |   Pago: %s",
				formatMoney(sheet.Charges.Transport),
				formatMoney(sheet.Charges.Other),
				formatMoney(sheet.Charges.Tax),
				nonEmpty(sheet.PaymentMethod, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("P.Unit", 1, align.Right),
		h("Transp.", 1, align.Right),
		h("Otros", 1, align.Right),
		h("Imp.", 1, align.Right),
		h("Costo total", 2, align.Right),
		h("Costo unit. final", 2, align.Right),
	)
}

func tableRows(lines []appinventory.CostSheetLine) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.ProductName
		if l.Variant != "" {
			name += " (" + l.Variant + ")"
		}
		out = append(out, row.New(7).Add(
			cell(name, 3, align.Left),
			cell(strconv.FormatInt(l.Quantity, 10), 1, align.Center),
			cell(formatMoney(l.UnitPrice), 1, align.Right),
			cell(formatMoney(l.AllocatedTransport), 1, align.Right),
			cell(formatMoney(l.AllocatedOther), 1, align.Right),
			cell(formatMoney(l.AllocatedTax), 1, align.Right),
			cell("$"+formatMoney(l.TotalCost), 2, align.Right),
			cell("$"+formatMoney(l.FinalUnitPrice), 2, align.Right),
		))
	}
	return out
}

func totalsRow(sheet appinventory.CostSheet) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	t := sheet.Totals
	return row.New(30).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades:"),
			label("Subtotal:"),
			label("Cargos prorrateados:"),
			text.New("COSTO TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 18,
			}),
		),
		col.New(3).Add(
			text.New(strconv.FormatInt(t.Units, 10), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New("$"+formatMoney(t.Subtotal), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 6}),
			text.New("$"+formatMoney(t.Transport.Add(t.Other).Add(t.Tax)), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 12}),
			text.New("$"+formatMoney(t.TotalCost), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 18,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney dos decimales, puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234.5 → "1.234,50", -7.25 → "-7,25"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
