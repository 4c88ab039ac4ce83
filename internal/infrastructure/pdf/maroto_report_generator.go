// Package pdf implementa a renderização do relatório de período em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Quitanda + período filtrado                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Entradas | Saídas | Perdas | Saldo                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Vendido | Comprado | Perdido | Resultado  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/hortidev/quitanda-api/internal/application/usecase"
	"github.com/hortidev/quitanda-api/pkg/format"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 109, Green: 40, Blue: 217} // violeta do tema
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 190, Green: 18, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.PeriodReportPDFGenerator com Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GeneratePeriodReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GeneratePeriodReport(
	_ context.Context,
	data *usecase.PeriodReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Período", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range data.Rows {
		m.AddRows(productRow(r))
	}
	if len(data.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma movimentação no período.", props.Text{
				Size: 9, Color: colorGray, Top: 2, Align: align.Center,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(data *usecase.PeriodReportData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Quitanda — Relatório de Período", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Movimentações de estoque e resultado financeiro", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Label, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

func totalsRow(data *usecase.PeriodReportData) core.Row {
	t := data.Totals
	saldoColor := colorPrimary
	if t.Saldo.IsNegative() {
		saldoColor = colorLoss
	}
	return row.New(16).Add(
		totalCol("ENTRADAS", format.Money(t.Entradas), colorPrimary),
		totalCol("SAÍDAS", format.Money(t.Saidas), colorGray),
		totalCol("PERDAS", format.Money(t.Perdas), colorLoss),
		totalCol("SALDO", format.Money(t.Saldo), saldoColor),
	)
}

func totalCol(label, value string, color *props.Color) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 2}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: color, Top: 7}),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Align: align.Right}
	return row.New(8).Add(
		col.New(4).Add(text.New("Produto", header)),
		col.New(2).Add(text.New("Vendido", headerRight)),
		col.New(2).Add(text.New("Comprado", headerRight)),
		col.New(2).Add(text.New("Perdido", headerRight)),
		col.New(2).Add(text.New("Resultado", headerRight)),
	)
}

func productRow(r usecase.ProductReportRow) core.Row {
	cell := props.Text{Size: 8, Top: 2}
	cellRight := props.Text{Size: 8, Top: 2, Align: align.Right}
	s := r.Stats
	resultColor := colorPrimary
	if s.Result.IsNegative() {
		resultColor = colorLoss
	}
	return row.New(7).Add(
		col.New(4).Add(text.New(r.Name, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%s (%d)", format.Money(s.Sold), s.SoldQtd), cellRight)),
		col.New(2).Add(text.New(fmt.Sprintf("%s (%d)", format.Money(s.Bought), s.BoughtQtd), cellRight)),
		col.New(2).Add(text.New(fmt.Sprintf("%s (%d)", format.Money(s.Lost), s.LostQtd), cellRight)),
		col.New(2).Add(text.New(format.Money(s.Result), props.Text{
			Size: 8, Top: 2, Align: align.Right, Style: fontstyle.Bold, Color: resultColor,
		})),
	)
}
