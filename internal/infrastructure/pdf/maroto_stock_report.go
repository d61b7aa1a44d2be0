// Package pdf implementa el informe de stock imprimible del PDV: la tabla de
// productos con precios, cantidades, estado de stock y código de barras.
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/pdv-admin-api/internal/application/report"
	"github.com/jhoicas/pdv-admin-api/internal/domain/entity"
	domstock "github.com/jhoicas/pdv-admin-api/internal/domain/stock"
	"github.com/jhoicas/pdv-admin-api/pkg/format"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLow     = &props.Color{Red: 190, Green: 30, Blue: 30}
	colorExcess  = &props.Color{Red: 220, Green: 120, Blue: 0}
	colorNormal  = &props.Color{Red: 30, Green: 130, Blue: 50}
)

var _ report.PDFGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa report.PDFGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReportPDF genera el PDF del informe de stock y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReportPDF(
	_ context.Context,
	company *entity.Company,
	products []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de stock", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la empresa (izq) y fecha de emisión (der).
func headerRow(company *entity.Company) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Informe de stock", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(6).Add(
		text.NewCol(3, "Producto", header),
		text.NewCol(3, "Código", header),
		text.NewCol(2, "Costo", headerRight),
		text.NewCol(2, "Venta", headerRight),
		text.NewCol(1, "Stock", headerRight),
		text.NewCol(1, "Estado", header),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}

	codeCol := col.New(3)
	if p.Code != "" {
		codeCol.Add(code.NewBar(p.Code, props.Barcode{Percent: 70, Center: true}))
	} else {
		codeCol.Add(text.New("—", props.Text{Size: 8, Top: 1, Color: colorGray, Align: align.Center}))
	}

	status := domstock.Classify(p.StockCurrent, p.StockMin, p.StockMax)

	return row.New(9).Add(
		text.NewCol(3, p.Name, cell),
		codeCol,
		text.NewCol(2, format.FormatDecimal(p.PriceCost), cellRight),
		text.NewCol(2, format.FormatDecimal(p.PriceSale), cellRight),
		text.NewCol(1, p.StockCurrent.String(), cellRight),
		text.NewCol(1, statusLabel(status), props.Text{Size: 8, Top: 1, Color: statusColor(status)}),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		text.NewCol(12, fmt.Sprintf("%d productos", total), props.Text{
			Size: 8, Top: 2, Color: colorGray, Align: align.Right,
		}),
	)
}

func statusLabel(status string) string {
	switch status {
	case domstock.StatusLow:
		return "Bajo"
	case domstock.StatusExcess:
		return "Exceso"
	default:
		return "Normal"
	}
}

func statusColor(status string) *props.Color {
	switch status {
	case domstock.StatusLow:
		return colorLow
	case domstock.StatusExcess:
		return colorExcess
	default:
		return colorNormal
	}
}
