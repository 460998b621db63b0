// Package pdf renders the printable order receipt (struk).
//
// Layout, 80mm thermal-style page:
//
//	┌──────────────────────────────┐
//	│        KODE TOKO             │
//	│        (cabang)              │
//	│  tanggal  ·  order id        │
//	│  ──────────────────────────  │
//	│  item   qty  harga  subtotal │
//	│  ──────────────────────────  │
//	│  TOTAL                       │
//	│  metode pembayaran           │
//	│  terima kasih                │
//	└──────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tokopos/tokopos-api/internal/application/ports"
	"github.com/tokopos/tokopos-api/internal/domain/entity"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

var _ ports.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ReceiptGenerator implements the ReceiptGenerator port using Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator builds the generator.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// GenerateReceiptPDF renders the struk and returns its bytes.
func (g *ReceiptGenerator) GenerateReceiptPDF(_ context.Context, order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(80, 180).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "courier", Size: 8}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(order)...)
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))
	m.AddRows(lineTableHeader())
	for _, r := range lineRows(order.Lines) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))
	m.AddRows(footerRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(order *entity.Order) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(order.KodeToko, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
			}),
		)),
	}
	if order.KodeCabang != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("Cabang "+order.KodeCabang, props.Text{
				Size: 8, Align: align.Center, Color: colorGray,
			}),
		)))
	}
	rows = append(rows, row.New(4).Add(col.New(12).Add(
		text.New(order.Tanggal.Format("02/01/2006 15:04"), props.Text{
			Size: 7, Align: align.Center, Color: colorGray,
		}),
	)))
	rows = append(rows, row.New(4).Add(col.New(12).Add(
		text.New("No. "+order.ID, props.Text{
			Size: 6, Align: align.Center, Color: colorGray,
		}),
	)))
	return rows
}

func lineTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
		}))
	}
	return row.New(5).Add(
		h("Item", 6, align.Left),
		h("Qty", 2, align.Center),
		h("Subtotal", 4, align.Right),
	)
}

func lineRows(lines []entity.OrderLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(l.Name, props.Text{Size: 7, Align: align.Left})),
			col.New(2).Add(text.New(fmt.Sprintf("x%d", l.Qty), props.Text{Size: 7, Align: align.Center})),
			col.New(4).Add(text.New("Rp"+l.Subtotal.StringFixed(0), props.Text{Size: 7, Align: align.Right})),
		))
	}
	return rows
}

func footerRows(order *entity.Order) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(6).Add(text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Left,
			})),
			col.New(6).Add(text.New("Rp"+order.Total.StringFixed(0), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
			})),
		),
	}
	if order.MetodePembayaran != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("Pembayaran: "+order.MetodePembayaran, props.Text{
				Size: 7, Color: colorGray,
			}),
		)))
	}
	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New("Terima kasih atas kunjungan Anda", props.Text{
			Size: 7, Align: align.Center, Color: colorGray, Top: 2,
		}),
	)))
	return rows
}
