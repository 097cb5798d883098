// Package pdf renders the customer order receipt.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Store name  │  Order # + Date                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER: Name / Phone / Delivery address                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Item | Unit Price | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Payment method / TOTAL                             │
//	│  FOOTER: Status + thank-you note                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rjfoods/storefront-api/internal/application/receipt"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ receipt.Generator = (*ReceiptGenerator)(nil)

// ReceiptGenerator implements receipt.Generator using Maroto v2.
type ReceiptGenerator struct {
	storeName string
	printer   *message.Printer
}

// NewReceiptGenerator builds the generator. storeName appears in the header.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{
		storeName: storeName,
		printer:   message.NewPrinter(language.English),
	}
}

// Render produces the receipt PDF and returns its bytes.
func (g *ReceiptGenerator) Render(order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Order Receipt", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: store name (left), order number and date (right).
func (g *ReceiptGenerator) headerRow(order *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Order Receipt", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDER", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("#"+shortRef(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: delivery contact snapshot taken at checkout.
func customerRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DELIVER TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Phone: %s   |   Address: %s",
				order.CustomerPhone, order.CustomerAddress,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 6, align.Left),
		h("Unit Price", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: one row per snapshot line.
func (g *ReceiptGenerator) tableItemRows(items []entity.CartItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				item.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				g.money(item.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				g.money(item.Subtotal()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: payment method and grand total aligned right.
func (g *ReceiptGenerator) totalsRow(order *entity.Order) core.Row {
	payment := order.PaymentMethod
	if order.TransactionID != "" {
		payment += "  (txn " + order.TransactionID + ")"
	}
	return row.New(20).Add(
		col.New(3),
		col.New(4).Add(
			text.New("Payment:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New(payment, props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(g.money(order.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 7,
			}),
		),
	)
}

func footerRow(order *entity.Order) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Status: "+order.Status, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		}),
		text.New("Thank you for your order. Keep this receipt for your records.", props.Text{
			Size: 7, Color: colorGray, Top: 7,
		}),
	))
}

// money formats an amount with thousands separators, e.g. "Rs 1,750".
func (g *ReceiptGenerator) money(amount decimal.Decimal) string {
	return g.printer.Sprintf("Rs %d", amount.Round(0).IntPart())
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
