// Package pdf converts invoices to PDF documents. Two engines implement
// the same port: ChromePDFGenerator prints the shared HTML markup through
// headless Chromium, and MarotoPDFGenerator draws the layout natively for
// deployments without a browser binary.
//
// A4 page layout (native engine):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: issuer name + contact   │  INVOICE + n° + dates     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: client name / company / address                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Qty | Unit Price | Total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Tax (rate %) / GRAND TOTAL               │
//	│  NOTES / TERMS                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/billforge/billforge-api/internal/application/billing"
	domainbilling "github.com/billforge/billforge-api/internal/domain/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/infrastructure/render"
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// Teal accent matching the HTML document theme.
var (
	colorAccent = &props.Color{Red: 13, Green: 148, Blue: 136}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator draws the invoice natively with Maroto v2.
type MarotoPDFGenerator struct {
	issuer render.Issuer
}

// NewMarotoPDFGenerator builds the generator with the issuer identity.
func NewMarotoPDFGenerator(issuer render.Issuer) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: issuer}
}

// GenerateInvoicePDF generates the PDF and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(g.issuer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.5}))
	m.AddRows(g.billToRows(inv)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(inv.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.3}))
	m.AddRows(totalsRow(inv))

	for _, r := range freeTextRows("Notes", inv.Notes) {
		m.AddRows(r)
	}
	for _, r := range freeTextRows("Terms", inv.Terms) {
		m.AddRows(r)
	}

	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Thank you for your business!", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 4,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: issuer identity (left) and invoice number + dates (right).
func (g *MarotoPDFGenerator) headerRow(inv *entity.Invoice) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(g.issuer.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorAccent, Top: 1,
			}),
			text.New(strings.ReplaceAll(g.issuer.Address, "\n", ", "), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(g.issuer.Email, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right, Color: colorAccent, Top: 1,
			}),
			text.New("No: "+inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
			}),
			text.New(
				fmt.Sprintf("Issued: %s   Due: %s",
					inv.IssueDate.Format("02/01/2006"), inv.DueDate.Format("02/01/2006")),
				props.Text{Size: 8, Align: align.Right, Top: 15, Color: colorGray},
			),
		),
	)
}

// billToRows: client billing block; empty optionals collapse.
func (g *MarotoPDFGenerator) billToRows(inv *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAccent, Top: 1,
			}),
			text.New(inv.ClientName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		)),
	}
	if inv.ClientCompany != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(inv.ClientCompany, props.Text{Size: 9, Color: colorGray}),
		)))
	}
	for _, addrLine := range splitLines(inv.ClientAddress) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(addrLine, props.Text{Size: 8, Color: colorGray}),
		)))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorAccent, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				item.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				item.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				render.FormatMoney(item.Rate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				render.FormatMoney(domainbilling.LineAmount(item)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block.
func totalsRow(inv *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("GRAND TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorAccent, Right: 2,
	})
	grandValue := text.New(render.FormatMoney(inv.Total), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorAccent, Right: 1,
	})

	return row.New(24).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("Tax (%s%%):", inv.TaxRate.String())),
			grandLabel,
		),
		col.New(4).Add(
			value(render.FormatMoney(inv.Subtotal)),
			value(render.FormatMoney(inv.TaxAmount)),
			grandValue,
		),
	)
}

func freeTextRows(title, body string) []core.Row {
	if body == "" {
		return nil
	}
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(strings.ToUpper(title), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAccent, Top: 2,
			}),
		)),
	}
	for _, l := range splitLines(body) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Color: colorGray}),
		)))
	}
	return rows
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
