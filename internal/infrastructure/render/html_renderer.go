// Package render produces the printable HTML representation of an
// invoice. The same markup backs the on-screen preview and the PDF
// export, which keeps the two visually identical.
package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/billforge/billforge-api/internal/application/billing"
	domainbilling "github.com/billforge/billforge-api/internal/domain/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
)

var _ billing.DocumentRenderer = (*HTMLRenderer)(nil)

// inr formats amounts with Indian digit grouping (1,00,000.00).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// Issuer is the identity block shown at the top of every document.
type Issuer struct {
	Name    string
	Address string
	Email   string
}

// HTMLRenderer renders invoices with a single html/template. Rendering is
// pure: no I/O, and identical input yields byte-identical markup.
type HTMLRenderer struct {
	issuer Issuer
	tpl    *template.Template
}

// NewHTMLRenderer parses the document template once and fixes the issuer
// identity for all documents.
func NewHTMLRenderer(issuer Issuer) *HTMLRenderer {
	if issuer.Name == "" {
		issuer.Name = "Invoice"
	}
	funcs := template.FuncMap{
		"nl2br": nl2br,
	}
	return &HTMLRenderer{
		issuer: issuer,
		tpl:    template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceDocumentTemplate)),
	}
}

// itemView is one pre-formatted table row.
type itemView struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

type documentView struct {
	Issuer        Issuer
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	ClientName    string
	ClientCompany string
	ClientAddress string
	Items         []itemView
	Notes         string
	Terms         string
	TaxRate       string
	Subtotal      string
	TaxAmount     string
	Total         string
}

// Render produces the full printable document for inv. Missing optional
// fields render as empty regions and an invoice without items renders an
// empty table with zero totals; rendering never fails on data shape.
func (r *HTMLRenderer) Render(inv *entity.Invoice) (string, error) {
	items := make([]itemView, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, itemView{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			Rate:        FormatMoney(it.Rate),
			Amount:      FormatMoney(domainbilling.LineAmount(it)),
		})
	}
	view := documentView{
		Issuer:        r.issuer,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format("02/01/2006"),
		DueDate:       inv.DueDate.Format("02/01/2006"),
		ClientName:    inv.ClientName,
		ClientCompany: inv.ClientCompany,
		ClientAddress: inv.ClientAddress,
		Items:         items,
		Notes:         inv.Notes,
		Terms:         inv.Terms,
		TaxRate:       inv.TaxRate.String(),
		Subtotal:      FormatMoney(inv.Subtotal),
		TaxAmount:     FormatMoney(inv.TaxAmount),
		Total:         FormatMoney(inv.Total),
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatMoney renders an amount as rupees with two decimals and en-IN
// digit grouping. Stored values stay unrounded; this is display only.
func FormatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return inr.Sprintf("₹%.2f", f)
}

// nl2br preserves author-entered line breaks in free-text fields. The
// text is escaped first, so the only markup in the result is the <br>.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
