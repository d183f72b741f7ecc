package billing

import (
	"context"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/repository"
)

// TxRunner executes fn inside one database transaction; the repository it
// passes in is bound to that transaction. Invoice header and line items
// are inserted through it so a failed item insert rolls back the header.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(repo repository.InvoiceRepository) error) error
}

// DocumentRenderer turns an invoice into self-contained printable HTML.
// Implementations must be pure: same invoice in, byte-identical markup
// out, used unchanged for on-screen preview and for PDF conversion.
type DocumentRenderer interface {
	Render(invoice *entity.Invoice) (string, error)
}

// InvoicePDFGenerator converts an invoice to PDF bytes.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}

// MailSender delivers an invoice PDF to the invoice's client by email.
type MailSender interface {
	SendInvoice(ctx context.Context, invoice *entity.Invoice, pdf []byte, filename string) error
}
