package billing

import (
	"context"
	"fmt"

	"github.com/billforge/billforge-api/internal/application/dto"
	"github.com/billforge/billforge-api/internal/domain"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/repository"
)

// DocumentUseCase produces the printable outputs of an invoice: HTML for
// on-screen preview, PDF for download, and PDF-by-email delivery. All
// three paths run the posted or stored data through the same renderer and
// recomputation, so the preview, the downloaded file and the emailed
// attachment always agree.
type DocumentUseCase struct {
	repo      repository.InvoiceRepository
	renderer  DocumentRenderer
	generator InvoicePDFGenerator
	mailer    MailSender
}

// NewDocumentUseCase builds the use case.
func NewDocumentUseCase(
	repo repository.InvoiceRepository,
	renderer DocumentRenderer,
	generator InvoicePDFGenerator,
	mailer MailSender,
) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, renderer: renderer, generator: generator, mailer: mailer}
}

// Preview renders posted (possibly unsaved) invoice data to HTML. Nothing
// is validated or persisted: a half-filled form still previews, with
// missing fields rendered empty and totals derived from whatever items
// parse.
func (uc *DocumentUseCase) Preview(in dto.InvoicePayload) (string, error) {
	return uc.renderer.Render(buildInvoice(in))
}

// RenderStored renders a stored invoice (by ID or number) to HTML.
func (uc *DocumentUseCase) RenderStored(ctx context.Context, key string) (string, error) {
	inv, err := loadInvoice(ctx, uc.repo, key)
	if err != nil {
		return "", err
	}
	return uc.renderer.Render(inv)
}

// GeneratePDF converts posted invoice data to a PDF document.
//
// Returns (pdfBytes, filename, nil) on success; the filename follows the
// form's convention, invoice-<number>.pdf.
func (uc *DocumentUseCase) GeneratePDF(ctx context.Context, in dto.InvoicePayload) ([]byte, string, error) {
	return uc.generate(ctx, buildInvoice(in))
}

// DownloadStoredPDF converts a stored invoice (by ID or number) to PDF.
func (uc *DocumentUseCase) DownloadStoredPDF(ctx context.Context, key string) ([]byte, string, error) {
	inv, err := loadInvoice(ctx, uc.repo, key)
	if err != nil {
		return nil, "", err
	}
	return uc.generate(ctx, inv)
}

// SendInvoiceEmail generates the PDF for the posted invoice data and
// emails it to the invoice's client address.
func (uc *DocumentUseCase) SendInvoiceEmail(ctx context.Context, in dto.InvoicePayload) error {
	if in.ClientEmail == "" {
		return domain.ErrInvalidInput
	}
	inv := buildInvoice(in)
	pdf, filename, err := uc.generate(ctx, inv)
	if err != nil {
		return err
	}
	if err := uc.mailer.SendInvoice(ctx, inv, pdf, filename); err != nil {
		return fmt.Errorf("send invoice email: %w", err)
	}
	return nil
}

func (uc *DocumentUseCase) generate(ctx context.Context, inv *entity.Invoice) ([]byte, string, error) {
	pdf, err := uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("generate invoice pdf: %w", err)
	}
	return pdf, fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber), nil
}
