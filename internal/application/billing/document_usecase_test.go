package billing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billforge/billforge-api/internal/application/dto"
	"github.com/billforge/billforge-api/internal/domain"
	"github.com/billforge/billforge-api/internal/domain/entity"
)

// stubRenderer records the invoice it was handed.
type stubRenderer struct {
	last *entity.Invoice
}

func (r *stubRenderer) Render(inv *entity.Invoice) (string, error) {
	r.last = inv
	return "<html>" + inv.InvoiceNumber + "</html>", nil
}

type stubPDFGenerator struct {
	last *entity.Invoice
}

func (g *stubPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	g.last = inv
	return []byte("%PDF-stub"), nil
}

type stubMailer struct {
	to       string
	filename string
	pdf      []byte
}

func (m *stubMailer) SendInvoice(_ context.Context, inv *entity.Invoice, pdf []byte, filename string) error {
	m.to = inv.ClientEmail
	m.filename = filename
	m.pdf = pdf
	return nil
}

func newDocumentUC() (*DocumentUseCase, *memRepo, *stubRenderer, *stubPDFGenerator, *stubMailer) {
	repo := newMemRepo()
	renderer := &stubRenderer{}
	generator := &stubPDFGenerator{}
	mailer := &stubMailer{}
	return NewDocumentUseCase(repo, renderer, generator, mailer), repo, renderer, generator, mailer
}

func TestPreview_RecomputesTotalsFromItems(t *testing.T) {
	uc, _, renderer, _, _ := newDocumentUC()

	in := validPayload()
	in.Subtotal = flex("999999") // ignored
	html, err := uc.Preview(in)
	require.NoError(t, err)
	assert.True(t, strings.Contains(html, "INV-0001"))

	require.NotNil(t, renderer.last)
	assert.Equal(t, "1000", renderer.last.Subtotal.String())
	assert.Equal(t, "100", renderer.last.TaxAmount.String())
	assert.Equal(t, "1100", renderer.last.Total.String())
}

func TestPreview_EmptyPayloadStillRenders(t *testing.T) {
	uc, _, renderer, _, _ := newDocumentUC()

	html, err := uc.Preview(dto.InvoicePayload{})
	require.NoError(t, err)
	assert.NotEmpty(t, html)
	assert.True(t, renderer.last.Total.IsZero())
}

func TestRenderStored_NotFound(t *testing.T) {
	uc, _, _, _, _ := newDocumentUC()

	_, err := uc.RenderStored(context.Background(), "INV-NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGeneratePDF_FilenameFollowsNumber(t *testing.T) {
	uc, _, _, _, _ := newDocumentUC()

	pdf, filename, err := uc.GeneratePDF(context.Background(), validPayload())
	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-0001.pdf", filename)
	assert.NotEmpty(t, pdf)
}

func TestSendInvoiceEmail(t *testing.T) {
	uc, _, _, _, mailer := newDocumentUC()

	require.NoError(t, uc.SendInvoiceEmail(context.Background(), validPayload()))
	assert.Equal(t, "priya@example.com", mailer.to)
	assert.Equal(t, "invoice-INV-0001.pdf", mailer.filename)
	assert.Equal(t, []byte("%PDF-stub"), mailer.pdf)
}

func TestSendInvoiceEmail_RequiresClientEmail(t *testing.T) {
	uc, _, _, _, _ := newDocumentUC()

	in := validPayload()
	in.ClientEmail = ""
	assert.ErrorIs(t, uc.SendInvoiceEmail(context.Background(), in), domain.ErrInvalidInput)
}
