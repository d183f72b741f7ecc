package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/billforge/billforge-api/internal/application/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
)

var _ billing.InvoicePDFGenerator = (*ChromePDFGenerator)(nil)

// A4 in inches, the unit Page.printToPDF expects.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

// ChromePDFGenerator converts invoices to PDF through headless Chromium.
// It feeds the document renderer's markup to Page.printToPDF, so the PDF
// is pixel-for-pixel the same document the browser preview shows.
type ChromePDFGenerator struct {
	renderer billing.DocumentRenderer
	timeout  time.Duration
}

// NewChromePDFGenerator builds the generator around the shared renderer.
func NewChromePDFGenerator(renderer billing.DocumentRenderer) *ChromePDFGenerator {
	return &ChromePDFGenerator{renderer: renderer, timeout: 30 * time.Second}
}

// GenerateInvoicePDF renders the invoice to HTML and prints it to an A4
// PDF with backgrounds enabled. A browser instance is launched per call;
// invoice volume here never justifies keeping one warm.
func (g *ChromePDFGenerator) GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice) ([]byte, error) {
	html, err := g.renderer.Render(inv)
	if err != nil {
		return nil, fmt.Errorf("render invoice document: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, g.timeout)
	defer cancelRun()

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print invoice to pdf: %w", err)
	}
	return pdf, nil
}
