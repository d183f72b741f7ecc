package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billforge/billforge-api/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	InvoiceUC  *billing.InvoiceUseCase
	DocumentUC *billing.DocumentUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	documentHandler := NewDocumentHandler(deps.DocumentUC)

	// Payload-based document routes must register before /:id so Fiber
	// does not capture "preview" as an id.
	invoices.Post("/preview", documentHandler.Preview)
	invoices.Post("/generate-pdf", documentHandler.GeneratePDF)
	invoices.Post("/send-email", documentHandler.SendEmail)

	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", invoiceHandler.Delete)

	invoices.Get("/:id/document", documentHandler.Document)
	invoices.Get("/:id/pdf", documentHandler.DownloadPDF)
}
