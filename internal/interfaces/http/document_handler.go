package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/billforge/billforge-api/internal/application/billing"
	"github.com/billforge/billforge-api/internal/application/dto"
)

// DocumentHandler handles the render, PDF and email endpoints.
type DocumentHandler struct {
	uc *billing.DocumentUseCase
}

// NewDocumentHandler builds the handler.
func NewDocumentHandler(uc *billing.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Preview renders the invoice document from the posted payload without
// persisting anything. The body does not need to pass validation.
// POST /api/invoices/preview
func (h *DocumentHandler) Preview(c *fiber.Ctx) error {
	var in dto.InvoicePayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	html, err := h.uc.Preview(in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Document renders the stored invoice as HTML.
// GET /api/invoices/:id/document
func (h *DocumentHandler) Document(c *fiber.Ctx) error {
	html, err := h.uc.RenderStored(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// GeneratePDF builds a PDF from the posted payload without persisting.
// POST /api/invoices/generate-pdf
func (h *DocumentHandler) GeneratePDF(c *fiber.Ctx) error {
	var in dto.InvoicePayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	pdf, filename, err := h.uc.GeneratePDF(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// DownloadPDF builds a PDF for a stored invoice.
// GET /api/invoices/:id/pdf
func (h *DocumentHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DownloadStoredPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// SendEmail generates the PDF and mails it to the client address in the payload.
// POST /api/invoices/send-email
func (h *DocumentHandler) SendEmail(c *fiber.Ctx) error {
	var in dto.InvoicePayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.uc.SendInvoiceEmail(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "invoice sent"})
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
