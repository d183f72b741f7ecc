package dto

import "github.com/shopspring/decimal"

// LineItemPayload one billable row as posted by the form. Quantity and
// Rate are FlexNumber: the form allows transient invalid states while
// typing, so non-numeric values decode as zero.
type LineItemPayload struct {
	Description string     `json:"description"`
	Quantity    FlexNumber `json:"quantity"`
	Rate        FlexNumber `json:"rate"`
}

// InvoicePayload body for POST /api/invoices and the document endpoints
// (preview, generate-pdf, send-email). Field names match the browser
// form. Subtotal, TaxAmount and Total are accepted for compatibility with
// the form payload but ignored: the server re-derives all three from
// Items and TaxRate.
type InvoicePayload struct {
	InvoiceNumber string            `json:"invoiceNumber"`
	ClientName    string            `json:"clientName"`
	ClientEmail   string            `json:"clientEmail"`
	ClientCompany string            `json:"clientCompany,omitempty"`
	ClientAddress string            `json:"clientAddress,omitempty"`
	IssueDate     string            `json:"issueDate,omitempty"` // YYYY-MM-DD
	DueDate       string            `json:"dueDate,omitempty"`   // YYYY-MM-DD
	PaymentTerms  FlexNumber        `json:"paymentTerms,omitempty"`
	Status        string            `json:"status,omitempty"`
	Items         []LineItemPayload `json:"items"`
	Notes         string            `json:"notes,omitempty"`
	Terms         string            `json:"terms,omitempty"`
	TaxRate       FlexNumber        `json:"taxRate"`
	Subtotal      FlexNumber        `json:"subtotal,omitempty"`
	TaxAmount     FlexNumber        `json:"taxAmount,omitempty"`
	Total         FlexNumber        `json:"total,omitempty"`
}

// LineItemResponse line item in responses.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse stored invoice in responses. Totals are the values the
// server derived, not the ones the client posted.
type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoiceNumber"`
	ClientName    string             `json:"clientName"`
	ClientEmail   string             `json:"clientEmail"`
	ClientCompany string             `json:"clientCompany,omitempty"`
	ClientAddress string             `json:"clientAddress,omitempty"`
	IssueDate     string             `json:"issueDate"`
	DueDate       string             `json:"dueDate"`
	PaymentTerms  int                `json:"paymentTerms"`
	Status        string             `json:"status"`
	Items         []LineItemResponse `json:"items"`
	Notes         string             `json:"notes,omitempty"`
	Terms         string             `json:"terms,omitempty"`
	TaxRate       decimal.Decimal    `json:"taxRate"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxAmount     decimal.Decimal    `json:"taxAmount"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     string             `json:"createdAt,omitempty"`
	UpdatedAt     string             `json:"updatedAt,omitempty"`
}

// UpdateStatusRequest body for PATCH /api/invoices/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
