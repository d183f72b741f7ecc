// Package mail delivers invoice PDFs over SMTP.
package mail

import (
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/billforge/billforge-api/internal/application/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/pkg/config"
)

var _ billing.MailSender = (*GomailSender)(nil)

// GomailSender sends invoice emails with the PDF attached. One SMTP dial
// per message; there is no queue or retry, failures surface to the caller.
type GomailSender struct {
	cfg         config.SMTPConfig
	companyName string
}

// NewGomailSender builds the sender.
func NewGomailSender(cfg config.SMTPConfig, companyName string) *GomailSender {
	return &GomailSender{cfg: cfg, companyName: companyName}
}

// SendInvoice emails the PDF to the invoice's client address.
func (s *GomailSender) SendInvoice(_ context.Context, inv *entity.Invoice, pdf []byte, filename string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, s.companyName)
	m.SetHeader("To", inv.ClientEmail)
	m.SetHeader("Subject", fmt.Sprintf("Invoice #%s from %s", inv.InvoiceNumber, s.companyName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nPlease find your invoice attached.\n\nThank you!", inv.ClientName,
	))
	m.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
