package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/application/dto"
	"github.com/billforge/billforge-api/internal/domain"
	domainbilling "github.com/billforge/billforge-api/internal/domain/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/repository"
)

const defaultPaymentTermsDays = 30

// InvoiceUseCase covers the invoice record lifecycle: create, list, get,
// status updates and deletion. Derived totals are always re-computed here
// from the posted items and tax rate; whatever subtotal/taxAmount/total
// the client sent is discarded.
type InvoiceUseCase struct {
	txRunner TxRunner
	repo     repository.InvoiceRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(txRunner TxRunner, repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, repo: repo}
}

// Create validates, recomputes totals and persists a new invoice (header
// and items in one transaction).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoicePayload) (*dto.InvoiceResponse, error) {
	if in.InvoiceNumber == "" || in.ClientName == "" || in.ClientEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != "" && !entity.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByNumber(ctx, in.InvoiceNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	inv := buildInvoice(in)
	now := time.Now()
	inv.ID = uuid.New().String()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	err := uc.txRunner.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		if err := repo.Create(ctx, inv); err != nil {
			return err
		}
		return repo.CreateItems(ctx, inv.ID, inv.Items)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(inv), nil
}

// List returns stored invoice headers, newest first. Items are not loaded
// for list views.
func (uc *InvoiceUseCase) List(ctx context.Context, limit, offset int) ([]*dto.InvoiceResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toResponse(inv))
	}
	return out, nil
}

// Get returns one invoice with its items. The key is an invoice ID, or an
// invoice number when it is not a UUID (the form's lookup searches by
// number).
func (uc *InvoiceUseCase) Get(ctx context.Context, key string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return toResponse(inv), nil
}

// UpdateStatus sets the invoice status. Transitions are externally
// driven; only membership in the known statuses is checked.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, key, status string) (*dto.InvoiceResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.load(ctx, key)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.repo.UpdateStatus(ctx, inv.ID, status, now); err != nil {
		return nil, err
	}
	inv.Status = status
	inv.UpdatedAt = now
	return toResponse(inv), nil
}

// Delete removes an invoice and its items.
func (uc *InvoiceUseCase) Delete(ctx context.Context, key string) error {
	inv, err := uc.load(ctx, key)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, inv.ID)
}

func (uc *InvoiceUseCase) load(ctx context.Context, key string) (*entity.Invoice, error) {
	return loadInvoice(ctx, uc.repo, key)
}

// loadInvoice resolves key (ID or number) to a full invoice with items.
func loadInvoice(ctx context.Context, repo repository.InvoiceRepository, key string) (*entity.Invoice, error) {
	var inv *entity.Invoice
	var err error
	if _, uuidErr := uuid.Parse(key); uuidErr == nil {
		inv, err = repo.GetByID(ctx, key)
	} else {
		inv, err = repo.GetByNumber(ctx, key)
	}
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := repo.GetItemsByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

// buildInvoice maps the posted payload to a domain invoice: date parsing,
// lifecycle defaults (issue date today, due date +terms days) and the
// single atomic recomputation of the derived totals.
func buildInvoice(in dto.InvoicePayload) *entity.Invoice {
	terms := int(in.PaymentTerms.IntPart())
	if terms <= 0 {
		terms = defaultPaymentTermsDays
	}
	issueDate := parseDate(in.IssueDate)
	if issueDate.IsZero() {
		issueDate = truncateToDay(time.Now())
	}
	dueDate := parseDate(in.DueDate)
	if dueDate.IsZero() {
		dueDate = issueDate.AddDate(0, 0, terms)
	}
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}

	items := make([]entity.LineItem, 0, len(in.Items))
	for i, it := range in.Items {
		items = append(items, entity.LineItem{
			Position:    i,
			Description: it.Description,
			Quantity:    it.Quantity.Decimal,
			Rate:        it.Rate.Decimal,
		})
	}

	inv := &entity.Invoice{
		InvoiceNumber: in.InvoiceNumber,
		ClientName:    in.ClientName,
		ClientEmail:   in.ClientEmail,
		ClientCompany: in.ClientCompany,
		ClientAddress: in.ClientAddress,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		PaymentTerms:  terms,
		Status:        status,
		Items:         items,
		Notes:         in.Notes,
		Terms:         in.Terms,
		TaxRate:       in.TaxRate.Decimal,
	}
	domainbilling.Apply(inv)
	return inv
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return truncateToDay(t)
	}
	return time.Time{}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      domainbilling.LineAmount(it),
		})
	}
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientCompany: inv.ClientCompany,
		ClientAddress: inv.ClientAddress,
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		DueDate:       inv.DueDate.Format("2006-01-02"),
		PaymentTerms:  inv.PaymentTerms,
		Status:        inv.Status,
		Items:         items,
		Notes:         inv.Notes,
		Terms:         inv.Terms,
		TaxRate:       inv.TaxRate,
		Subtotal:      inv.Subtotal,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
	}
	if !inv.CreatedAt.IsZero() {
		resp.CreatedAt = inv.CreatedAt.Format(time.RFC3339)
	}
	if !inv.UpdatedAt.IsZero() {
		resp.UpdatedAt = inv.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
