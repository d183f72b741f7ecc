package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/billforge/billforge-api/internal/domain"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `
	id, invoice_number, client_name, client_email,
	COALESCE(client_company, ''), COALESCE(client_address, ''),
	issue_date, due_date, payment_terms_days, status,
	COALESCE(notes, ''), COALESCE(terms, ''),
	tax_rate, subtotal, tax_amount, total, created_at, updated_at`

// InvoiceRepo implements InvoiceRepository on PostgreSQL (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header. The invoice_number unique
// constraint maps to domain.ErrDuplicate.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (
			id, invoice_number, client_name, client_email, client_company, client_address,
			issue_date, due_date, payment_terms_days, status, notes, terms,
			tax_rate, subtotal, tax_amount, total, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.ClientName, inv.ClientEmail,
		nullIfEmpty(inv.ClientCompany), nullIfEmpty(inv.ClientAddress),
		inv.IssueDate, inv.DueDate, inv.PaymentTerms, inv.Status,
		nullIfEmpty(inv.Notes), nullIfEmpty(inv.Terms),
		inv.TaxRate, inv.Subtotal, inv.TaxAmount, inv.Total,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItems persists the line items preserving their entry order.
func (r *InvoiceRepo) CreateItems(ctx context.Context, invoiceID string, items []entity.LineItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, position, description, quantity, rate)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range items {
		item := &items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.InvoiceID = invoiceID
		item.Position = i
		_, err := r.q.Exec(ctx, query,
			item.ID, invoiceID, item.Position, item.Description, item.Quantity, item.Rate,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item %d: %w", i, err)
		}
	}
	return nil
}

// GetByID returns one invoice header, or (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByNumber returns one invoice header by its unique number.
func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, number)
}

func (r *InvoiceRepo) getOne(ctx context.Context, query string, arg any) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.ClientName, &inv.ClientEmail,
		&inv.ClientCompany, &inv.ClientAddress,
		&inv.IssueDate, &inv.DueDate, &inv.PaymentTerms, &inv.Status,
		&inv.Notes, &inv.Terms,
		&inv.TaxRate, &inv.Subtotal, &inv.TaxAmount, &inv.Total,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetItemsByInvoiceID returns all line items of an invoice in entry order.
func (r *InvoiceRepo) GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]entity.LineItem, error) {
	query := `
		SELECT id, invoice_id, position, description, quantity, rate
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []entity.LineItem
	for rows.Next() {
		var item entity.LineItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Position, &item.Description, &item.Quantity, &item.Rate); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// List returns invoice headers, newest first, with pagination.
func (r *InvoiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.ClientName, &inv.ClientEmail,
			&inv.ClientCompany, &inv.ClientAddress,
			&inv.IssueDate, &inv.DueDate, &inv.PaymentTerms, &inv.Status,
			&inv.Notes, &inv.Terms,
			&inv.TaxRate, &inv.Subtotal, &inv.TaxAmount, &inv.Total,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// UpdateStatus sets the status column only; derived totals are immutable
// once stored.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE invoices SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the invoice; items go with it (ON DELETE CASCADE).
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
