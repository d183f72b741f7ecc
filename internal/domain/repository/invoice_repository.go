package repository

import (
	"context"
	"time"

	"github.com/billforge/billforge-api/internal/domain/entity"
)

// InvoiceRepository is the persistence port for invoices. Create and
// CreateItems are separate so a transaction runner can bind them to the
// same tx; GetByID / GetByNumber return (nil, nil) when nothing matches.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateItems(ctx context.Context, invoiceID string, items []entity.LineItem) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]entity.LineItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
