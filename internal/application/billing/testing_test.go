package billing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/repository"
)

// memRepo is an in-memory InvoiceRepository for use case tests.
type memRepo struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
	items    map[string][]entity.LineItem
}

func newMemRepo() *memRepo {
	return &memRepo{
		invoices: make(map[string]*entity.Invoice),
		items:    make(map[string][]entity.LineItem),
	}
}

func (r *memRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *invoice
	cp.Items = nil
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *memRepo) CreateItems(_ context.Context, invoiceID string, items []entity.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[invoiceID] = append([]entity.LineItem(nil), items...)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memRepo) GetByNumber(_ context.Context, number string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invoices {
		if inv.InvoiceNumber == number {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) GetItemsByInvoiceID(_ context.Context, invoiceID string) ([]entity.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.LineItem(nil), r.items[invoiceID]...), nil
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		cp := *inv
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil
	}
	inv.Status = status
	inv.UpdatedAt = updatedAt
	return nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invoices, id)
	delete(r.items, id)
	return nil
}

// memTxRunner runs the callback against the same repo, no real transaction.
type memTxRunner struct {
	repo repository.InvoiceRepository
}

func (t *memTxRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(t.repo)
}
