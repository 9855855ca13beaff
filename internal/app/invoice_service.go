// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and storage through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
	"github.com/jsamuelsen11/invoice-api/internal/ports"
)

// Compile-time check that InvoiceService implements ports.InvoiceService.
var _ ports.InvoiceService = (*InvoiceService)(nil)

// InvoiceService implements ports.InvoiceService by delegating persistence to
// the InvoiceRepository port. It owns the operation contracts: what is
// validated before a write, which failures reach the caller, and the lenient
// delete semantics. It contains no storage logic.
type InvoiceService struct {
	repo   ports.InvoiceRepository
	logger *slog.Logger
}

// NewInvoiceService creates an InvoiceService backed by the given repository.
// A nil logger is replaced with a no-op logger.
func NewInvoiceService(repo ports.InvoiceRepository, logger *slog.Logger) *InvoiceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InvoiceService{
		repo:   repo,
		logger: logger,
	}
}

// List returns all persisted invoices in store-defined order.
func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list invoices",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return invoices, nil
}

// Create validates and persists a new invoice. The store assigns the ID.
func (s *InvoiceService) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	s.logger.InfoContext(ctx, "creating invoice", slog.String("title", inv.Title))

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, inv)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create invoice",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// Update replaces all mutable fields of an existing invoice. The replacement
// is validated with the same rules as creation; identity is preserved.
func (s *InvoiceService) Update(ctx context.Context, id string, inv *domain.Invoice) (*domain.Invoice, error) {
	s.logger.InfoContext(ctx, "updating invoice", slog.String("id", id))

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Replace(ctx, id, inv)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update invoice",
			slog.String("operation", "Update"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete removes an invoice. Deleting an id that does not exist succeeds:
// the repository treats it as a no-op and so does this service.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting invoice", slog.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete invoice",
			slog.String("operation", "Delete"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
