package ports

import (
	"context"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
)

// InvoiceRepository defines the repository port for invoice persistence.
// Implemented by storage adapters; called by the application layer.
// The store assigns invoice identity on insert.
type InvoiceRepository interface {
	// Insert persists a new invoice and returns it with the store-assigned
	// ID and timestamps populated.
	Insert(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)

	// List returns all persisted invoices in store-defined order.
	List(ctx context.Context) ([]domain.Invoice, error)

	// Replace overwrites the mutable fields of the invoice identified by id
	// and returns the stored result.
	// Returns domain.ErrNotFound if no invoice with id exists.
	Replace(ctx context.Context, id string, inv *domain.Invoice) (*domain.Invoice, error)

	// Delete removes the invoice identified by id. Removing an id that does
	// not exist is not an error.
	Delete(ctx context.Context, id string) error
}

// KeyRepository defines the repository port for credential persistence.
// Credentials are append-only from the service's perspective: issued keys
// are never mutated or deleted.
type KeyRepository interface {
	// Insert persists a new credential.
	// Returns domain.ErrConflict if the key value already exists.
	Insert(ctx context.Context, key *domain.APIKey) error

	// FindByKey looks up a credential by exact key value.
	// Returns domain.ErrNotFound if no credential matches.
	FindByKey(ctx context.Context, key string) (*domain.APIKey, error)

	// Upsert stores a credential, replacing the principal of an existing
	// credential with the same key value. Used for startup seeding.
	Upsert(ctx context.Context, key *domain.APIKey) error
}
