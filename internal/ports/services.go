package ports

import (
	"context"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
)

// InvoiceService defines the service port for invoice lifecycle operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type InvoiceService interface {
	// List returns all persisted invoices in store-defined order.
	// No ordering guarantee is made; each call re-reads the store.
	List(ctx context.Context) ([]domain.Invoice, error)

	// Create validates and persists a new invoice, returning the created
	// entity with its store-assigned ID and timestamps.
	// Returns domain.ErrValidation if the invoice fails validation.
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)

	// Update replaces all mutable fields of the invoice identified by id
	// and returns the post-update entity. Identity is preserved.
	// Returns domain.ErrNotFound if the invoice does not exist.
	// Returns domain.ErrValidation if the replacement fields fail validation.
	Update(ctx context.Context, id string, inv *domain.Invoice) (*domain.Invoice, error)

	// Delete removes the invoice identified by id. Deleting a nonexistent
	// id is a successful no-op: the contract is deliberately lenient.
	Delete(ctx context.Context, id string) error
}

// KeyService defines the service port for the credential store and validator.
// Implemented by the application layer; called by handlers and the gate
// middleware.
type KeyService interface {
	// Issue generates a fresh globally-unique key, associates it with
	// userID, persists it, and returns the key value. No reuse or expiry
	// semantics; one credential per call.
	Issue(ctx context.Context, userID string) (string, error)

	// Validate checks a presented key against the credential store.
	// It is a pure gate with no side effects: returns nil on an exact
	// match, domain.ErrMissingAPIKey when key is empty, and
	// domain.ErrInvalidAPIKey when no credential matches.
	Validate(ctx context.Context, key string) error

	// Seed stores a pre-configured key for the given principal, replacing
	// any previous credential with the same key value. Used at startup to
	// express the single-tenant static-secret configuration through the
	// same validator as issued keys.
	Seed(ctx context.Context, key, userID string) error
}
