// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The gate middleware is
// applied only to the invoice operations that require a valid API key:
// listing, updating, and deleting. Key issuance and invoice creation are
// deliberately open.
func NewRouter(
	invoiceHandler *handlers.InvoiceHandler,
	keyHandler *handlers.KeyHandler,
	healthHandler *handlers.HealthHandler,
	gate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Credential issuance.
	r.Post("/generate-api-key", keyHandler.Generate)

	// Ungated invoice creation.
	r.Post("/invoices", invoiceHandler.Create)

	// Gated invoice operations.
	r.Group(func(r chi.Router) {
		r.Use(gate)
		r.Get("/invoices", invoiceHandler.List)
		r.Put("/invoices/{id}", invoiceHandler.Update)
		r.Delete("/invoices/{id}", invoiceHandler.Delete)
	})

	return r
}
