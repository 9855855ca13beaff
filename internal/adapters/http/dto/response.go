// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
//
// Field names follow the service's established wire format (camelCase, bare
// array for list responses), which predates this implementation and is kept
// for client compatibility.
package dto

import (
	"time"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
)

const dateOnly = "2006-01-02"

// InvoiceResponse represents a single invoice in HTTP responses.
// Description is null when absent; it is the only optional field.
type InvoiceResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain Invoice entity to an HTTP response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:        inv.ID,
		Title:     inv.Title,
		Amount:    inv.Amount,
		DueDate:   formatDueDate(inv.DueDate),
		CreatedAt: inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt: inv.UpdatedAt.Format(time.RFC3339),
	}

	if inv.Description != "" {
		desc := inv.Description
		resp.Description = &desc
	}

	return resp
}

// ToInvoiceListResponse converts a slice of domain Invoice entities to a bare
// JSON array of invoice DTOs. Never nil, so an empty store serializes as [].
func ToInvoiceListResponse(invoices []domain.Invoice) []InvoiceResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		items[i] = ToInvoiceResponse(&invoices[i])
	}
	return items
}

// APIKeyResponse represents a freshly issued credential.
type APIKeyResponse struct {
	APIKey string `json:"apiKey"`
}

// formatDueDate echoes a date-only due date back in date-only form so that
// date-only submissions round-trip verbatim. Anything with a time component
// is formatted as RFC 3339.
func formatDueDate(t time.Time) string {
	u := t.UTC()
	if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0 {
		return u.Format(dateOnly)
	}
	return u.Format(time.RFC3339)
}
