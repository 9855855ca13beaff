package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-api/internal/ports"
)

// InvoiceHandler handles HTTP requests for invoice lifecycle operations.
// Gating is the router's concern: by the time a gated request reaches this
// handler, the credential has already been validated.
type InvoiceHandler struct {
	svc ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler with the given service port.
func NewInvoiceHandler(svc ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// List handles GET /invoices. The response is a bare JSON array in
// store-defined order.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInvoiceListResponse(invoices))
}

// Create handles POST /invoices. Creation is deliberately ungated.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	inv := decodeInvoice(w, r)
	if inv == nil {
		return
	}

	created, err := h.svc.Create(r.Context(), inv)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToInvoiceResponse(created))
}

// Update handles PUT /invoices/{id}: a full replacement of the invoice's
// mutable fields.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	inv := decodeInvoice(w, r)
	if inv == nil {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, inv)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInvoiceResponse(updated))
}

// Delete handles DELETE /invoices/{id}. Always responds 204 when the store
// call succeeds, whether or not the id existed.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
