package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-api/internal/ports"
)

// KeyHandler handles HTTP requests for credential issuance.
type KeyHandler struct {
	svc ports.KeyService
}

// NewKeyHandler creates a new KeyHandler with the given service port.
func NewKeyHandler(svc ports.KeyService) *KeyHandler {
	return &KeyHandler{svc: svc}
}

// Generate handles POST /generate-api-key. The key value is returned to the
// caller exactly once; it is never readable again through the API.
func (h *KeyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateKeyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	key, err := h.svc.Issue(r.Context(), req.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.APIKeyResponse{APIKey: key})
}
