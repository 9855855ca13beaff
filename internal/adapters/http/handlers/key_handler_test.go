package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/invoice-api/mocks"
)

func newKeyHandler(t *testing.T) (*handlers.KeyHandler, *mocks.MockKeyService) {
	t.Helper()
	svc := mocks.NewMockKeyService(t)
	return handlers.NewKeyHandler(svc), svc
}

func TestGenerateKey_Success(t *testing.T) {
	t.Parallel()
	h, svc := newKeyHandler(t)

	svc.EXPECT().Issue(mock.Anything, "user-1").
		Return("b1e7c3a0-9f2d-4c1e-8a6b-0d5f4e3c2b1a", nil)

	body := jsonBody(t, dto.GenerateKeyRequest{UserID: "user-1"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-api-key", body)
	req.Header.Set("Content-Type", "application/json")
	h.Generate(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.APIKeyResponse](t, rec)
	if resp.APIKey != "b1e7c3a0-9f2d-4c1e-8a6b-0d5f4e3c2b1a" {
		t.Errorf("APIKey = %q, want the issued key", resp.APIKey)
	}
}

func TestGenerateKey_MissingUserID(t *testing.T) {
	t.Parallel()
	h, _ := newKeyHandler(t)

	body := jsonBody(t, dto.GenerateKeyRequest{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-api-key", body)
	req.Header.Set("Content-Type", "application/json")
	h.Generate(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGenerateKey_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newKeyHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-api-key", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.Generate(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGenerateKey_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newKeyHandler(t)

	svc.EXPECT().Issue(mock.Anything, "user-1").Return("", errSentinel())

	body := jsonBody(t, dto.GenerateKeyRequest{UserID: "user-1"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-api-key", body)
	req.Header.Set("Content-Type", "application/json")
	h.Generate(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}
