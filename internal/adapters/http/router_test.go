package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/invoice-api/internal/adapters/http"
	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/invoice-api/internal/adapters/sqlite"
	"github.com/jsamuelsen11/invoice-api/internal/app"
	"github.com/jsamuelsen11/invoice-api/internal/domain"
	"github.com/jsamuelsen11/invoice-api/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockInvoiceService, *mocks.MockKeyService) {
	t.Helper()
	invoices := mocks.NewMockInvoiceService(t)
	keys := mocks.NewMockKeyService(t)
	registry := mocks.NewMockHealthRegistry(t)

	ih := handlers.NewInvoiceHandler(invoices)
	kh := handlers.NewKeyHandler(keys)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(ih, kh, hh, middleware.RequireAPIKey(keys))
	return router, invoices, keys
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/generate-api-key"},
		{http.MethodPost, "/invoices"},
		{http.MethodGet, "/invoices"},
		{http.MethodPut, "/invoices/{id}"},
		{http.MethodDelete, "/invoices/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_CreateIsUngated(t *testing.T) {
	t.Parallel()

	router, invoices, _ := newTestRouter(t)

	created := domain.Invoice{ID: "inv-1", Title: "Rent", Amount: 1200}
	invoices.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Invoice")).
		Return(&created, nil)

	body, _ := json.Marshal(dto.InvoiceRequest{
		Title:   "Rent",
		Amount:  new(float64),
		DueDate: "2024-05-01",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201 without any key", rec.Code)
	}
}

func TestRouter_ListIsGated(t *testing.T) {
	t.Parallel()

	router, _, keys := newTestRouter(t)

	keys.EXPECT().Validate(mock.Anything, "").Return(domain.ErrMissingAPIKey)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without a key", rec.Code)
	}
}

func TestRouter_MutationsAreGated(t *testing.T) {
	t.Parallel()

	router, _, keys := newTestRouter(t)

	keys.EXPECT().Validate(mock.Anything, "bad").Return(domain.ErrInvalidAPIKey).Twice()

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/invoices/inv-1?apiKey=bad", nil)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s status = %d, want 401 with an invalid key", method, rec.Code)
		}
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/invoices", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

// TestRouter_FullLifecycle exercises the whole stack against a real store:
// issue a key, create an invoice without it, then list, update, and delete
// with it.
func TestRouter_FullLifecycle(t *testing.T) {
	t.Parallel()

	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.RunMigrations(db.Writer); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	invoiceSvc := app.NewInvoiceService(sqlite.NewInvoiceRepo(db), nil)
	keySvc := app.NewKeyService(sqlite.NewKeyRepo(db), nil)

	registry := mocks.NewMockHealthRegistry(t)
	router := adapthttp.NewRouter(
		handlers.NewInvoiceHandler(invoiceSvc),
		handlers.NewKeyHandler(keySvc),
		handlers.NewHealthHandler(registry),
		middleware.RequireAPIKey(keySvc),
	)

	do := func(method, target string, body any) *httptest.ResponseRecorder {
		t.Helper()
		var reader *bytes.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			reader = bytes.NewReader(raw)
		} else {
			reader = bytes.NewReader(nil)
		}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		return rec
	}

	// Issue a credential.
	rec := do(http.MethodPost, "/generate-api-key", dto.GenerateKeyRequest{UserID: "user-1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate-api-key status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var keyResp dto.APIKeyResponse
	if err := json.NewDecoder(rec.Body).Decode(&keyResp); err != nil {
		t.Fatalf("decode key response: %v", err)
	}
	apiKey := url.QueryEscape(keyResp.APIKey)

	// Create an invoice (no key needed).
	amount := 1200.0
	rec = do(http.MethodPost, "/invoices", dto.InvoiceRequest{
		Title:   "Rent",
		Amount:  &amount,
		DueDate: "2024-05-01",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created dto.InvoiceResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.DueDate != "2024-05-01" {
		t.Errorf("DueDate = %q, want verbatim round-trip", created.DueDate)
	}

	// List with the key.
	rec = do(http.MethodGet, "/invoices?apiKey="+apiKey, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var listed []dto.InvoiceResponse
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("listed = %+v, want the created invoice", listed)
	}

	// Update with the key.
	newAmount := 1300.0
	rec = do(http.MethodPut, fmt.Sprintf("/invoices/%s?apiKey=%s", created.ID, apiKey), dto.InvoiceRequest{
		Title:   "Rent",
		Amount:  &newAmount,
		DueDate: "2024-05-01",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var updated dto.InvoiceResponse
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated.Amount != 1300 {
		t.Errorf("Amount = %v, want 1300", updated.Amount)
	}

	// Delete with the key, twice: the second is a no-op.
	rec = do(http.MethodDelete, fmt.Sprintf("/invoices/%s?apiKey=%s", created.ID, apiKey), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, body = %s", rec.Code, rec.Body.String())
	}
	rec = do(http.MethodDelete, fmt.Sprintf("/invoices/%s?apiKey=%s", created.ID, apiKey), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("repeat delete status = %d, want 204", rec.Code)
	}

	// The store is empty again.
	rec = do(http.MethodGet, "/invoices?apiKey="+apiKey, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("final list status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("final list body = %q, want bare empty array", body)
	}
}
