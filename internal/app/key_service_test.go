package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
	"github.com/jsamuelsen11/invoice-api/mocks"
)

// --- Issue ---

func TestKeyService_Issue(t *testing.T) {
	t.Parallel()

	t.Run("generates and persists a UUID key", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		var inserted *domain.APIKey
		repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.APIKey")).
			Run(func(_ context.Context, key *domain.APIKey) {
				inserted = key
			}).
			Return(nil)

		key, err := svc.Issue(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Issue() error = %v, want nil", err)
		}
		if _, err := uuid.Parse(key); err != nil {
			t.Errorf("Issue() key = %q is not a valid UUID: %v", key, err)
		}
		if inserted == nil || inserted.Key != key {
			t.Errorf("persisted key = %v, want the returned key %q", inserted, key)
		}
		if inserted.UserID != "user-1" {
			t.Errorf("persisted UserID = %q, want %q", inserted.UserID, "user-1")
		}
	})

	t.Run("distinct keys per call", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.APIKey")).Return(nil).Twice()

		first, err := svc.Issue(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		second, err := svc.Issue(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		if first == second {
			t.Errorf("two Issue() calls returned the same key %q", first)
		}
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		_, err := svc.Issue(context.Background(), "")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Issue() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		storeErr := errors.New("disk full")
		repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.APIKey")).Return(storeErr)

		_, err := svc.Issue(context.Background(), "user-1")
		if !errors.Is(err, storeErr) {
			t.Errorf("Issue() error = %v, want %v", err, storeErr)
		}
	})
}

// --- Validate ---

func TestKeyService_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts matching key", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		stored := &domain.APIKey{Key: "good-key", UserID: "user-1"}
		repo.EXPECT().FindByKey(mock.Anything, "good-key").Return(stored, nil)

		if err := svc.Validate(context.Background(), "good-key"); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing key fails closed without store lookup", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		err := svc.Validate(context.Background(), "")
		if !errors.Is(err, domain.ErrMissingAPIKey) {
			t.Errorf("Validate(\"\") = %v, want ErrMissingAPIKey", err)
		}
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Validate(\"\") = %v, should unwrap to ErrUnauthorized", err)
		}
	})

	t.Run("unrecognized key fails closed", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		repo.EXPECT().FindByKey(mock.Anything, "bad-key").Return(nil, domain.ErrNotFound)

		err := svc.Validate(context.Background(), "bad-key")
		if !errors.Is(err, domain.ErrInvalidAPIKey) {
			t.Errorf("Validate() = %v, want ErrInvalidAPIKey", err)
		}
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Validate() = %v, should unwrap to ErrUnauthorized", err)
		}
	})

	t.Run("store failure propagates, not mapped to unauthorized", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		storeErr := errors.New("disk error")
		repo.EXPECT().FindByKey(mock.Anything, "any-key").Return(nil, storeErr)

		err := svc.Validate(context.Background(), "any-key")
		if !errors.Is(err, storeErr) {
			t.Errorf("Validate() = %v, want %v", err, storeErr)
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			t.Error("store failures must not masquerade as unauthorized")
		}
	})
}

// --- Seed ---

func TestKeyService_Seed(t *testing.T) {
	t.Parallel()

	t.Run("upserts the static credential", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		var seeded *domain.APIKey
		repo.EXPECT().Upsert(mock.Anything, mock.AnythingOfType("*domain.APIKey")).
			Run(func(_ context.Context, key *domain.APIKey) {
				seeded = key
			}).
			Return(nil)

		if err := svc.Seed(context.Background(), "pre-shared", "static"); err != nil {
			t.Fatalf("Seed() error = %v, want nil", err)
		}
		if seeded.Key != "pre-shared" || seeded.UserID != "static" {
			t.Errorf("seeded = %+v, want key=pre-shared userId=static", seeded)
		}
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		if err := svc.Seed(context.Background(), "", "static"); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Seed() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockKeyRepository(t)
		svc := NewKeyService(repo, discardLogger())

		storeErr := errors.New("disk full")
		repo.EXPECT().Upsert(mock.Anything, mock.AnythingOfType("*domain.APIKey")).Return(storeErr)

		if err := svc.Seed(context.Background(), "pre-shared", "static"); !errors.Is(err, storeErr) {
			t.Errorf("Seed() error = %v, want %v", err, storeErr)
		}
	})
}
