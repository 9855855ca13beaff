package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
	"github.com/jsamuelsen11/invoice-api/internal/ports"
)

// Compile-time check that KeyService implements ports.KeyService.
var _ ports.KeyService = (*KeyService)(nil)

// KeyService implements ports.KeyService: it issues possession credentials
// and validates presented keys against the credential store. Validation is
// fail-closed and side-effect free; issuance is the only write path.
type KeyService struct {
	repo   ports.KeyRepository
	logger *slog.Logger
}

// NewKeyService creates a KeyService backed by the given repository.
// A nil logger is replaced with a no-op logger.
func NewKeyService(repo ports.KeyRepository, logger *slog.Logger) *KeyService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &KeyService{
		repo:   repo,
		logger: logger,
	}
}

// Issue generates a fresh key for userID, persists it, and returns the key
// value. Keys are UUID v4 strings: 122 bits of randomness, which makes a
// collision with any previously issued key cryptographically negligible.
func (s *KeyService) Issue(ctx context.Context, userID string) (string, error) {
	key := &domain.APIKey{
		Key:    uuid.NewString(),
		UserID: userID,
	}
	if err := key.Validate(); err != nil {
		return "", err
	}

	if err := s.repo.Insert(ctx, key); err != nil {
		s.logger.ErrorContext(ctx, "failed to issue API key",
			slog.String("operation", "Issue"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return "", err
	}

	s.logger.InfoContext(ctx, "issued API key", slog.String("user_id", userID))
	return key.Key, nil
}

// Validate checks a presented key against the credential store. An empty key
// fails with domain.ErrMissingAPIKey and an unrecognized one with
// domain.ErrInvalidAPIKey; both unwrap to domain.ErrUnauthorized.
//
// The stored key is compared to the presented value with a constant-time
// comparison: this lookup is the sole line of defense for mutating
// operations, so equality must not leak timing information.
func (s *KeyService) Validate(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrMissingAPIKey
	}

	stored, err := s.repo.FindByKey(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrInvalidAPIKey
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to look up API key",
			slog.String("operation", "Validate"),
			slog.Any("error", err),
		)
		return err
	}

	if subtle.ConstantTimeCompare([]byte(stored.Key), []byte(key)) != 1 {
		return domain.ErrInvalidAPIKey
	}
	return nil
}

// Seed stores a pre-configured key for userID, replacing any credential with
// the same key value. It runs at startup to express the single-tenant static
// secret as a regular credential flowing through the same validator.
func (s *KeyService) Seed(ctx context.Context, key, userID string) error {
	cred := &domain.APIKey{
		Key:    key,
		UserID: userID,
	}
	if err := cred.Validate(); err != nil {
		return fmt.Errorf("seeding static API key: %w", err)
	}

	if err := s.repo.Upsert(ctx, cred); err != nil {
		s.logger.ErrorContext(ctx, "failed to seed static API key",
			slog.String("operation", "Seed"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "seeded static API key", slog.String("user_id", userID))
	return nil
}
