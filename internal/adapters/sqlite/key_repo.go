package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
	"github.com/jsamuelsen11/invoice-api/internal/ports"
)

// Compile-time interface satisfaction check.
var _ ports.KeyRepository = (*KeyRepo)(nil)

// KeyRepo is the SQLite implementation of the KeyRepository port. The key
// value is the primary key, which gives the uniqueness guarantee the
// credential contract requires.
type KeyRepo struct {
	db *DB
}

// NewKeyRepo creates a new KeyRepo on the given database.
func NewKeyRepo(db *DB) *KeyRepo {
	return &KeyRepo{db: db}
}

// Insert persists a new credential. Returns domain.ErrConflict if a
// credential with the same key value already exists.
func (r *KeyRepo) Insert(ctx context.Context, key *domain.APIKey) error {
	const query = `INSERT INTO api_keys (key, user_id, created_at) VALUES (?, ?, ?)`
	_, err := r.db.Writer.ExecContext(ctx, query, key.Key, key.UserID, formatTime(time.Now()))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("insert api key: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert api key: %w", err)
	}
	return nil
}

// FindByKey looks up a credential by exact key value.
// Returns domain.ErrNotFound if no credential matches.
func (r *KeyRepo) FindByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	const query = `SELECT key, user_id, created_at FROM api_keys WHERE key = ?`

	var (
		cred      domain.APIKey
		createdAt string
	)
	err := r.db.Reader.QueryRowContext(ctx, query, key).Scan(&cred.Key, &cred.UserID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find api key: %w", err)
	}

	if cred.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at for api key: %w", err)
	}

	return &cred, nil
}

// Upsert stores a credential, replacing the principal of any existing
// credential with the same key value.
func (r *KeyRepo) Upsert(ctx context.Context, key *domain.APIKey) error {
	const query = `INSERT OR REPLACE INTO api_keys (key, user_id, created_at) VALUES (?, ?, ?)`
	_, err := r.db.Writer.ExecContext(ctx, query, key.Key, key.UserID, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("upsert api key: %w", err)
	}
	return nil
}
