package domain

import (
	"strings"
	"time"
)

// APIKey is a possession credential. The key string itself is the identity:
// presenting an exact match grants access to gated operations. UserID records
// the owning principal at issuance and is not validated beyond presence.
type APIKey struct {
	Key       string
	UserID    string
	CreatedAt time.Time
}

// Validate checks business rules for the APIKey entity.
func (k *APIKey) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(k.Key) == "" {
		fields["key"] = msgRequired
	}
	if strings.TrimSpace(k.UserID) == "" {
		fields["userId"] = msgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
