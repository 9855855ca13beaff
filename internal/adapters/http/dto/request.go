package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
)

const (
	msgRequired   = "is required"
	msgBadDueDate = "must be an RFC 3339 timestamp or a YYYY-MM-DD date"
)

// GenerateKeyRequest represents the JSON body for issuing a new API key.
type GenerateKeyRequest struct {
	UserID string `json:"userId"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *GenerateKeyRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return &domain.ValidationError{Fields: map[string]string{"userId": msgRequired}}
	}
	return nil
}

// InvoiceRequest represents the JSON body for creating an invoice. Updates
// use the same shape: an update is a full replacement of all four fields,
// never a partial patch.
//
// Amount is a pointer so that an absent field is distinguishable from a
// legitimate zero amount.
type InvoiceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Amount      *float64 `json:"amount"`
	DueDate     string   `json:"dueDate"`
}

// Validate checks that required fields are present and that dueDate parses.
// Returns a *domain.ValidationError if any checks fail. Amount sign and
// dueDate range are deliberately unconstrained.
func (r *InvoiceRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.Amount == nil {
		fields["amount"] = msgRequired
	}
	if strings.TrimSpace(r.DueDate) == "" {
		fields["dueDate"] = msgRequired
	} else if _, err := ParseDueDate(r.DueDate); err != nil {
		fields["dueDate"] = msgBadDueDate
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ParseDueDate accepts either a full RFC 3339 timestamp or a bare calendar
// date. Bare dates are interpreted as midnight UTC.
func ParseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateOnly, s)
}
