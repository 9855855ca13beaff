package domain

import (
	"strings"
	"time"
)

const msgRequired = "is required"

// Invoice is the billable record managed by the service.
type Invoice struct {
	ID          string
	Title       string
	Description string
	Amount      float64
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Invoice entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
//
// Description is optional. Amount and DueDate carry no range constraints:
// negative amounts and past due dates are accepted on purpose.
func (i *Invoice) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(i.Title) == "" {
		fields["title"] = msgRequired
	}
	if i.DueDate.IsZero() {
		fields["dueDate"] = msgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
