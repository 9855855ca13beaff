package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
	"github.com/jsamuelsen11/invoice-api/internal/ports"
)

// Compile-time interface satisfaction check.
var _ ports.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo is the SQLite implementation of the InvoiceRepository port.
// It assigns invoice identity (a UUID string) on insert and stores timestamps
// as RFC 3339 text in UTC.
type InvoiceRepo struct {
	db *DB
}

// NewInvoiceRepo creates a new InvoiceRepo on the given database.
func NewInvoiceRepo(db *DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Insert persists a new invoice, assigning its ID and timestamps.
// The input is not modified; the stored entity is returned.
func (r *InvoiceRepo) Insert(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	stored := *inv
	stored.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	const query = `INSERT INTO invoices (id, title, description, amount, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Writer.ExecContext(ctx, query,
		stored.ID,
		stored.Title,
		nullableText(stored.Description),
		stored.Amount,
		formatTime(stored.DueDate),
		formatTime(stored.CreatedAt),
		formatTime(stored.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	return &stored, nil
}

// List returns all invoices in insertion order.
func (r *InvoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	const query = `SELECT id, title, description, amount, due_date, created_at, updated_at
		FROM invoices ORDER BY rowid`
	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}

	return invoices, nil
}

// Replace overwrites the mutable fields of the invoice identified by id and
// returns the stored result. Returns domain.ErrNotFound for an unknown id.
func (r *InvoiceRepo) Replace(ctx context.Context, id string, inv *domain.Invoice) (*domain.Invoice, error) {
	const query = `UPDATE invoices
		SET title = ?, description = ?, amount = ?, due_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.Writer.ExecContext(ctx, query,
		inv.Title,
		nullableText(inv.Description),
		inv.Amount,
		formatTime(inv.DueDate),
		formatTime(time.Now().UTC().Truncate(time.Second)),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("update invoice %q: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update invoice %q: rows affected: %w", id, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("invoice %q: %w", id, domain.ErrNotFound)
	}

	return r.get(ctx, id)
}

// Delete removes the invoice identified by id. Deleting an id that does not
// exist is a no-op, not an error.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM invoices WHERE id = ?`
	if _, err := r.db.Writer.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete invoice %q: %w", id, err)
	}
	return nil
}

func (r *InvoiceRepo) get(ctx context.Context, id string) (*domain.Invoice, error) {
	const query = `SELECT id, title, description, amount, due_date, created_at, updated_at
		FROM invoices WHERE id = ?`
	row := r.db.Reader.QueryRowContext(ctx, query, id)

	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invoice %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanInvoice.
type scanner interface {
	Scan(dest ...any) error
}

func scanInvoice(s scanner) (*domain.Invoice, error) {
	var (
		inv         domain.Invoice
		description sql.NullString
		dueDate     string
		createdAt   string
		updatedAt   string
	)
	if err := s.Scan(&inv.ID, &inv.Title, &description, &inv.Amount, &dueDate, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}

	inv.Description = description.String

	var err error
	if inv.DueDate, err = parseTime(dueDate); err != nil {
		return nil, fmt.Errorf("parse due_date for invoice %q: %w", inv.ID, err)
	}
	if inv.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at for invoice %q: %w", inv.ID, err)
	}
	if inv.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at for invoice %q: %w", inv.ID, err)
	}

	return &inv, nil
}

// nullableText maps an empty string to NULL so that absent descriptions stay
// absent in storage.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
