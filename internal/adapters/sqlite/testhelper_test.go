package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/invoice-api/internal/domain"
)

// newTestDB opens a migrated database in a per-test temp directory.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})

	if err := RunMigrations(db.Writer); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	return db
}

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		Title:       "Rent",
		Description: "May rent",
		Amount:      1200,
		DueDate:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}
