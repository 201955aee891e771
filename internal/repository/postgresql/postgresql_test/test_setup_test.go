package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/hris-geofence/internal/pkg/database"
	"github.com/cmlabs-hris/hris-geofence/internal/repository/postgresql"
)

// TestDatabaseSetup untuk menginisialisasi test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema. The test is skipped when the variable
// is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4, MinConns: 1})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		db.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if err := setup.TruncateAllTables(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to truncate tables: %v", err)
	}
	t.Cleanup(setup.Close)

	return setup
}

// TruncateAllTables menghapus semua data dari tabel
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"office_locations",
		"settings",
		"holidays",
		"leaves",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close menutup koneksi database
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
