package db_test

import (
	"context"
	"path/filepath"
	"testing"

	dbfs "employee-directory/db"
	"employee-directory/internal/db"
)

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	// Run again to ensure idempotency
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&count); err != nil {
		t.Fatalf("scan schema_migrations count: %v", err)
	}
	if count < 1 {
		t.Fatalf("expected at least 1 migration recorded, got %d", count)
	}

	// verify the employees table from the embedded migrations exists
	var name string
	if err := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name='employees'`).Scan(&name); err != nil {
		t.Fatalf("expected employees table exists: %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	if err := db.Seed(ctx, d, dbfs.SeedFiles); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var first int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM employees`).Scan(&first); err != nil {
		t.Fatalf("count employees: %v", err)
	}
	if first == 0 {
		t.Fatalf("expected seeded employees")
	}

	// second run must not duplicate rows
	if err := db.Seed(ctx, d, dbfs.SeedFiles); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	var second int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM employees`).Scan(&second); err != nil {
		t.Fatalf("count employees: %v", err)
	}
	if second != first {
		t.Fatalf("seed not idempotent: %d then %d rows", first, second)
	}
}
