package db

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"employee-directory/pkg/models"
)

// Migrate applies any SQL files in the embedded migrations directory that
// have not yet been recorded in the `schema_migrations` table. It is safe to
// run on every startup.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS) error {
	// ensure migrations table exists
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	// embedded migrations are provided under "migrations/..." in the top-level db package
	migDir := "migrations"

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	// collect .sql files and sort
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		// use filename (without extension) as migration version key
		version := strings.TrimSuffix(fname, path.Ext(fname))

		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration applied count: %w", err)
		}
		if count > 0 {
			// already applied
			continue
		}

		p := path.Join(migDir, fname)
		b, err := fs.ReadFile(migrationFS, p)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (?, strftime('%s','now'))`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", fname, err)
		}
	}

	return nil
}

// Seed loads sample employees from the embedded seed file, if present, and
// inserts them idempotently. Rows whose email already exists are skipped by
// the unique index.
func Seed(ctx context.Context, d *DB, seedFS embed.FS) error {
	b, err := fs.ReadFile(seedFS, path.Join("seed", "employees.json"))
	if err != nil {
		// no seed data bundled
		return nil
	}

	var emps []models.Employee
	if err := json.Unmarshal(b, &emps); err != nil {
		return fmt.Errorf("parse seed employees: %w", err)
	}

	for _, e := range emps {
		if _, err := d.Exec(ctx,
			`INSERT OR IGNORE INTO employees (first_name, last_name, email, phone, department, position, hire_date, salary, updated)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, strftime('%s','now')*1000)`,
			e.FirstName, e.LastName, e.Email, e.Phone, e.Department, e.Position, e.HireDate, e.Salary); err != nil {
			return fmt.Errorf("seed employee %s: %w", e.Email, err)
		}
	}

	return nil
}
