package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"log/slog"

	"employee-directory/pkg/models"
	"employee-directory/pkg/repository"
)

const employeeColumns = `id, first_name, last_name, email, phone, department, position, hire_date, salary, updated`

// The duplicate pre-check and the following write are not one transaction:
// two concurrent creates with the same email can both pass the check. The
// UNIQUE index on employees.email (COLLATE NOCASE) is the authority; the
// loser's constraint failure is mapped back to ErrDuplicateEmail, the
// pre-check only exists to answer the common case without an index error.

func (r *SQLiteRepo) CreateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("employee is nil")
	}

	taken, err := r.emailTaken(ctx, e.Email, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, repository.ErrDuplicateEmail
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO employees (first_name, last_name, email, phone, department, position, hire_date, salary, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.FirstName, e.LastName, e.Email, e.Phone, e.Department, e.Position, e.HireDate, e.Salary, now())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicateEmail
		}
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	var e models.Employee
	if err := scanEmployee(row.Scan, &e); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &e, nil
}

func (r *SQLiteRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Employee
	for rows.Next() {
		var e models.Employee
		if err := scanEmployee(rows.Scan, &e); err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateEmployee(ctx context.Context, e *models.Employee) error {
	if e == nil {
		return fmt.Errorf("employee is nil")
	}

	existing, err := r.GetEmployee(ctx, e.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return repository.ErrNotFound
	}

	taken, err := r.emailTaken(ctx, e.Email, e.ID)
	if err != nil {
		return err
	}
	if taken {
		return repository.ErrDuplicateEmail
	}

	_, err = r.conn.Exec(ctx,
		`UPDATE employees SET first_name = ?, last_name = ?, email = ?, phone = ?, department = ?, position = ?, hire_date = ?, salary = ?, updated = ? WHERE id = ?`,
		e.FirstName, e.LastName, e.Email, e.Phone, e.Department, e.Position, e.HireDate, e.Salary, now(), e.ID)
	if err != nil && isUniqueViolation(err) {
		return repository.ErrDuplicateEmail
	}
	return err
}

// DeleteEmployee is idempotent: deleting an id that does not exist succeeds.
func (r *SQLiteRepo) DeleteEmployee(ctx context.Context, id int64) error {
	res, err := r.conn.Exec(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.logger.Debug("delete of absent employee", slog.Int64("id", id))
	}
	return nil
}

// emailTaken reports whether another employee already holds email. The email
// column's NOCASE collation makes the comparison case-insensitive.
func (r *SQLiteRepo) emailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	row := r.conn.QueryRow(ctx, `SELECT id FROM employees WHERE email = ? AND id != ? LIMIT 1`, email, excludeID)
	var id int64
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func scanEmployee(scan func(...any) error, e *models.Employee) error {
	return scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Department, &e.Position, &e.HireDate, &e.Salary, &e.Updated)
}
