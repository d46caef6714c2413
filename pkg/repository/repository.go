package repository

import (
	"context"
	"errors"

	"employee-directory/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrDuplicateEmail is returned when a write would leave two employees
// sharing the same email. Emails are compared case-insensitively.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrNotFound is returned when an update references an id that does not exist.
var ErrNotFound = errors.New("employee not found")

type EmployeeRepo interface {
	CreateEmployee(ctx context.Context, e *models.Employee) (int64, error)
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, e *models.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
}
