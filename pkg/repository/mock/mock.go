package mock

import (
	"context"
	"strings"

	"employee-directory/pkg/models"
	"employee-directory/pkg/repository"
)

// EmployeeRepo is an in-memory repository for handler tests. Error fields,
// when set, are returned by the corresponding operation instead of touching
// the map.
type EmployeeRepo struct {
	Employees map[int64]models.Employee
	NextID    int64

	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

var _ repository.EmployeeRepo = (*EmployeeRepo)(nil)

func NewEmployeeRepo() *EmployeeRepo {
	return &EmployeeRepo{Employees: make(map[int64]models.Employee), NextID: 1}
}

func (m *EmployeeRepo) CreateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	if m.emailTaken(e.Email, 0) {
		return 0, repository.ErrDuplicateEmail
	}
	id := m.NextID
	m.NextID++
	stored := *e
	stored.ID = id
	m.Employees[id] = stored
	return id, nil
}

func (m *EmployeeRepo) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	e, ok := m.Employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *EmployeeRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.Employee, 0, len(m.Employees))
	for id := int64(1); id < m.NextID; id++ {
		if e, ok := m.Employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *EmployeeRepo) UpdateEmployee(ctx context.Context, e *models.Employee) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.Employees[e.ID]; !ok {
		return repository.ErrNotFound
	}
	if m.emailTaken(e.Email, e.ID) {
		return repository.ErrDuplicateEmail
	}
	m.Employees[e.ID] = *e
	return nil
}

func (m *EmployeeRepo) DeleteEmployee(ctx context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Employees, id)
	return nil
}

func (m *EmployeeRepo) emailTaken(email string, excludeID int64) bool {
	for id, e := range m.Employees {
		if id != excludeID && strings.EqualFold(e.Email, email) {
			return true
		}
	}
	return false
}
