package models

// Domain models matching the database schema in db/migrations/0001_employees.sql

type Employee struct {
	ID         int64   `json:"id" db:"id"`
	FirstName  string  `json:"first_name" db:"first_name" validate:"required"`
	LastName   string  `json:"last_name" db:"last_name" validate:"required"`
	Email      string  `json:"email" db:"email" validate:"required,email"`
	Phone      string  `json:"phone" db:"phone" validate:"required"`
	Department string  `json:"department" db:"department" validate:"required"`
	Position   string  `json:"position" db:"position" validate:"required"`
	HireDate   Date    `json:"hire_date" db:"hire_date"`
	Salary     float64 `json:"salary" db:"salary"`
	Updated    int64   `json:"updated" db:"updated"`
}
