// Package query filters and sorts in-memory employee snapshots. It is pure:
// Apply never mutates its input and is deterministic for identical inputs.
package query

import (
	"sort"
	"strings"

	"employee-directory/pkg/models"
)

// Field enumerates the employee attributes a query may reference. Query
// specs are built from these constants only; there is no dynamic field
// lookup by name.
type Field string

const (
	// FieldAny matches a text pattern against every searchable field.
	FieldAny Field = "any"

	FieldFirstName  Field = "first_name"
	FieldLastName   Field = "last_name"
	FieldEmail      Field = "email"
	FieldDepartment Field = "department"
	FieldPosition   Field = "position"
	FieldHireDate   Field = "hire_date"
	FieldSalary     Field = "salary"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// TextFilter keeps employees whose field value contains Pattern as a
// case-insensitive substring.
type TextFilter struct {
	Field   Field
	Pattern string
}

type Sort struct {
	Field     Field
	Direction Direction
}

// Spec combines a text filter, exact-match filters and a sort directive.
// Filters compose with logical AND. The zero Spec is the identity query.
type Spec struct {
	Search *TextFilter
	Exact  map[Field]string
	Sort   *Sort
}

// ParseField returns the Field named by s, or false when s names no field.
func ParseField(s string) (Field, bool) {
	switch f := Field(s); f {
	case FieldAny, FieldFirstName, FieldLastName, FieldEmail, FieldDepartment, FieldPosition, FieldHireDate, FieldSalary:
		return f, true
	}
	return "", false
}

// Searchable reports whether f can carry a text filter.
func Searchable(f Field) bool {
	switch f {
	case FieldAny, FieldFirstName, FieldLastName, FieldEmail, FieldDepartment, FieldPosition:
		return true
	}
	return false
}

// Sortable reports whether f can carry a sort directive.
func Sortable(f Field) bool {
	switch f {
	case FieldFirstName, FieldLastName, FieldEmail, FieldDepartment, FieldPosition, FieldHireDate, FieldSalary:
		return true
	}
	return false
}

// searchFields is the expansion of FieldAny.
var searchFields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldDepartment, FieldPosition}

// Apply filters and sorts emps according to spec and returns a new slice.
// Sorting is stable: employees that compare equal keep their original
// relative order, so repeated queries over identical input produce
// identical output.
func Apply(emps []models.Employee, spec Spec) []models.Employee {
	out := make([]models.Employee, 0, len(emps))
	for _, e := range emps {
		if matchesSearch(e, spec.Search) && matchesExact(e, spec.Exact) {
			out = append(out, e)
		}
	}

	if spec.Sort != nil {
		s := *spec.Sort
		sort.SliceStable(out, func(i, j int) bool {
			c := compare(out[i], out[j], s.Field)
			if s.Direction == Desc {
				return c > 0
			}
			return c < 0
		})
	}

	return out
}

func matchesSearch(e models.Employee, tf *TextFilter) bool {
	if tf == nil || tf.Pattern == "" {
		return true
	}
	pattern := strings.ToLower(tf.Pattern)
	if tf.Field == FieldAny {
		for _, f := range searchFields {
			if strings.Contains(strings.ToLower(textValue(e, f)), pattern) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(textValue(e, tf.Field)), pattern)
}

func matchesExact(e models.Employee, exact map[Field]string) bool {
	for f, want := range exact {
		// empty filter value means no constraint
		if want == "" {
			continue
		}
		if textValue(e, f) != want {
			return false
		}
	}
	return true
}

func textValue(e models.Employee, f Field) string {
	switch f {
	case FieldFirstName:
		return e.FirstName
	case FieldLastName:
		return e.LastName
	case FieldEmail:
		return e.Email
	case FieldDepartment:
		return e.Department
	case FieldPosition:
		return e.Position
	}
	return ""
}

// compare orders a against b by the natural ordering of the field's type:
// chronological for hire_date, numeric for salary, lexicographic otherwise.
func compare(a, b models.Employee, f Field) int {
	switch f {
	case FieldHireDate:
		at, bt := a.HireDate.Time(), b.HireDate.Time()
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	case FieldSalary:
		switch {
		case a.Salary < b.Salary:
			return -1
		case a.Salary > b.Salary:
			return 1
		}
		return 0
	default:
		return strings.Compare(textValue(a, f), textValue(b, f))
	}
}
