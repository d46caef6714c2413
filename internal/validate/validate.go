// Package validate normalizes raw employee fields into a models.Employee or
// reports which fields are invalid and why. It performs no I/O and never
// checks collection-wide invariants such as email uniqueness; those belong
// to the record store, which can see the whole collection.
package validate

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"employee-directory/pkg/models"
)

// Reason identifies why a field was rejected. The values are stable tokens
// surfaced to API clients.
type Reason string

const (
	ReasonRequired         Reason = "required"
	ReasonInvalidFormat    Reason = "invalid_format"
	ReasonLengthOutOfRange Reason = "length_out_of_range"
	ReasonOutOfRange       Reason = "out_of_range"
	ReasonNotPositive      Reason = "not_positive"
)

// FieldErrors maps a field name to the reason it was rejected.
type FieldErrors map[string]Reason

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(f)
		sb.WriteString(": ")
		sb.WriteString(string(fe[f]))
	}
	return sb.String()
}

// Input carries raw field values as received from a client. Salary is a
// pointer so an absent value is distinguishable from zero.
type Input struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Department string
	Position   string
	HireDate   string
	Salary     *float64
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z ]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// Employee checks every field independently and collects all violations.
// On success it returns a normalized record: strings trimmed, hire date
// parsed. The hire-date bound is evaluated against now, the caller's clock.
func Employee(in Input, now time.Time) (*models.Employee, FieldErrors) {
	errs := FieldErrors{}

	first := checkName("first_name", in.FirstName, errs)
	last := checkName("last_name", in.LastName, errs)

	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs["email"] = ReasonRequired
	} else if !emailRe.MatchString(email) {
		errs["email"] = ReasonInvalidFormat
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		errs["phone"] = ReasonRequired
	} else if !phoneRe.MatchString(phone) {
		errs["phone"] = ReasonInvalidFormat
	}

	department := strings.TrimSpace(in.Department)
	if department == "" {
		errs["department"] = ReasonRequired
	}

	position := strings.TrimSpace(in.Position)
	if position == "" {
		errs["position"] = ReasonRequired
	}

	var hireDate models.Date
	if raw := strings.TrimSpace(in.HireDate); raw == "" {
		errs["hire_date"] = ReasonRequired
	} else if d, err := models.ParseDate(raw); err != nil {
		errs["hire_date"] = ReasonInvalidFormat
	} else if d.After(models.DateOf(now)) {
		errs["hire_date"] = ReasonOutOfRange
	} else {
		hireDate = d
	}

	var salary float64
	if in.Salary == nil {
		errs["salary"] = ReasonRequired
	} else if *in.Salary <= 0 || math.IsNaN(*in.Salary) {
		errs["salary"] = ReasonNotPositive
	} else {
		salary = *in.Salary
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Employee{
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Phone:      phone,
		Department: department,
		Position:   position,
		HireDate:   hireDate,
		Salary:     salary,
	}, nil
}

// checkName applies the shared first/last name rules: non-empty after
// trimming, letters and spaces only, 2 to 50 characters.
func checkName(field, raw string, errs FieldErrors) string {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		errs[field] = ReasonRequired
	case !nameRe.MatchString(name):
		errs[field] = ReasonInvalidFormat
	case len(name) < 2 || len(name) > 50:
		errs[field] = ReasonLengthOutOfRange
	}
	return name
}
