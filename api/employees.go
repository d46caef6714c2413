package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"log/slog"

	"employee-directory/internal/validate"
	"employee-directory/pkg/models"
	"employee-directory/pkg/query"
	"employee-directory/pkg/repository"
)

type EmployeesHandler struct {
	repo repository.EmployeeRepo
}

func NewEmployeesHandler(repo repository.EmployeeRepo) *EmployeesHandler {
	return &EmployeesHandler{repo: repo}
}

type employeePayload struct {
	ID         int64    `json:"id,omitempty"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	HireDate   string   `json:"hire_date"`
	Salary     *float64 `json:"salary"`
}

func (p employeePayload) input() validate.Input {
	return validate.Input{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Email:      p.Email,
		Phone:      p.Phone,
		Department: p.Department,
		Position:   p.Position,
		HireDate:   p.HireDate,
		Salary:     p.Salary,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string               `json:"message"`
	Errors  validate.FieldErrors `json:"errors"`
}

type createResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// List returns the collection, optionally filtered and sorted server-side.
// Query parameters: q (pattern), field (searchable field, default any),
// department, position (exact filters), sort, order (asc or desc).
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	spec, err := parseQuerySpec(r.URL.Query())
	if err != nil {
		writeJSON(w, messageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	emps, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		logger.Error("list employees", slog.Any("err", err), slog.String("request_id", RequestID(r.Context())))
		writeJSON(w, messageResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	out := query.Apply(emps, spec)
	if out == nil {
		out = []models.Employee{}
	}

	writeJSON(w, out, http.StatusOK)
}

func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}

	emp, ferrs := validate.Employee(payload.input(), time.Now())
	if ferrs != nil {
		writeJSON(w, validationResponse{Message: "Validation failed", Errors: ferrs}, http.StatusBadRequest)
		return
	}

	id, err := h.repo.CreateEmployee(r.Context(), emp)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeJSON(w, messageResponse{Message: "Email already exists"}, http.StatusBadRequest)
			return
		}
		logger.Error("create employee", slog.Any("err", err), slog.String("request_id", RequestID(r.Context())))
		writeJSON(w, messageResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, createResponse{Message: "Employee created successfully", ID: id}, http.StatusCreated)
}

func (h *EmployeesHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}
	if payload.ID <= 0 {
		writeJSON(w, messageResponse{Message: "Missing employee id"}, http.StatusBadRequest)
		return
	}

	emp, ferrs := validate.Employee(payload.input(), time.Now())
	if ferrs != nil {
		writeJSON(w, validationResponse{Message: "Validation failed", Errors: ferrs}, http.StatusBadRequest)
		return
	}
	emp.ID = payload.ID

	if err := h.repo.UpdateEmployee(r.Context(), emp); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			writeJSON(w, messageResponse{Message: "Email already exists"}, http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			writeJSON(w, messageResponse{Message: "Employee not found"}, http.StatusNotFound)
		default:
			logger.Error("update employee", slog.Any("err", err), slog.String("request_id", RequestID(r.Context())))
			writeJSON(w, messageResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, messageResponse{Message: "Employee updated successfully"}, http.StatusOK)
}

type deleteRequest struct {
	ID int64 `json:"id"`
}

// Delete removes an employee. Absence of the id is not an error.
func (h *EmployeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, messageResponse{Message: "Invalid request"}, http.StatusBadRequest)
		return
	}
	if req.ID <= 0 {
		writeJSON(w, messageResponse{Message: "Missing employee id"}, http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteEmployee(r.Context(), req.ID); err != nil {
		logger.Error("delete employee", slog.Any("err", err), slog.String("request_id", RequestID(r.Context())))
		writeJSON(w, messageResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, messageResponse{Message: "Employee deleted successfully"}, http.StatusOK)
}

// decodeEmployee reads the body, runs the JSON Schema shape gate and decodes
// the employee payload. On failure it has already written the response.
func (h *EmployeesHandler) decodeEmployee(w http.ResponseWriter, r *http.Request) (employeePayload, bool) {
	var payload employeePayload

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, messageResponse{Message: "Invalid request"}, http.StatusBadRequest)
		return payload, false
	}
	if err := validate.Payload(r.Context(), body); err != nil {
		writeJSON(w, messageResponse{Message: "Invalid request body"}, http.StatusBadRequest)
		return payload, false
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, messageResponse{Message: "Invalid request"}, http.StatusBadRequest)
		return payload, false
	}

	return payload, true
}

func parseQuerySpec(q url.Values) (query.Spec, error) {
	var spec query.Spec

	if pattern := q.Get("q"); pattern != "" {
		field := query.FieldAny
		if raw := q.Get("field"); raw != "" {
			f, ok := query.ParseField(raw)
			if !ok || !query.Searchable(f) {
				return query.Spec{}, errors.New("unknown search field")
			}
			field = f
		}
		spec.Search = &query.TextFilter{Field: field, Pattern: pattern}
	}

	exact := map[query.Field]string{}
	if v := q.Get("department"); v != "" {
		exact[query.FieldDepartment] = v
	}
	if v := q.Get("position"); v != "" {
		exact[query.FieldPosition] = v
	}
	if len(exact) > 0 {
		spec.Exact = exact
	}

	if raw := q.Get("sort"); raw != "" {
		f, ok := query.ParseField(raw)
		if !ok || !query.Sortable(f) {
			return query.Spec{}, errors.New("unknown sort field")
		}
		dir := query.Asc
		switch q.Get("order") {
		case "", "asc":
		case "desc":
			dir = query.Desc
		default:
			return query.Spec{}, errors.New("order must be asc or desc")
		}
		spec.Sort = &query.Sort{Field: f, Direction: dir}
	}

	return spec, nil
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}
