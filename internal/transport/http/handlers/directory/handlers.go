package directoryhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

const maxImportBytes = 2 * 1024 * 1024

type Handler struct {
	Service *directory.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *directory.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Perms)).Get("/export", h.handleExport)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Perms)).Get("/template", h.handleTemplate)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Perms)).Post("/import", h.handleImport)
		r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Perms)).Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Perms)).Put("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Perms)).Delete("/{employeeID}", h.handleDelete)
		r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Perms)).Get("/{employeeID}/skill-gap", h.handleSkillGap)
		r.With(middleware.RequirePermission(auth.PermSkillsManage, h.Perms)).Post("/{employeeID}/skills", h.handleAddSkill)
		r.With(middleware.RequirePermission(auth.PermSkillsManage, h.Perms)).Delete("/{employeeID}/skills/{skillID}", h.handleRemoveSkill)
	})
	r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Perms)).Get("/skills", h.handleSkills)
	r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Perms)).Get("/skills/target-roles", h.handleTargetRoles)
	r.With(middleware.RequirePermission(auth.PermOrgRead, h.Perms)).Get("/departments", h.handleDepartments)
	r.With(middleware.RequirePermission(auth.PermOrgRead, h.Perms)).Get("/job-positions", h.handleJobPositions)
}

type employeePayload struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	Gender             string                     `json:"gender"`
	JobTitle           string                     `json:"jobTitle"`
	Department         string                     `json:"department"`
	ManagerID          string                     `json:"managerId"`
	EmploymentType     string                     `json:"employmentType"`
	EmploymentStatus   string                     `json:"employmentStatus"`
	DateOfHire         string                     `json:"dateOfHire"`
	ContractType       string                     `json:"contractType"`
	ContractStartDate  string                     `json:"contractStartDate"`
	ContractEndDate    string                     `json:"contractEndDate"`
	ProbationStatus    string                     `json:"probationStatus"`
	BasicSalary        float64                    `json:"basicSalary"`
	PayFrequency       string                     `json:"payFrequency"`
	AnnualLeaveBalance int                        `json:"annualLeaveBalance"`
	Email              string                     `json:"email"`
	Phone              string                     `json:"phone"`
	Address            string                     `json:"address"`
	EmergencyContact   directory.EmergencyContact `json:"emergencyContact"`
	Skills             []directory.Skill          `json:"skills"`
}

func (p employeePayload) validate(v *shared.Validator) directory.Employee {
	v.Required("name", p.Name, "is required")
	v.Required("jobTitle", p.JobTitle, "is required")
	v.Required("department", p.Department, "is required")
	v.Enum("gender", p.Gender, directory.Genders, "must be Male or Female")
	v.Enum("employmentType", p.EmploymentType, directory.EmploymentTypes, "unknown employment type")
	v.Enum("employmentStatus", p.EmploymentStatus, directory.EmploymentStatuses, "unknown employment status")
	v.Enum("contractType", p.ContractType, directory.ContractTypes, "unknown contract type")
	v.Enum("probationStatus", p.ProbationStatus, directory.ProbationStatuses, "unknown probation status")
	v.Enum("payFrequency", p.PayFrequency, directory.PayFrequencies, "unknown pay frequency")
	if p.BasicSalary < 0 {
		v.Add("basicSalary", "must not be negative")
	}
	if p.AnnualLeaveBalance < 0 {
		v.Add("annualLeaveBalance", "must not be negative")
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		v.Add("email", "must be an email address")
	}

	emp := directory.Employee{
		ID:                 strings.TrimSpace(p.ID),
		Name:               strings.TrimSpace(p.Name),
		Gender:             p.Gender,
		JobTitle:           strings.TrimSpace(p.JobTitle),
		Department:         strings.TrimSpace(p.Department),
		ManagerID:          strings.TrimSpace(p.ManagerID),
		EmploymentType:     p.EmploymentType,
		EmploymentStatus:   p.EmploymentStatus,
		ContractType:       p.ContractType,
		ProbationStatus:    p.ProbationStatus,
		BasicSalary:        p.BasicSalary,
		PayFrequency:       p.PayFrequency,
		AnnualLeaveBalance: p.AnnualLeaveBalance,
		Email:              strings.TrimSpace(p.Email),
		Phone:              strings.TrimSpace(p.Phone),
		Address:            strings.TrimSpace(p.Address),
		EmergencyContact:   p.EmergencyContact,
		Skills:             p.Skills,
	}
	if p.DateOfHire != "" {
		emp.DateOfHire, _ = v.Date("dateOfHire", p.DateOfHire)
	}
	emp.ContractStartDate = optionalDate(v, "contractStartDate", p.ContractStartDate)
	emp.ContractEndDate = optionalDate(v, "contractEndDate", p.ContractEndDate)
	if emp.ContractStartDate != nil && emp.ContractEndDate != nil {
		v.DateOrder("contractStartDate", *emp.ContractStartDate, "contractEndDate", *emp.ContractEndDate)
	}
	return emp
}

func optionalDate(v *shared.Validator, field, raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, ok := v.Date(field, raw)
	if !ok {
		return nil
	}
	return &parsed
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employees, err := h.Service.List(r.Context(), user)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}

	if department := r.URL.Query().Get("department"); department != "" {
		filtered := employees[:0]
		for _, emp := range employees {
			if emp.Department == department {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.Service.Get(r.Context(), user, chi.URLParam(r, "employeeID"))
	if errors.Is(err, directory.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	emp := payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.Create(r.Context(), emp)
	if errors.Is(err, directory.ErrDuplicateID) {
		api.Fail(w, http.StatusConflict, "duplicate_id", "employee id already exists", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	emp := payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "employeeID"), emp)
	if errors.Is(err, directory.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, directory.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var buf bytes.Buffer
	if err := h.Service.Export(r.Context(), user, &buf); err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_export_failed", "failed to export employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Attachment(w, "text/csv", "employees.csv", buf.Bytes())
}

func (h *Handler) handleTemplate(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := directory.WriteTemplate(&buf); err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_template_failed", "failed to build template", middleware.GetRequestID(r.Context()))
		return
	}
	api.Attachment(w, "text/csv", "employee_template.csv", buf.Bytes())
}

// handleImport accepts the CSV either as the raw body or as a multipart
// "file" field.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "could not read uploaded csv", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.Import(r.Context(), data)
	switch {
	case errors.Is(err, directory.ErrCSVTooShort), errors.Is(err, directory.ErrCSVInvalidHeader):
		api.Fail(w, http.StatusBadRequest, "invalid_csv", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "employee_import_failed", "failed to import employees", middleware.GetRequestID(r.Context()))
		return
	}
	if result.Skipped > 0 {
		slog.Info("employee import skipped rows", "imported", result.Imported, "skipped", result.Skipped)
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func readUpload(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(io.LimitReader(file, maxImportBytes))
	}
	return io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
}

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.Departments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleJobPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Service.JobPositions(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "job_position_list_failed", "failed to list job positions", middleware.GetRequestID(r.Context()))
		return
	}
	if department := r.URL.Query().Get("departmentId"); department != "" {
		filtered := positions[:0]
		for _, pos := range positions {
			if pos.DepartmentID == department {
				filtered = append(filtered, pos)
			}
		}
		positions = filtered
	}
	api.Success(w, positions, middleware.GetRequestID(r.Context()))
}
