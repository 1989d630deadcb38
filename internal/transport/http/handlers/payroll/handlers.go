package payrollhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RunRecorder counts payslips created by payroll runs.
type RunRecorder interface {
	RecordPayslips(created int)
}

type Handler struct {
	Service     *payroll.Service
	Perms       middleware.PermissionStore
	Idempotency *middleware.IdempotencyStore
	Metrics     RunRecorder
}

func NewHandler(service *payroll.Service, perms middleware.PermissionStore, idem *middleware.IdempotencyStore, metrics RunRecorder) *Handler {
	return &Handler{Service: service, Perms: perms, Idempotency: idem, Metrics: metrics}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPayrollManage, h.Perms)).Get("/allowances", h.handleListAllowances)
		r.With(middleware.RequirePermission(auth.PermPayrollManage, h.Perms)).Post("/allowances", h.handleCreateAllowance)
		r.With(middleware.RequirePermission(auth.PermPayrollManage, h.Perms)).Put("/allowances/{allowanceID}", h.handleUpdateAllowance)
		r.With(middleware.RequirePermission(auth.PermPayrollManage, h.Perms)).Delete("/allowances/{allowanceID}", h.handleDeleteAllowance)
		r.With(middleware.RequirePermission(auth.PermPayrollManage, h.Perms)).Post("/preview", h.handlePreview)
		r.With(
			middleware.RequirePermission(auth.PermPayrollRun, h.Perms),
			middleware.Idempotent(h.Idempotency),
		).Post("/runs", h.handleRun)
		r.With(middleware.RequirePermission(auth.PermPayrollRead, h.Perms)).Get("/payslips", h.handleListPayslips)
		r.With(middleware.RequirePermission(auth.PermPayrollRead, h.Perms)).Get("/payslips/{payslipID}", h.handleGetPayslip)
		r.With(middleware.RequirePermission(auth.PermPayrollRead, h.Perms)).Get("/payslips/{payslipID}/pdf", h.handlePayslipPDF)
		r.With(middleware.RequirePermission(auth.PermPayrollManage, h.Perms)).Get("/register", h.handleRegister)
	})
}

type allowancePayload struct {
	EmployeeID    string  `json:"employeeId"`
	Amount        float64 `json:"allowanceAmount"`
	EffectiveDate string  `json:"effectiveDate"`
	Status        string  `json:"status"`
}

func (p allowancePayload) validate(v *shared.Validator) payroll.Allowance {
	v.Required("employeeId", p.EmployeeID, "is required")
	if p.Amount <= 0 {
		v.Add("allowanceAmount", "must be greater than zero")
	}
	v.Enum("status", p.Status, payroll.AllowanceStatuses, "must be Active or Inactive")
	effective, _ := v.Date("effectiveDate", p.EffectiveDate)

	status := p.Status
	for _, candidate := range payroll.AllowanceStatuses {
		if strings.EqualFold(candidate, status) {
			status = candidate
		}
	}
	return payroll.Allowance{
		EmployeeID:    strings.TrimSpace(p.EmployeeID),
		Amount:        p.Amount,
		EffectiveDate: effective,
		Status:        status,
	}
}

type periodPayload struct {
	EmployeeID string `json:"employeeId"`
	PayPeriod  string `json:"payPeriod"`
}

func (h *Handler) handleListAllowances(w http.ResponseWriter, r *http.Request) {
	allowances, err := h.Service.ListAllowances(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "allowance_list_failed", "failed to list allowances", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, allowances, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateAllowance(w http.ResponseWriter, r *http.Request) {
	var payload allowancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	allowance := payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.CreateAllowance(r.Context(), allowance)
	if err != nil {
		h.fail(w, r, err, "allowance_create_failed", "failed to create allowance")
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateAllowance(w http.ResponseWriter, r *http.Request) {
	var payload allowancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	allowance := payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	updated, err := h.Service.UpdateAllowance(r.Context(), chi.URLParam(r, "allowanceID"), allowance)
	if err != nil {
		h.fail(w, r, err, "allowance_update_failed", "failed to update allowance")
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteAllowance(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAllowance(r.Context(), chi.URLParam(r, "allowanceID")); err != nil {
		h.fail(w, r, err, "allowance_delete_failed", "failed to delete allowance")
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var payload periodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("payPeriod", payload.PayPeriod, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	slip, err := h.Service.Preview(r.Context(), payload.EmployeeID, payload.PayPeriod)
	if err != nil {
		h.fail(w, r, err, "payroll_preview_failed", "failed to preview payslip")
		return
	}
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	var payload periodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("payPeriod", payload.PayPeriod, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.Run(r.Context(), payload.PayPeriod)
	if err != nil {
		h.fail(w, r, err, "payroll_run_failed", "failed to run payroll")
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordPayslips(result.Created)
	}
	api.Created(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPayslips(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	slips, err := h.Service.Payslips(r.Context(), user, r.URL.Query().Get("employeeId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_list_failed", "failed to list payslips", middleware.GetRequestID(r.Context()))
		return
	}
	if period := r.URL.Query().Get("payPeriod"); period != "" {
		normalized, err := payroll.ParsePayPeriod(period)
		if err != nil {
			shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{{Field: "payPeriod", Reason: err.Error()}})
			return
		}
		filtered := slips[:0]
		for _, slip := range slips {
			if slip.PayPeriod == normalized {
				filtered = append(filtered, slip)
			}
		}
		slips = filtered
	}
	api.Success(w, slips, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetPayslip(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	slip, err := h.Service.Payslip(r.Context(), user, chi.URLParam(r, "payslipID"))
	if err != nil {
		h.fail(w, r, err, "payslip_get_failed", "failed to load payslip")
		return
	}
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	payslipID := chi.URLParam(r, "payslipID")
	pdf, err := h.Service.PayslipPDF(r.Context(), user, payslipID)
	if err != nil {
		h.fail(w, r, err, "payslip_pdf_failed", "failed to render payslip")
		return
	}
	api.Attachment(w, "application/pdf", fmt.Sprintf("payslip-%s.pdf", payslipID), pdf)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	payPeriod := r.URL.Query().Get("payPeriod")
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = payroll.FormatCSV
	}
	v := shared.NewValidator()
	v.Required("payPeriod", payPeriod, "is required")
	v.Enum("format", format, []string{payroll.FormatCSV, payroll.FormatXLSX}, "must be csv or xlsx")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	rows, err := h.Service.Register(r.Context(), payPeriod)
	if err != nil {
		h.fail(w, r, err, "payroll_register_failed", "failed to build register")
		return
	}

	normalized, _ := payroll.ParsePayPeriod(payPeriod)
	var buf bytes.Buffer
	if err := payroll.WriteRegister(&buf, normalized, rows, format); err != nil {
		h.fail(w, r, err, "payroll_register_failed", "failed to build register")
		return
	}

	filename := "payroll-register-" + strings.ReplaceAll(strings.ToLower(normalized), " ", "-") + "." + format
	contentType := "text/csv"
	if format == payroll.FormatXLSX {
		contentType = xlsxContentType
	}
	api.Attachment(w, contentType, filename, buf.Bytes())
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	switch {
	case errors.Is(err, payroll.ErrInvalidPayPeriod):
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{{Field: "payPeriod", Reason: err.Error()}})
	case errors.Is(err, payroll.ErrUnknownFormat):
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, payroll.ErrAllowanceNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "allowance not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, payroll.ErrPayslipNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, payroll.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
	}
}
