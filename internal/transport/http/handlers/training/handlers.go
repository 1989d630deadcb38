package traininghandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/training"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *training.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *training.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/training", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermTrainingRead, h.Perms)).Get("/programs", h.handlePrograms)
		r.With(middleware.RequirePermission(auth.PermTrainingRead, h.Perms)).Get("/enrollments", h.handleEnrollments)
		r.With(middleware.RequirePermission(auth.PermTrainingManage, h.Perms)).Get("/requests", h.handlePendingRequests)
		r.With(middleware.RequirePermission(auth.PermTrainingRequest, h.Perms)).Post("/requests", h.handleRequest)
		r.With(middleware.RequirePermission(auth.PermTrainingManage, h.Perms)).Post("/assignments", h.handleAssign)
		r.Route("/enrollments/{employeeID}/{programID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermTrainingManage, h.Perms)).Post("/approve", h.handleApprove)
			r.With(middleware.RequirePermission(auth.PermTrainingManage, h.Perms)).Post("/deny", h.handleDeny)
			r.With(middleware.RequirePermission(auth.PermTrainingManage, h.Perms)).Post("/advance", h.handleAdvance)
			r.With(middleware.RequirePermission(auth.PermTrainingManage, h.Perms)).Put("/progress", h.handleProgress)
			r.With(middleware.RequirePermission(auth.PermTrainingManage, h.Perms)).Delete("/", h.handleUnassign)
		})
	})
}

type enrollmentPayload struct {
	EmployeeID string `json:"employeeId"`
	ProgramID  string `json:"programId"`
}

func (h *Handler) handlePrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.Service.Programs(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "training_programs_failed", "failed to list programs", middleware.GetRequestID(r.Context()))
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filtered := programs[:0]
		for _, program := range programs {
			if strings.EqualFold(program.Category, category) {
				filtered = append(filtered, program)
			}
		}
		programs = filtered
	}
	api.Success(w, programs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEnrollments(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	enrollments, err := h.Service.Enrollments(r.Context(), user, r.URL.Query().Get("employeeId"))
	if err != nil {
		h.fail(w, r, err, "training_enrollments_failed", "failed to list enrollments")
		return
	}
	api.Success(w, enrollments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePendingRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	pending, err := h.Service.PendingRequests(r.Context(), user)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "training_requests_failed", "failed to list training requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, pending, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload enrollmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("programId", payload.ProgramID, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	enrollment, err := h.Service.Request(r.Context(), user, payload.ProgramID)
	if err != nil {
		h.fail(w, r, err, "training_request_failed", "failed to request training")
		return
	}
	api.Created(w, enrollment, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload enrollmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("programId", payload.ProgramID, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	enrollment, err := h.Service.Assign(r.Context(), user, payload.EmployeeID, payload.ProgramID)
	if err != nil {
		h.fail(w, r, err, "training_assign_failed", "failed to assign training")
		return
	}
	api.Created(w, enrollment, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	enrollment, err := h.Service.Approve(r.Context(), user, chi.URLParam(r, "employeeID"), chi.URLParam(r, "programID"))
	if err != nil {
		h.fail(w, r, err, "training_approve_failed", "failed to approve training")
		return
	}
	api.Success(w, enrollment, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeny(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.Deny(r.Context(), user, chi.URLParam(r, "employeeID"), chi.URLParam(r, "programID")); err != nil {
		h.fail(w, r, err, "training_deny_failed", "failed to deny training")
		return
	}
	api.Success(w, map[string]string{"status": "denied"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAdvance(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	enrollment, err := h.Service.Advance(r.Context(), user, chi.URLParam(r, "employeeID"), chi.URLParam(r, "programID"))
	if err != nil {
		h.fail(w, r, err, "training_advance_failed", "failed to advance training")
		return
	}
	api.Success(w, enrollment, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload struct {
		Progress *int `json:"progress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	if payload.Progress == nil {
		v.Add("progress", "is required")
	} else if *payload.Progress < 0 || *payload.Progress > 100 {
		v.Add("progress", "must be between 0 and 100")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	enrollment, err := h.Service.UpdateProgress(r.Context(), user, chi.URLParam(r, "employeeID"), chi.URLParam(r, "programID"), *payload.Progress)
	if err != nil {
		h.fail(w, r, err, "training_progress_failed", "failed to update progress")
		return
	}
	api.Success(w, enrollment, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnassign(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.Unassign(r.Context(), user, chi.URLParam(r, "employeeID"), chi.URLParam(r, "programID")); err != nil {
		h.fail(w, r, err, "training_unassign_failed", "failed to remove enrollment")
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	switch {
	case errors.Is(err, training.ErrProgramNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "training program not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, training.ErrEnrollmentNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "training enrollment not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, training.ErrAlreadyEnrolled):
		api.Fail(w, http.StatusConflict, "already_enrolled", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, training.ErrInvalidState):
		api.Fail(w, http.StatusConflict, "invalid_state", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, training.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
	}
}
