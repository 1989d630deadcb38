package engagementhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/engagement"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

const (
	maxTitleLength   = 200
	maxContentLength = 10000
)

type Handler struct {
	Service *engagement.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *engagement.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermAnnouncementsRead, h.Perms)).Get("/announcements", h.handleAnnouncements)
	r.With(middleware.RequirePermission(auth.PermAnnouncementsWrite, h.Perms)).Post("/announcements", h.handlePost)

	r.Route("/benefits", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermBenefitsRead, h.Perms)).Get("/", h.handlePlans)
		r.With(middleware.RequirePermission(auth.PermBenefitsRead, h.Perms)).Get("/summary", h.handleSummary)
		r.With(middleware.RequirePermission(auth.PermBenefitsManage, h.Perms)).Get("/enrollments", h.handleEnrollments)
		r.With(middleware.RequirePermission(auth.PermBenefitsManage, h.Perms)).Post("/enrollments", h.handleEnroll)
		r.With(middleware.RequirePermission(auth.PermBenefitsManage, h.Perms)).Delete("/enrollments/{employeeID}/{planID}", h.handleUnenroll)
	})
}

func (h *Handler) handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.Announcements(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "announcement_list_failed", "failed to list announcements", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("title", payload.Title, "is required")
	v.Required("content", payload.Content, "is required")
	if len(payload.Title) > maxTitleLength {
		v.Add("title", "is too long")
	}
	if len(payload.Content) > maxContentLength {
		v.Add("content", "is too long")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	announcement, err := h.Service.Post(r.Context(), user, payload.Title, payload.Content)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "announcement_create_failed", "failed to post announcement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, announcement, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Service.Plans(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "benefit_plans_failed", "failed to list benefit plans", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, plans, middleware.GetRequestID(r.Context()))
}

// handleSummary shows the caller's own plans; benefit managers may ask for
// any employee.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	employeeID := user.UserID
	if requested := r.URL.Query().Get("employeeId"); requested != "" && requested != user.UserID {
		if !auth.Allowed(user.RoleName, auth.PermBenefitsManage) {
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", middleware.GetRequestID(r.Context()))
			return
		}
		employeeID = requested
	}

	summary, err := h.Service.Summary(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "benefit_summary_failed", "failed to load benefits", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.Service.Enrollments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "benefit_enrollments_failed", "failed to list enrollments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, enrollments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID string `json:"employeeId"`
		PlanID     string `json:"planId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("planId", payload.PlanID, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	enrollment, err := h.Service.Enroll(r.Context(), payload.EmployeeID, payload.PlanID)
	if err != nil {
		h.fail(w, r, err, "benefit_enroll_failed", "failed to enroll employee")
		return
	}
	api.Created(w, enrollment, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnenroll(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Unenroll(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "planID")); err != nil {
		h.fail(w, r, err, "benefit_unenroll_failed", "failed to remove enrollment")
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	switch {
	case errors.Is(err, engagement.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, engagement.ErrPlanNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "benefit plan not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, engagement.ErrNotEnrolled):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, engagement.ErrAlreadyEnrolled):
		api.Fail(w, http.StatusConflict, "already_enrolled", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
	}
}
