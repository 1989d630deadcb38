package performancehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/performance"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *performance.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *performance.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Get("/competencies", h.handleCompetencies)
		r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Get("/summary", h.handleSummary)
		r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Get("/employees/{employeeID}", h.handleProfile)
		r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Get("/employees/{employeeID}/pdf", h.handleProfilePDF)
		r.With(middleware.RequirePermission(auth.PermPerformanceManage, h.Perms)).Post("/goals", h.handleCreateGoal)
		r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Put("/goals/{goalID}", h.handleUpdateGoal)
		r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Post("/feedback", h.handleFeedback)
		r.With(middleware.RequirePermission(auth.PermPerformanceManage, h.Perms)).Post("/reviews", h.handleSubmitReview)
		r.With(middleware.RequirePermission(auth.PermPerformanceManage, h.Perms)).Post("/pips", h.handleOpenPIP)
		r.With(middleware.RequirePermission(auth.PermPerformanceManage, h.Perms)).Post("/pips/{pipID}/close", h.handleClosePIP)
	})
}

func (h *Handler) handleCompetencies(w http.ResponseWriter, r *http.Request) {
	api.Success(w, performance.Competencies, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	summary, err := h.Service.Summary(r.Context(), user)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "performance_summary_failed", "failed to summarise performance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	profile, err := h.Service.Profile(r.Context(), user, chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err, "performance_profile_failed", "failed to load performance profile")
		return
	}
	api.Success(w, profile, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProfilePDF(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	employeeID := chi.URLParam(r, "employeeID")
	pdf, err := h.Service.SummaryPDF(r.Context(), user, employeeID)
	if err != nil {
		h.fail(w, r, err, "performance_pdf_failed", "failed to render performance summary")
		return
	}
	api.Attachment(w, "application/pdf", fmt.Sprintf("performance-%s.pdf", employeeID), pdf)
}

type goalPayload struct {
	EmployeeID  string `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    *int   `json:"progress"`
	Status      string `json:"status"`
}

func (h *Handler) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload goalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("title", payload.Title, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	goal, err := h.Service.CreateGoal(r.Context(), user, payload.EmployeeID, payload.Title, payload.Description)
	if err != nil {
		h.fail(w, r, err, "goal_create_failed", "failed to create goal")
		return
	}
	api.Created(w, goal, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload goalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	if payload.Progress == nil && payload.Status == "" {
		v.Add("progress", "progress or status is required")
	}
	v.Enum("status", payload.Status, performance.GoalStatuses, "must be one of On Track, At Risk, Completed")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	goal, err := h.Service.UpdateGoal(r.Context(), user, chi.URLParam(r, "goalID"), payload.Progress, canonical(payload.Status, performance.GoalStatuses))
	if err != nil {
		h.fail(w, r, err, "goal_update_failed", "failed to update goal")
		return
	}
	api.Success(w, goal, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleFeedback(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload struct {
		EmployeeID string `json:"employeeId"`
		Type       string `json:"type"`
		Comment    string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	kinds := []string{performance.FeedbackPraise, performance.FeedbackConstructive}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("type", payload.Type, "is required")
	v.Enum("type", payload.Type, kinds, "must be Praise or Constructive")
	v.Required("comment", payload.Comment, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	item, err := h.Service.GiveFeedback(r.Context(), user, payload.EmployeeID, canonical(payload.Type, kinds), payload.Comment)
	if err != nil {
		h.fail(w, r, err, "feedback_create_failed", "failed to record feedback")
		return
	}
	api.Created(w, item, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload struct {
		EmployeeID string         `json:"employeeId"`
		Cycle      string         `json:"cycle"`
		Ratings    map[string]int `json:"ratings"`
		Comments   string         `json:"comments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	if len(payload.Ratings) == 0 {
		v.Add("ratings", "is required")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	review, err := h.Service.SubmitReview(r.Context(), user, performance.ReviewSubmission{
		EmployeeID: payload.EmployeeID,
		Cycle:      payload.Cycle,
		Ratings:    payload.Ratings,
		Comments:   payload.Comments,
	})
	if err != nil {
		h.fail(w, r, err, "review_submit_failed", "failed to submit review")
		return
	}
	api.Created(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOpenPIP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload struct {
		EmployeeID string `json:"employeeId"`
		Title      string `json:"title"`
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("title", payload.Title, "is required")
	start, _ := v.Date("startDate", payload.StartDate)
	end, _ := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	plan, err := h.Service.OpenPIP(r.Context(), user, payload.EmployeeID, payload.Title, start, end)
	if err != nil {
		h.fail(w, r, err, "pip_create_failed", "failed to open improvement plan")
		return
	}
	api.Created(w, plan, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClosePIP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	plan, err := h.Service.ClosePIP(r.Context(), user, chi.URLParam(r, "pipID"))
	if err != nil {
		h.fail(w, r, err, "pip_close_failed", "failed to close improvement plan")
		return
	}
	api.Success(w, plan, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	switch {
	case errors.Is(err, performance.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, performance.ErrForbidden), errors.Is(err, performance.ErrSelfReview):
		api.Fail(w, http.StatusForbidden, "forbidden", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, performance.ErrInvalidState), errors.Is(err, performance.ErrActivePIP):
		api.Fail(w, http.StatusConflict, "invalid_state", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, performance.ErrInvalidInput):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
	}
}

func canonical(raw string, allowed []string) string {
	for _, candidate := range allowed {
		if strings.EqualFold(strings.TrimSpace(raw), candidate) {
			return candidate
		}
	}
	return raw
}
