package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/reports"
	"hrconsole/internal/platform/jobs"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
	Jobs    *jobs.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *reports.Service, jobsSvc *jobs.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Jobs: jobsSvc, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/dashboard", h.handleDashboard)
	r.With(middleware.RequirePermission(auth.PermJobsRead, h.Perms)).Get("/jobs", h.handleJobs)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	dashboard, err := h.Service.Dashboard(r.Context(), user)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleJobs(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	runs := h.Jobs.Runs(r.URL.Query().Get("jobType"), page.Limit, page.Offset)
	api.Success(w, runs, middleware.GetRequestID(r.Context()))
}
