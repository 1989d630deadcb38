package leavehandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *leave.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/", h.handleHistory)
		r.With(middleware.RequirePermission(auth.PermLeaveRequest, h.Perms)).Post("/", h.handleSubmit)
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/types", h.handleListTypes)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Get("/team", h.handleTeam)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Post("/{requestID}/approve", h.handleApprove)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Post("/{requestID}/reject", h.handleReject)
	})
}

var statuses = []string{leave.StatusPending, leave.StatusApproved, leave.StatusRejected}

type submitPayload struct {
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, leave.Types, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	requests, err := h.Service.History(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leave requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Enum("type", payload.Type, leave.Types, "unknown leave type")
	start, _ := v.Date("startDate", payload.StartDate)
	end, _ := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	req, err := h.Service.Submit(r.Context(), leave.Submission{
		EmployeeID: user.UserID,
		Type:       canonical(payload.Type, leave.Types),
		StartDate:  start,
		EndDate:    end,
		Reason:     payload.Reason,
	})
	if errors.Is(err, leave.ErrInvalidRange) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_create_failed", "failed to submit leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, req, middleware.GetRequestID(r.Context()))
}

// canonical maps a case-insensitive match back to the stored spelling.
func canonical(raw string, allowed []string) string {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, strings.TrimSpace(raw)) {
			return candidate
		}
	}
	return raw
}

func (h *Handler) handleTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	status := r.URL.Query().Get("status")
	v := shared.NewValidator()
	v.Enum("status", status, statuses, "unknown status")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	requests, err := h.Service.Team(r.Context(), user, canonical(status, statuses))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_team_failed", "failed to list team requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Reject)
}

type decision func(ctx context.Context, user auth.UserContext, requestID string) (leave.Request, error)

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, decide decision) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	req, err := decide(r.Context(), user, chi.URLParam(r, "requestID"))
	switch {
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, leave.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, leave.ErrInvalidState):
		api.Fail(w, http.StatusConflict, "invalid_state", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "leave_decision_failed", "failed to decide leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}
