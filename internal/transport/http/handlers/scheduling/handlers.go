package schedulinghandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/reports"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service  *scheduling.Service
	Perms    middleware.PermissionStore
	Location *time.Location
}

func NewHandler(service *scheduling.Service, perms middleware.PermissionStore, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{Service: service, Perms: perms, Location: loc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shifts", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermShiftsRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermShiftsWrite, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermShiftsWrite, h.Perms)).Post("/check", h.handleCheck)
		r.With(middleware.RequirePermission(auth.PermShiftsWrite, h.Perms)).Put("/{shiftID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermShiftsWrite, h.Perms)).Delete("/{shiftID}", h.handleDelete)
	})
}

type shiftPayload struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes"`
}

func (p shiftPayload) shift() scheduling.Shift {
	return scheduling.Shift{
		ID:         p.ID,
		EmployeeID: strings.TrimSpace(p.EmployeeID),
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		Title:      strings.TrimSpace(p.Title),
		Notes:      strings.TrimSpace(p.Notes),
	}
}

func (p shiftPayload) validate(v *shared.Validator) {
	v.Required("employeeId", p.EmployeeID, "is required")
	v.Required("title", p.Title, "is required")
	if p.StartTime.IsZero() {
		v.Add("startTime", "is required")
	}
	if p.EndTime.IsZero() {
		v.Add("endTime", "is required")
	}
	if !p.StartTime.IsZero() && !p.EndTime.IsZero() && !p.EndTime.After(p.StartTime) {
		v.Add("endTime", "must be after startTime")
	}
}

// window reads ?week=YYYY-MM-DD (the Monday-based week containing that day)
// or explicit ?from= and ?to= bounds.
func (h *Handler) window(r *http.Request, v *shared.Validator) (time.Time, time.Time) {
	query := r.URL.Query()
	if raw := query.Get("week"); raw != "" {
		day, ok := v.Date("week", raw)
		if !ok {
			return time.Time{}, time.Time{}
		}
		anchor := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, h.Location)
		return reports.WeekWindow(anchor, h.Location)
	}
	var from, to time.Time
	if raw := query.Get("from"); raw != "" {
		from, _ = v.Date("from", raw)
	}
	if raw := query.Get("to"); raw != "" {
		to, _ = v.Date("to", raw)
	}
	v.DateOrder("from", from, "to", to)
	return from, to
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	from, to := h.window(r, v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	shifts, err := h.Service.List(r.Context(), user, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shift_list_failed", "failed to list shifts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, shifts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload shiftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	conflict, err := h.Service.Check(r.Context(), user, payload.shift())
	if err != nil {
		h.fail(w, r, err, "shift_check_failed", "failed to check shift")
		return
	}
	api.Success(w, map[string]any{"conflict": conflict}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload shiftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.Create(r.Context(), user, payload.shift())
	if err != nil {
		h.fail(w, r, err, "shift_create_failed", "failed to create shift")
		return
	}
	api.Created(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload shiftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.Update(r.Context(), user, chi.URLParam(r, "shiftID"), payload.shift())
	if err != nil {
		h.fail(w, r, err, "shift_update_failed", "failed to update shift")
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.Delete(r.Context(), user, chi.URLParam(r, "shiftID")); err != nil {
		h.fail(w, r, err, "shift_delete_failed", "failed to delete shift")
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "shift not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, scheduling.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, scheduling.ErrInvalidRange):
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
	}
}
