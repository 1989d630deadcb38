package adminhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
)

// Handler serves the role-permission configuration of the system
// administration console.
type Handler struct {
	Table *auth.PermissionTable
}

func NewHandler(table *auth.PermissionTable) *Handler {
	return &Handler{Table: table}
}

type accessResponse struct {
	Roles       []auth.RoleAccess `json:"roles"`
	Permissions []string          `json:"permissions"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin/permissions", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermSystemAdmin, h.Table)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermSystemAdmin, h.Table)).Put("/{role}", h.handleGrant)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Table.Access(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "permission_list_failed", "failed to list permissions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, accessResponse{Roles: roles, Permissions: auth.GrantablePermissions()}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGrant(w http.ResponseWriter, r *http.Request) {
	role, err := url.PathUnescape(chi.URLParam(r, "role"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_role", "invalid role", middleware.GetRequestID(r.Context()))
		return
	}
	var payload struct {
		Permissions []string `json:"permissions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	access, err := h.Table.Grant(r.Context(), role, payload.Permissions)
	switch {
	case errors.Is(err, auth.ErrUnknownRole):
		api.Fail(w, http.StatusNotFound, "role_not_found", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, auth.ErrRoleLocked):
		api.Fail(w, http.StatusConflict, "role_locked", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, auth.ErrUnknownPermission):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "permission_update_failed", "failed to update permissions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, access, middleware.GetRequestID(r.Context()))
}
