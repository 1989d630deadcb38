package directoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/directory"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

func (h *Handler) handleSkills(w http.ResponseWriter, r *http.Request) {
	api.Success(w, directory.SkillCatalog, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTargetRoles(w http.ResponseWriter, r *http.Request) {
	api.Success(w, directory.TargetRoles, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	gap, err := h.Service.SkillGap(r.Context(), user, chi.URLParam(r, "employeeID"), r.URL.Query().Get("role"))
	if err != nil {
		h.failSkill(w, r, err)
		return
	}
	api.Success(w, gap, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload struct {
		SkillID string `json:"skillId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("skillId", strings.TrimSpace(payload.SkillID), "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	emp, err := h.Service.AddSkill(r.Context(), user, chi.URLParam(r, "employeeID"), strings.TrimSpace(payload.SkillID))
	if err != nil {
		h.failSkill(w, r, err)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	emp, err := h.Service.RemoveSkill(r.Context(), user, chi.URLParam(r, "employeeID"), chi.URLParam(r, "skillID"))
	if err != nil {
		h.failSkill(w, r, err)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failSkill(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, directory.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, directory.ErrUnknownSkill), errors.Is(err, directory.ErrUnknownTargetRole):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "skill_update_failed", "failed to update skills", middleware.GetRequestID(r.Context()))
	}
}
