package assistanthandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/assistant"
	"hrconsole/internal/domain/auth"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
)

// CallRecorder counts generator calls and their failures.
type CallRecorder interface {
	RecordAssistant(err error)
}

type Handler struct {
	Service *assistant.Service
	Perms   middleware.PermissionStore
	Metrics CallRecorder
}

func NewHandler(service *assistant.Service, perms middleware.PermissionStore, metrics CallRecorder) *Handler {
	return &Handler{Service: service, Perms: perms, Metrics: metrics}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assistant", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermAssistantUse, h.Perms))
		r.Use(h.requireAvailable)
		r.Post("/interview-questions", h.handleInterviewQuestions)
		r.Post("/job-description", h.handleJobDescription)
		r.Post("/onboarding-checklist", h.handleChecklist)
		r.Post("/workforce-insights", h.handleWorkforceInsights)
		r.Post("/talent-match", h.handleTalentMatch)
	})
}

type assistantPayload struct {
	JobTitle       string   `json:"jobTitle"`
	Keywords       []string `json:"keywords"`
	Kind           string   `json:"type"`
	RequiredSkills []string `json:"requiredSkills"`
}

func (h *Handler) requireAvailable(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Service.Available() {
			api.Fail(w, http.StatusServiceUnavailable, "assistant_unavailable", "the assistant is not configured", middleware.GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func decode(w http.ResponseWriter, r *http.Request, out *assistantPayload) bool {
	if r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

func (h *Handler) handleInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	var payload assistantPayload
	if !decode(w, r, &payload) {
		return
	}
	questions, err := h.Service.InterviewQuestions(r.Context(), payload.JobTitle)
	h.respond(w, r, map[string]any{"questions": questions}, err)
}

func (h *Handler) handleJobDescription(w http.ResponseWriter, r *http.Request) {
	var payload assistantPayload
	if !decode(w, r, &payload) {
		return
	}
	description, err := h.Service.JobDescription(r.Context(), payload.JobTitle, payload.Keywords)
	h.respond(w, r, description, err)
}

func (h *Handler) handleChecklist(w http.ResponseWriter, r *http.Request) {
	var payload assistantPayload
	if !decode(w, r, &payload) {
		return
	}
	checklist, err := h.Service.Checklist(r.Context(), payload.JobTitle, payload.Kind)
	h.respond(w, r, map[string]any{"checklist": checklist}, err)
}

func (h *Handler) handleWorkforceInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.Service.WorkforceInsights(r.Context())
	h.respond(w, r, map[string]any{"insights": insights}, err)
}

func (h *Handler) handleTalentMatch(w http.ResponseWriter, r *http.Request) {
	var payload assistantPayload
	if !decode(w, r, &payload) {
		return
	}
	analysis, err := h.Service.TalentMatch(r.Context(), payload.RequiredSkills)
	h.respond(w, r, analysis, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any, err error) {
	if !errors.Is(err, assistant.ErrInvalidInput) && h.Metrics != nil {
		h.Metrics.RecordAssistant(err)
	}
	switch {
	case err == nil:
		api.Success(w, data, middleware.GetRequestID(r.Context()))
	case errors.Is(err, assistant.ErrInvalidInput):
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, assistant.ErrUnavailable):
		api.Fail(w, http.StatusServiceUnavailable, "assistant_unavailable", "the assistant is not configured", middleware.GetRequestID(r.Context()))
	case errors.Is(err, assistant.ErrInvalidResponse):
		slog.Warn("assistant returned unusable output", "path", r.URL.Path, "err", err)
		api.Fail(w, http.StatusBadGateway, "assistant_failed", "the assistant returned an unusable answer", middleware.GetRequestID(r.Context()))
	default:
		slog.Warn("assistant call failed", "path", r.URL.Path, "err", err)
		api.Fail(w, http.StatusBadGateway, "assistant_failed", "the assistant could not answer", middleware.GetRequestID(r.Context()))
	}
}
