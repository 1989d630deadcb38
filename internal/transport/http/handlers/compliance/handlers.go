package compliancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/compliance"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *compliance.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *compliance.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/compliance", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermComplianceRead, h.Perms)).Get("/documents", h.handleListDocuments)
		r.With(middleware.RequirePermission(auth.PermComplianceManage, h.Perms)).Post("/documents", h.handleUpload)
		r.With(middleware.RequirePermission(auth.PermComplianceManage, h.Perms)).Get("/documents/status", h.handleStatusAll)
		r.With(middleware.RequirePermission(auth.PermComplianceManage, h.Perms)).Delete("/documents/{documentID}", h.handleDelete)
		r.With(middleware.RequirePermission(auth.PermComplianceManage, h.Perms)).Get("/documents/{documentID}/status", h.handleStatus)
		r.With(middleware.RequirePermission(auth.PermComplianceSign, h.Perms)).Post("/documents/{documentID}/sign", h.handleSign)
		r.With(middleware.RequirePermission(auth.PermComplianceRead, h.Perms)).Get("/acknowledgements", h.handleMine)
	})
}

type uploadPayload struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Version     float64 `json:"version"`
	AssignedTo  string  `json:"assignedTo"`
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.Documents(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "compliance_documents_failed", "failed to list documents", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, docs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	var payload uploadPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "is required")
	v.Enum("category", payload.Category, compliance.Categories, "unknown document category")
	if payload.Version < 0 {
		v.Add("version", "must not be negative")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	category := payload.Category
	for _, candidate := range compliance.Categories {
		if strings.EqualFold(candidate, category) {
			category = candidate
		}
	}
	doc, err := h.Service.Upload(r.Context(), compliance.Document{
		Name:        payload.Name,
		Category:    category,
		Description: strings.TrimSpace(payload.Description),
		Version:     payload.Version,
		AssignedTo:  strings.TrimSpace(payload.AssignedTo),
	})
	if errors.Is(err, compliance.ErrUnknownAudience) {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{{Field: "assignedTo", Reason: err.Error()}})
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "compliance_upload_failed", "failed to upload document", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, doc, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteDocument(r.Context(), chi.URLParam(r, "documentID"))
	if errors.Is(err, compliance.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "compliance document not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "compliance_delete_failed", "failed to delete document", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStatusAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.Service.StatusAll(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "compliance_status_failed", "failed to load completion", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, all, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	completion, err := h.Service.Status(r.Context(), chi.URLParam(r, "documentID"))
	if errors.Is(err, compliance.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "compliance document not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "compliance_status_failed", "failed to load completion", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, completion, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	docs, err := h.Service.MyDocuments(r.Context(), user)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "compliance_acknowledgements_failed", "failed to list acknowledgements", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, docs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSign(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	ack, err := h.Service.Sign(r.Context(), user, chi.URLParam(r, "documentID"))
	switch {
	case errors.Is(err, compliance.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "compliance document not found", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, compliance.ErrNotAssigned):
		api.Fail(w, http.StatusForbidden, "forbidden", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, compliance.ErrAlreadySigned):
		api.Fail(w, http.StatusConflict, "invalid_state", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "compliance_sign_failed", "failed to sign document", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, ack, middleware.GetRequestID(r.Context()))
}
