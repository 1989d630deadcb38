package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *auth.Service
	Table   *auth.PermissionTable
}

func NewHandler(service *auth.Service, table *auth.PermissionTable) *Handler {
	return &Handler{Service: service, Table: table}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      auth.User `json:"user"`
}

type profileRequest struct {
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type meResponse struct {
	auth.User
	Permissions []string `json:"permissions"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Get("/me", h.HandleMe)
	r.Put("/me", h.HandleUpdateProfile)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.Email = strings.TrimSpace(payload.Email)

	v := shared.NewValidator()
	v.Required("email", payload.Email, "is required")
	v.Required("password", payload.Password, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	token, user, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, loginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.Service.TokenTTL()).UTC(),
		User:      user.Public(),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	stored, found, err := h.Service.FindUser(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "user_lookup_failed", "failed to load user", middleware.GetRequestID(r.Context()))
		return
	}
	if !found {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	perms, err := h.Table.Permissions(r.Context(), stored.Role)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "permission_error", "failed to load permissions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, meResponse{User: stored.Public(), Permissions: perms}, middleware.GetRequestID(r.Context()))
}

// HandleUpdateProfile renames the caller and optionally changes their
// password, answering with a fresh token.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload profileRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)

	v := shared.NewValidator()
	v.Required("name", payload.Name, "is required")
	if payload.Password != payload.ConfirmPassword {
		v.Add("confirmPassword", "passwords do not match")
	}
	if payload.Password != "" && len(payload.Password) < auth.MinPasswordLength {
		v.Add("password", "must be at least 8 characters")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	token, updated, err := h.Service.UpdateProfile(r.Context(), user.UserID, payload.Name, payload.Password)
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, auth.ErrInvalidProfile), errors.Is(err, auth.ErrWeakPassword):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "profile_update_failed", "failed to update profile", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, loginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.Service.TokenTTL()).UTC(),
		User:      updated,
	}, middleware.GetRequestID(r.Context()))
}
