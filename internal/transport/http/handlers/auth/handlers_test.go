package authhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/transport/http/middleware"
)

type memUsers []auth.User

func (m memUsers) Users(context.Context) ([]auth.User, error) {
	return append([]auth.User(nil), m...), nil
}

func (m *memUsers) UpdateUsers(_ context.Context, fn func([]auth.User) ([]auth.User, error)) error {
	next, err := fn(append([]auth.User(nil), *m...))
	if err != nil {
		return err
	}
	*m = next
	return nil
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	users := &memUsers{{ID: "H3001", Name: "Uwase Grace", Email: "grace@pts.rw", Role: auth.RoleHRAdmin, PasswordHash: hash}}
	return NewHandler(auth.NewService(users, "test-secret", time.Hour), &auth.PermissionTable{})
}

func TestHandleLogin(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "valid credentials", body: `{"email":"grace@pts.rw","password":"password123"}`, status: http.StatusOK},
		{name: "wrong password", body: `{"email":"grace@pts.rw","password":"nope"}`, status: http.StatusUnauthorized},
		{name: "missing fields", body: `{"email":""}`, status: http.StatusBadRequest},
		{name: "malformed", body: `{`, status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(tc.body)))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestLoginResponseOmitsPasswordHash(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"email":"grace@pts.rw","password":"password123"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Token string         `json:"token"`
			User  map[string]any `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data.Token)
	assert.NotContains(t, body.Data.User, "passwordHash")

	claims, err := auth.ParseToken("test-secret", body.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleHRAdmin, claims.RoleName)
}

func TestHandleMe(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleMe(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ctx := middleware.WithUser(context.Background(), auth.UserContext{UserID: "H3001", RoleName: auth.RoleHRAdmin})
	rec = httptest.NewRecorder()
	h.HandleMe(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil).WithContext(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data meResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "H3001", body.Data.ID)
	assert.Contains(t, body.Data.Permissions, auth.PermPayrollRun)
}

func TestHandleUpdateProfile(t *testing.T) {
	h := newTestHandler(t)
	ctx := middleware.WithUser(context.Background(), auth.UserContext{UserID: "H3001", RoleName: auth.RoleHRAdmin})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "mismatched passwords", body: `{"name":"Grace U.","password":"new-secret-1","confirmPassword":"other-secret"}`, status: http.StatusBadRequest},
		{name: "short password", body: `{"name":"Grace U.","password":"short","confirmPassword":"short"}`, status: http.StatusBadRequest},
		{name: "missing name", body: `{"name":" "}`, status: http.StatusBadRequest},
		{name: "rename and new password", body: `{"name":"Grace U.","password":"new-secret-1","confirmPassword":"new-secret-1"}`, status: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleUpdateProfile(rec, httptest.NewRequest(http.MethodPut, "/api/v1/me", bytes.NewBufferString(tc.body)).WithContext(ctx))
			assert.Equal(t, tc.status, rec.Code)
		})
	}

	rec := httptest.NewRecorder()
	h.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"email":"grace@pts.rw","password":"new-secret-1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			User auth.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Grace U.", body.Data.User.Name)
}
