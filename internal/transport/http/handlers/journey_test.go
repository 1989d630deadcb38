package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrconsole/internal/app/server"
	"hrconsole/internal/platform/config"
)

const seedPassword = "password123"

const (
	employeeEmail = "aline.u@pts.rw"   // E1001
	managerEmail  = "patrick.i@pts.rw" // E1012, Aline's manager
	hrEmail       = "didier.m@pts.rw"  // H3001
	itEmail       = "chris.h@pts.rw"   // IT4001
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{
		Environment:        "test",
		JWTSecret:          "test-secret",
		TokenTTL:           time.Hour,
		SeedPassword:       seedPassword,
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 1000,
		Timezone:           "Africa/Kigali",
		EmailFrom:          "no-reply@test.local",
		MetricsEnabled:     true,
	}
	app, err := server.New(context.Background(), cfg, server.WithLogOutput(io.Discard))
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	t.Cleanup(app.Close)

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func TestLeaveApprovalJourney(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	employeeToken := login(t, client, ts.URL, employeeEmail)
	managerToken := login(t, client, ts.URL, managerEmail)

	start := time.Now().AddDate(0, 0, 30)
	status, resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leave", employeeToken, map[string]any{
		"type":      "Annual Leave",
		"startDate": start.Format(time.DateOnly),
		"endDate":   start.AddDate(0, 0, 2).Format(time.DateOnly),
		"reason":    "Family visit",
	}, nil)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 on leave submit, got %d", status)
	}
	var submitted map[string]any
	decode(t, resp.Data, &submitted)
	requestID, _ := submitted["id"].(string)
	if requestID == "" || submitted["status"] != "Pending" {
		t.Fatalf("unexpected submitted request: %v", submitted)
	}

	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leave/"+requestID+"/approve", employeeToken, nil, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected employee approval to be forbidden, got %d", status)
	}

	status, resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/leave/team?status=pending", managerToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on team list, got %d", status)
	}
	var team []map[string]any
	decode(t, resp.Data, &team)
	if !containsID(team, requestID) {
		t.Fatalf("expected request %s in the manager's team queue", requestID)
	}

	status, resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leave/"+requestID+"/approve", managerToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on approve, got %d", status)
	}
	var decided map[string]any
	decode(t, resp.Data, &decided)
	if decided["status"] != "Approved" {
		t.Fatalf("expected Approved, got %v", decided["status"])
	}

	status, resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leave/"+requestID+"/reject", managerToken, nil, nil)
	if status != http.StatusConflict {
		t.Fatalf("expected 409 deciding twice, got %d", status)
	}

	status, resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/notifications/unread-count", employeeToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on unread count, got %d", status)
	}
	var unread map[string]int
	decode(t, resp.Data, &unread)
	if unread["unread"] < 1 {
		t.Fatal("expected the employee to be notified of the decision")
	}
}

func TestPayrollRunJourney(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	hrToken := login(t, client, ts.URL, hrEmail)
	employeeToken := login(t, client, ts.URL, employeeEmail)

	body := map[string]any{"payPeriod": "January 2024"}
	headers := map[string]string{"Idempotency-Key": "run-january-2024"}

	status, _ := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/payroll/runs", employeeToken, body, headers)
	if status != http.StatusForbidden {
		t.Fatalf("expected employee payroll run to be forbidden, got %d", status)
	}

	status, resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/payroll/runs", hrToken, body, headers)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 on payroll run, got %d", status)
	}
	var run struct {
		Created int `json:"created"`
		Skipped int `json:"skipped"`
	}
	decode(t, resp.Data, &run)
	if run.Created == 0 {
		t.Fatal("expected payslips to be generated")
	}

	replayReq := newRequest(t, http.MethodPost, ts.URL+"/api/v1/payroll/runs", hrToken, body, headers)
	replay, err := client.Do(replayReq)
	if err != nil {
		t.Fatalf("replay request failed: %v", err)
	}
	_ = replay.Body.Close()
	if replay.Header.Get("Idempotent-Replay") != "true" {
		t.Fatal("expected the second run with the same key to be replayed")
	}

	status, resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/payroll/runs", hrToken, body, nil)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 on repeated run, got %d", status)
	}
	decode(t, resp.Data, &run)
	if run.Created != 0 || run.Skipped == 0 {
		t.Fatalf("expected a repeated run to skip existing payslips, got %+v", run)
	}

	status, resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/payroll/payslips", employeeToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on payslip list, got %d", status)
	}
	var slips []map[string]any
	decode(t, resp.Data, &slips)
	if len(slips) != 1 || slips[0]["employeeId"] != "E1001" {
		t.Fatalf("expected exactly the employee's own payslip, got %v", slips)
	}

	pdf := newRequest(t, http.MethodGet, ts.URL+"/api/v1/payroll/payslips/"+slips[0]["id"].(string)+"/pdf", employeeToken, nil, nil)
	pdfResp, err := client.Do(pdf)
	if err != nil {
		t.Fatalf("pdf request failed: %v", err)
	}
	defer pdfResp.Body.Close()
	if pdfResp.StatusCode != http.StatusOK || pdfResp.Header.Get("Content-Type") != "application/pdf" {
		t.Fatalf("expected a pdf payslip, got %d %s", pdfResp.StatusCode, pdfResp.Header.Get("Content-Type"))
	}
}

func TestRoleBoundaries(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	status, resp := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/employees", "", nil, nil)
	if status != http.StatusUnauthorized || resp.Error == nil || resp.Error.Code != "unauthorized" {
		t.Fatalf("expected 401 without a token, got %d", status)
	}

	itToken := login(t, client, ts.URL, itEmail)
	status, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/employees", itToken, nil, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected IT admin to be denied the directory, got %d", status)
	}
	status, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/jobs", itToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected IT admin to read job history, got %d", status)
	}

	employeeToken := login(t, client, ts.URL, employeeEmail)
	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/announcements", employeeToken, map[string]any{
		"title":   "Hello",
		"content": "Not allowed",
	}, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected employee announcement to be forbidden, got %d", status)
	}

	status, resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/dashboard", employeeToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on dashboard, got %d", status)
	}
	var dash map[string]any
	decode(t, resp.Data, &dash)
	if dash["employee"] == nil || dash["hr"] != nil {
		t.Fatalf("expected only the employee section, got %v", dash)
	}

	status, resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/assistant/interview-questions", login(t, client, ts.URL, hrEmail), map[string]any{
		"jobTitle": "Driver",
	}, nil)
	if status != http.StatusServiceUnavailable || resp.Error == nil || resp.Error.Code != "assistant_unavailable" {
		t.Fatalf("expected 503 from an unconfigured assistant, got %d", status)
	}
}

func TestPerformanceReviewJourney(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	managerToken := login(t, client, ts.URL, managerEmail)
	employeeToken := login(t, client, ts.URL, employeeEmail)

	ratings := map[string]int{
		"On-Time Performance": 5,
		"Safety & Compliance": 5,
		"Vehicle Care":        4,
		"Customer Service":    4,
	}
	status, _ := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/performance/reviews", employeeToken, map[string]any{
		"employeeId": "E1001",
		"ratings":    ratings,
	}, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected employee review submission to be forbidden, got %d", status)
	}

	status, resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/performance/reviews", managerToken, map[string]any{
		"employeeId": "E1001",
		"cycle":      "Q4 2023 Review",
		"ratings":    ratings,
		"comments":   "Strong quarter on the northern routes",
	}, nil)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 on review submission, got %d", status)
	}
	var review map[string]any
	decode(t, resp.Data, &review)
	if review["score"] != 4.5 {
		t.Fatalf("expected score 4.5, got %v", review["score"])
	}

	status, resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/performance/employees/E1001", employeeToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on own profile, got %d", status)
	}
	var profile struct {
		Goals   []map[string]any `json:"goals"`
		Reviews []map[string]any `json:"reviews"`
	}
	decode(t, resp.Data, &profile)
	if len(profile.Goals) == 0 || len(profile.Reviews) != 4 {
		t.Fatalf("unexpected profile: %d goals, %d reviews", len(profile.Goals), len(profile.Reviews))
	}

	status, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/performance/employees/E1002", employeeToken, nil, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected another employee's profile to be forbidden, got %d", status)
	}
}

func TestSystemAdministrationJourney(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	itToken := login(t, client, ts.URL, itEmail)
	employeeToken := login(t, client, ts.URL, employeeEmail)

	status, _ := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/admin/permissions", employeeToken, nil, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected employee to be kept out of role config, got %d", status)
	}

	status, _ = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/admin/permissions/Employee", itToken, map[string]any{
		"permissions": []string{"directory.org.read", "directory.employees.read"},
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 narrowing the employee role, got %d", status)
	}
	status, _ = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/admin/permissions/IT%20Admin", itToken, map[string]any{
		"permissions": []string{},
	}, nil)
	if status != http.StatusConflict {
		t.Fatalf("expected 409 editing a locked role, got %d", status)
	}

	start := time.Now().AddDate(0, 0, 30)
	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leave", employeeToken, map[string]any{
		"type":      "Annual Leave",
		"startDate": start.Format(time.DateOnly),
		"endDate":   start.Format(time.DateOnly),
		"reason":    "Errand",
	}, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected leave requests to be revoked, got %d", status)
	}

	status, resp := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/me", employeeToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on me, got %d", status)
	}
	var me struct {
		Permissions []string `json:"permissions"`
	}
	decode(t, resp.Data, &me)
	if len(me.Permissions) != 2 {
		t.Fatalf("expected the narrowed permissions, got %v", me.Permissions)
	}
}

func TestProfileAndSkillsJourney(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	employeeToken := login(t, client, ts.URL, employeeEmail)
	managerToken := login(t, client, ts.URL, managerEmail)

	status, resp := doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/me", employeeToken, map[string]any{
		"name":            "Aline U.",
		"password":        "fresh-pass-1",
		"confirmPassword": "fresh-pass-1",
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on profile update, got %d", status)
	}
	var updated struct {
		Token string `json:"token"`
		User  struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	decode(t, resp.Data, &updated)
	if updated.Token == "" || updated.User.Name != "Aline U." {
		t.Fatalf("unexpected profile update: %+v", updated)
	}
	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/auth/login", "", map[string]string{
		"email":    employeeEmail,
		"password": seedPassword,
	}, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected the old password to stop working, got %d", status)
	}

	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees/E1001/skills", employeeToken, map[string]string{"skillId": "s12"}, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected employees to be unable to edit skills, got %d", status)
	}
	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees/E1001/skills", managerToken, map[string]string{"skillId": "s12"}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 adding a skill, got %d", status)
	}

	status, resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/employees/E1001/skill-gap?role=TR2", managerToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on skill gap, got %d", status)
	}
	var gap struct {
		Matching []map[string]any `json:"matching"`
		Missing  []map[string]any `json:"missing"`
	}
	decode(t, resp.Data, &gap)
	if len(gap.Matching) != 4 || len(gap.Missing) != 0 {
		t.Fatalf("expected a complete cross-border profile, got %+v", gap)
	}

	status, _ = doJSON(t, client, http.MethodDelete, ts.URL+"/api/v1/employees/E1001/skills/s12", managerToken, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 removing a skill, got %d", status)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	status, resp := doJSON(t, ts.Client(), http.MethodPost, ts.URL+"/api/v1/auth/login", "", map[string]any{
		"email":    employeeEmail,
		"password": "wrong",
	}, nil)
	if status != http.StatusUnauthorized || resp.Error == nil || resp.Error.Code != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %d", status)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp, err := client.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 on %s, got %d", path, resp.StatusCode)
		}
	}
}

func login(t *testing.T, client *http.Client, baseURL, email string) string {
	t.Helper()
	status, resp := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": seedPassword,
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("login for %s failed with %d", email, status)
	}
	var payload map[string]any
	decode(t, resp.Data, &payload)
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatal("expected token")
	}
	return token
}

func newRequest(t *testing.T, method, url, token string, body any, headers map[string]string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body any, headers map[string]string) (int, envelope) {
	t.Helper()
	resp, err := client.Do(newRequest(t, method, url, token, body, headers))
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode %s %s response: %v", method, url, err)
	}
	return resp.StatusCode, env
}

func decode(t *testing.T, raw json.RawMessage, out any) {
	t.Helper()
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}

func containsID(items []map[string]any, id string) bool {
	for _, item := range items {
		if item["id"] == id {
			return true
		}
	}
	return false
}
