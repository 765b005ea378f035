package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly/ems-backend-go/internal/fixtures"
	"github.com/staffly/ems-backend-go/internal/pkg/database"
	"github.com/staffly/ems-backend-go/internal/pkg/jwt"
	"github.com/staffly/ems-backend-go/internal/repository/sqlite"
	authService "github.com/staffly/ems-backend-go/internal/service/auth"
	dashboardService "github.com/staffly/ems-backend-go/internal/service/dashboard"
	reportService "github.com/staffly/ems-backend-go/internal/service/report"
	workforceService "github.com/staffly/ems-backend-go/internal/service/workforce"
)

func newTestRouter(t *testing.T, initStores bool) *chi.Mux {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "ems.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	snapshots := sqlite.NewSnapshotStore(db)
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	workforceSvc := workforceService.NewWorkforceService(sqlite.NewEmployeeRepository(snapshots))
	authSvc := authService.NewAuthService(
		sqlite.NewUserRepository(snapshots),
		sqlite.NewSessionRepository(snapshots),
		jwtService,
	)
	if initStores {
		require.NoError(t, workforceSvc.Init(context.Background()))
		require.NoError(t, authSvc.Init(context.Background()))
	}

	dashboardSvc := dashboardService.NewDashboardService(workforceSvc)
	reportSvc := reportService.NewReportService(workforceSvc)

	return NewRouter(
		jwtService,
		NewAuthHandler(authSvc),
		NewEmployeeHandler(workforceSvc),
		NewMasterHandler(workforceSvc),
		NewDashboardHandler(dashboardSvc),
		NewReportHandler(reportSvc),
		"http://localhost:3000",
		"test",
		workforceSvc,
		authSvc,
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func login(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": fixtures.DemoPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	tokenData := data["token"].(map[string]interface{})
	token, _ := tokenData["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouter_Login(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@company.com",
		"password": fixtures.DemoPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	userData := data["user"].(map[string]interface{})
	assert.Equal(t, "admin", userData["role"])
	assert.NotContains(t, userData, "password_hash")
}

func TestRouter_Login_WrongPassword(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@company.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestRouter_Login_ValidationFailure(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_Signup_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name":     "Imposter",
		"email":    "admin@company.com",
		"password": "whatever",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "CONFLICT", errDetail["code"])
}

func TestRouter_Me(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "employee@company.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "employee@company.com", data["email"])
}

func TestRouter_Employees_RequiresAuth(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Employees_List(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "employee@company.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].([]interface{})
	assert.Len(t, data, 3)
}

func TestRouter_CreateEmployee_RoleGate(t *testing.T) {
	router := newTestRouter(t, true)

	payload := map[string]interface{}{
		"name":                "Sarah Connor",
		"email":               "sarah.connor@company.com",
		"position":            "Tech Lead",
		"department":          "Engineering",
		"experience_level":    "lead",
		"years_of_experience": 12,
		"salary":              120000,
		"join_date":           "2019-05-20",
		"skills":              []string{"Go"},
	}

	// A plain employee cannot write to the directory.
	employeeToken := login(t, router, "employee@company.com")
	rec := doJSON(t, router, http.MethodPost, "/api/v1/employees", employeeToken, payload)
	require.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeBody(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "You don't have permission to access this page.", errDetail["message"])

	// A manager can.
	managerToken := login(t, router, "manager@company.com")
	rec = doJSON(t, router, http.MethodPost, "/api/v1/employees", managerToken, payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/employees", managerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]interface{}), 4)
}

func TestRouter_UpdateEmployee_UnknownID(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "admin@company.com")

	rec := doJSON(t, router, http.MethodPut, "/api/v1/employees/does-not-exist", token,
		map[string]string{"name": "Nobody"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_GetEmployee_NotFound(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "employee@company.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/does-not-exist", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_EmployeesByLevel(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "employee@company.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/level/junior", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]interface{}), 1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/employees/level/wizard", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Masters(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "employee@company.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/departments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]interface{}), 5)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/experience-levels", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]interface{}), 4)
}

func TestRouter_Dashboard(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "employee@company.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_employees"])
}

func TestRouter_Reports_ManagementOnly(t *testing.T) {
	router := newTestRouter(t, true)

	employeeToken := login(t, router, "employee@company.com")
	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	managerToken := login(t, router, "manager@company.com")
	rec = doJSON(t, router, http.MethodGet, "/api/v1/reports", managerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ReportsExport(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "admin@company.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "employee-report-")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.NotZero(t, rec.Body.Len())
}

func TestRouter_Logout_RevokesToken(t *testing.T) {
	router := newTestRouter(t, true)
	token := login(t, router, "admin@company.com")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_StoreNotReady(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@company.com",
		"password": fixtures.DemoPassword,
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decodeBody(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "SERVICE_UNAVAILABLE", fmt.Sprint(errDetail["code"]))
}

func TestRouter_Heartbeat(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
