package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	authService "github.com/cmlabs-hris/hris-lite-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-lite-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-lite-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-lite-go/internal/service/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/service/master"
	notificationService "github.com/cmlabs-hris/hris-lite-go/internal/service/notification"
	organizationService "github.com/cmlabs-hris/hris-lite-go/internal/service/organization"
	overtimeService "github.com/cmlabs-hris/hris-lite-go/internal/service/overtime"
	recruitmentService "github.com/cmlabs-hris/hris-lite-go/internal/service/recruitment"
	reportService "github.com/cmlabs-hris/hris-lite-go/internal/service/report"
	scheduleService "github.com/cmlabs-hris/hris-lite-go/internal/service/schedule"
	timekeepingService "github.com/cmlabs-hris/hris-lite-go/internal/service/timekeeping"
	userService "github.com/cmlabs-hris/hris-lite-go/internal/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestAccessExp = "1h"
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAdmin     = "admin@hris.local"
	handlerTestPassword  = "password123"
)

type testApp struct {
	server *httptest.Server
	ids    *fixtures.SeededDataIDs
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	ids, err := fixtures.Seed(ctx, store, fixtures.Options{
		AdminEmail:    handlerTestAdmin,
		AdminPassword: handlerTestPassword,
		BcryptCost:    bcrypt.MinCost,
	})
	require.NoError(t, err)

	userRepo := memory.NewUserRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	departmentRepo := memory.NewDepartmentRepository(store)
	positionRepo := memory.NewPositionRepository(store)
	leaveRepo := memory.NewLeaveRepository(store)
	overtimeTypeRepo := memory.NewOvertimeTypeRepository(store)
	overtimeRepo := memory.NewOvertimeRepository(store)
	workReportRepo := memory.NewWorkReportRepository(store)
	workShiftRepo := memory.NewWorkShiftRepository(store)

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	hub := sse.NewHub()
	notifSvc := notificationService.NewNotificationService(memory.NewNotificationRepository(store), userRepo, hub, notificationService.Config{})
	t.Cleanup(func() {
		hub.Close()
		notifSvc.Stop()
	})

	requestMachine := workflow.NewMachine(workflow.RequestRules, true)
	reportMachine := workflow.NewMachine(workflow.ReportRules, true)

	employeeSvc := employeeService.NewEmployeeService(store, employeeRepo, memory.NewAssignmentRepository(store), departmentRepo, positionRepo)
	leaveSvc := leaveService.NewLeaveService(store, memory.NewLeaveTypeRepository(store), leaveRepo, employeeRepo, departmentRepo, requestMachine, notifSvc)
	overtimeSvc := overtimeService.NewOvertimeService(store, overtimeTypeRepo, overtimeRepo, employeeRepo, departmentRepo, requestMachine, notifSvc, overtimeService.Config{})

	router := NewRouter(RouterConfig{AllowedOrigins: []string{"*"}}, jwtService, Handlers{
		Auth:         NewAuthHandler(authService.NewAuthService(userRepo, jwtService)),
		User:         NewUserHandler(userService.NewUserService(userRepo, employeeRepo, bcrypt.MinCost)),
		Employee:     NewEmployeeHandler(employeeSvc),
		Organization: NewOrganizationHandler(organizationService.NewOrganizationService(store, memory.NewOrganizationRepository(store), departmentRepo, employeeRepo)),
		Master:       NewMasterHandler(master.NewMasterService(store, positionRepo), leaveSvc, overtimeSvc),
		Leave:        NewLeaveHandler(leaveSvc),
		Overtime:     NewOvertimeHandler(overtimeSvc),
		Report:       NewReportHandler(reportService.NewWorkReportService(store, workReportRepo, employeeRepo, employeeSvc, reportMachine, notifSvc)),
		Timekeeping: NewTimekeepingHandler(timekeepingService.NewTimekeepingService(
			store,
			memory.NewTimeEntryRepository(store),
			memory.NewDeviceRepository(store),
			memory.NewRawTimeDataRepository(store),
			employeeRepo,
			workShiftRepo,
			employeeSvc,
			notifSvc,
		)),
		Schedule:     NewScheduleHandler(scheduleService.NewScheduleService(store, workShiftRepo)),
		Recruitment:  NewRecruitmentHandler(recruitmentService.NewRecruitmentService(store, memory.NewJobOpeningRepository(store), memory.NewCandidateRepository(store), departmentRepo, positionRepo, notifSvc)),
		Dashboard:    NewDashboardHandler(dashboardService.NewDashboardService(employeeRepo, leaveRepo, overtimeRepo, overtimeTypeRepo, workReportRepo, employeeSvc)),
		Notification: NewNotificationHandler(notifSvc, jwtService),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testApp{server: server, ids: ids}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func (a *testApp) login(t *testing.T, email string) string {
	t.Helper()
	status, env := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": handlerTestPassword,
	})
	require.Equal(t, http.StatusOK, status)

	var token struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

type leaveBody struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	Status       string `json:"status"`
	NumberOfDays int    `json:"number_of_days"`
	ApprovedBy   string `json:"approved_by"`
}

func TestLeaveApprovalFlow(t *testing.T) {
	app := newTestApp(t)
	employeeToken := app.login(t, fixtures.EmployeeEmail)
	managerToken := app.login(t, fixtures.ManagerEmail)
	adminToken := app.login(t, handlerTestAdmin)

	// The employee_id in the body is ignored for employees
	status, env := app.do(t, http.MethodPost, "/api/v1/leaves", employeeToken, map[string]interface{}{
		"employee_id":   app.ids.EmployeeIDs["NV005"],
		"leave_type_id": app.ids.LeaveTypeIDs["ANNUAL"],
		"department_id": app.ids.DepartmentIDs["ENG"],
		"start_date":    "2024-07-08",
		"end_date":      "2024-07-10",
	})
	require.Equal(t, http.StatusCreated, status)

	var created leaveBody
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, app.ids.EmployeeIDs["NV003"], created.EmployeeID)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, 3, created.NumberOfDays)

	path := "/api/v1/leaves/" + created.ID

	status, _ = app.do(t, http.MethodPost, path+"/approve", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = app.do(t, http.MethodPost, path+"/approve", managerToken, nil)
	assert.Equal(t, http.StatusForbidden, status, "managers only approve at department level")

	status, _ = app.do(t, http.MethodPost, path+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, status, "final approval needs the department step first")

	status, env = app.do(t, http.MethodPost, path+"/department-approve", managerToken, nil)
	require.Equal(t, http.StatusOK, status)
	var step leaveBody
	require.NoError(t, json.Unmarshal(env.Data, &step))
	assert.Equal(t, "department_approved", step.Status)

	status, env = app.do(t, http.MethodPost, path+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &step))
	assert.Equal(t, "approved", step.Status)
	assert.Equal(t, app.ids.EmployeeIDs["NV001"], step.ApprovedBy)

	status, _ = app.do(t, http.MethodPost, path+"/reject", adminToken, map[string]string{"reason": "too late"})
	assert.Equal(t, http.StatusConflict, status)
}

func TestLeaveRejectRequiresReason(t *testing.T) {
	app := newTestApp(t)
	employeeToken := app.login(t, fixtures.EmployeeEmail)
	adminToken := app.login(t, handlerTestAdmin)

	status, env := app.do(t, http.MethodPost, "/api/v1/leaves", employeeToken, map[string]interface{}{
		"leave_type_id": app.ids.LeaveTypeIDs["SICK"],
		"department_id": app.ids.DepartmentIDs["ENG"],
		"start_date":    "2024-07-01",
		"end_date":      "2024-07-01",
	})
	require.Equal(t, http.StatusCreated, status)
	var created leaveBody
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, _ = app.do(t, http.MethodPost, "/api/v1/leaves/"+created.ID+"/reject", adminToken, map[string]string{"reason": " "})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = app.do(t, http.MethodPost, "/api/v1/leaves/"+created.ID+"/reject", adminToken, map[string]string{"reason": "Project deadline"})
	require.Equal(t, http.StatusOK, status)
	var rejected leaveBody
	require.NoError(t, json.Unmarshal(env.Data, &rejected))
	assert.Equal(t, "rejected", rejected.Status)
}

func TestEmployeeSeesOnlyOwnLeaves(t *testing.T) {
	app := newTestApp(t)
	employeeToken := app.login(t, fixtures.EmployeeEmail)
	adminToken := app.login(t, handlerTestAdmin)

	status, env := app.do(t, http.MethodGet, "/api/v1/leaves", employeeToken, nil)
	require.Equal(t, http.StatusOK, status)
	var own []leaveBody
	require.NoError(t, json.Unmarshal(env.Data, &own))
	require.NotEmpty(t, own)
	for _, l := range own {
		assert.Equal(t, app.ids.EmployeeIDs["NV003"], l.EmployeeID)
	}

	status, env = app.do(t, http.MethodGet, "/api/v1/leaves", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	var all []leaveBody
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Greater(t, len(all), len(own))
}

func TestRoutePermissions(t *testing.T) {
	app := newTestApp(t)
	employeeToken := app.login(t, fixtures.EmployeeEmail)
	managerToken := app.login(t, fixtures.ManagerEmail)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"anonymous", http.MethodGet, "/api/v1/leaves", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/v1/leaves", "not-a-jwt", http.StatusUnauthorized},
		{"employee dashboard", http.MethodGet, "/api/v1/dashboard", employeeToken, http.StatusForbidden},
		{"employee users", http.MethodGet, "/api/v1/users", employeeToken, http.StatusForbidden},
		{"employee list employees", http.MethodGet, "/api/v1/employees", employeeToken, http.StatusForbidden},
		{"employee shifts", http.MethodGet, "/api/v1/work-shifts", employeeToken, http.StatusOK},
		{"manager dashboard", http.MethodGet, "/api/v1/dashboard", managerToken, http.StatusOK},
		{"manager users", http.MethodGet, "/api/v1/users", managerToken, http.StatusForbidden},
		{"manager recruitment", http.MethodGet, "/api/v1/job-openings", managerToken, http.StatusForbidden},
		{"manager employees", http.MethodGet, "/api/v1/employees", managerToken, http.StatusOK},
		{"leave status filter", http.MethodGet, "/api/v1/leaves?status=department_approved", managerToken, http.StatusOK},
		{"leave unknown status", http.MethodGet, "/api/v1/leaves?status=draft", managerToken, http.StatusUnprocessableEntity},
		{"report unknown status", http.MethodGet, "/api/v1/work-reports?status=pending", managerToken, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := app.do(t, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, fixtures.ManagerEmail)

	status, env := app.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	var me struct {
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Contains(t, me.Permissions, "request.department_approve")

	status, _ = app.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = app.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    fixtures.ManagerEmail,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSSETokenOpensStreamOnly(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, fixtures.EmployeeEmail)

	status, env := app.do(t, http.MethodPost, "/api/v1/notifications/token", token, nil)
	require.Equal(t, http.StatusOK, status)
	var sseToken struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sseToken))
	require.NotEmpty(t, sseToken.Token)

	status, _ = app.do(t, http.MethodGet, "/api/v1/leaves", sseToken.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status, "stream tokens are not access tokens")

	status, _ = app.do(t, http.MethodGet, "/api/v1/notifications/stream?token="+token, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status, "access tokens cannot open the stream")
}
