package leave

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu        sync.Mutex
	employees []string
	types     []notification.NotificationType
}

func (p *recordingPublisher) NotifyEmployee(_ context.Context, employeeID string, req notification.CreateNotificationRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.employees = append(p.employees, employeeID)
	p.types = append(p.types, req.Type)
}

func (p *recordingPublisher) NotifyRoles(_ context.Context, _ []user.Role, req notification.CreateNotificationRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, req.Type)
}

type fixture struct {
	svc        leave.LeaveService
	publisher  *recordingPublisher
	employeeID string
	deptID     string
	typeID     string
}

var today = time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)

func newFixture(t *testing.T, strict bool) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	departmentRepo := memory.NewDepartmentRepository(store)
	typeRepo := memory.NewLeaveTypeRepository(store)

	e, err := employeeRepo.Create(ctx, employee.Employee{EmployeeCode: "NV001", FullName: "Nguyen Van An", Email: "an@company.vn"})
	require.NoError(t, err)
	d, err := departmentRepo.Create(ctx, organization.Department{OrganizationID: "org", Name: "Engineering", Code: "ENG"})
	require.NoError(t, err)
	lt, err := typeRepo.Create(ctx, leave.LeaveType{Code: "ANNUAL", Name: "Annual leave", IsPaid: true})
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	machine := workflow.NewMachine(workflow.RequestRules, strict).WithClock(func() time.Time { return today })
	return fixture{
		svc:        NewLeaveService(store, typeRepo, memory.NewLeaveRepository(store), employeeRepo, departmentRepo, machine, publisher),
		publisher:  publisher,
		employeeID: e.ID,
		deptID:     d.ID,
		typeID:     lt.ID,
	}
}

func (f fixture) create(t *testing.T, start, end string) leave.LeaveResponse {
	t.Helper()
	resp, err := f.svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID:   f.employeeID,
		LeaveTypeID:  f.typeID,
		DepartmentID: f.deptID,
		StartDate:    start,
		EndDate:      end,
	})
	require.NoError(t, err)
	return resp
}

func TestLeave_FullApprovalFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	created := f.create(t, "2024-06-10", "2024-06-12")
	assert.Equal(t, 3, created.NumberOfDays)
	assert.Equal(t, "pending", created.Status)
	require.NotNil(t, created.EmployeeName)
	assert.Equal(t, "Nguyen Van An", *created.EmployeeName)

	deptApproved, err := f.svc.DepartmentApproveLeave(ctx, created.ID, "head-1")
	require.NoError(t, err)
	assert.Equal(t, "department_approved", deptApproved.Status)
	assert.Equal(t, "2024-06-12", *deptApproved.DepartmentApprovedAt)

	approved, err := f.svc.ApproveLeave(ctx, created.ID, "director-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	assert.Equal(t, "director-1", *approved.ApprovedBy)

	again, err := f.svc.ApproveLeave(ctx, created.ID, "director-1")
	require.NoError(t, err)
	assert.Equal(t, approved.ApprovalResponse, again.ApprovalResponse)

	_, err = f.svc.DepartmentApproveLeave(ctx, created.ID, "head-1")
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)

	assert.Contains(t, f.publisher.types, notification.NotificationType("leave.pending"))
	assert.Contains(t, f.publisher.types, notification.NotificationType("leave.approved"))
	assert.Contains(t, f.publisher.employees, f.employeeID)
}

func TestLeave_RejectFromAnyStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	created := f.create(t, "2024-06-10", "2024-06-10")

	_, err := f.svc.ApproveLeave(ctx, created.ID, "director-1")
	require.NoError(t, err)

	rejected, err := f.svc.RejectLeave(ctx, leave.RejectLeaveRequest{ID: created.ID, RejecterID: "director-1", Reason: "Project deadline"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Equal(t, "Project deadline", *rejected.RejectionReason)

	_, err = f.svc.RejectLeave(ctx, leave.RejectLeaveRequest{ID: created.ID, RejecterID: "director-1"})
	assert.Error(t, err)
}

func TestLeave_StrictMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	created := f.create(t, "2024-06-10", "2024-06-11")

	_, err := f.svc.ApproveLeave(ctx, created.ID, "director-1")
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)

	got, err := f.svc.GetLeave(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

func TestLeave_MissingID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.svc.ApproveLeave(ctx, "missing", "director-1")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	start := "2024-07-01"
	_, err = f.svc.UpdateLeave(ctx, leave.UpdateLeaveRequest{ID: "missing", StartDate: &start})
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	require.NoError(t, f.svc.DeleteLeave(ctx, "missing"))
}

func TestLeave_UpdateRecomputesDays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	created := f.create(t, "2024-06-10", "2024-06-10")

	end := "2024-06-14"
	updated, err := f.svc.UpdateLeave(ctx, leave.UpdateLeaveRequest{ID: created.ID, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.NumberOfDays)

	before := "2024-06-01"
	_, err = f.svc.UpdateLeave(ctx, leave.UpdateLeaveRequest{ID: created.ID, EndDate: &before})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestLeave_ListFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	june := f.create(t, "2024-06-10", "2024-06-11")
	f.create(t, "2024-07-01", "2024-07-02")

	criteria, err := filter.Params{Type: string(filter.TypeMonth), Date: "2024-06-01"}.Resolve(today)
	require.NoError(t, err)
	list, err := f.svc.ListLeaves(ctx, criteria, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, june.ID, list[0].ID)

	all, err := f.svc.ListLeaves(ctx, filter.Criteria{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved := "approved"
	none, _ := f.svc.ListLeaves(ctx, filter.Criteria{}, &approved)
	assert.Empty(t, none)

	other := "other-employee"
	mine, _ := f.svc.ListLeaves(ctx, filter.Criteria{}.RestrictTo(other), nil)
	assert.Empty(t, mine)
}

func TestLeave_ListRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t, false)
	f.create(t, "2024-06-10", "2024-06-11")

	draft := "draft"
	_, err := f.svc.ListLeaves(context.Background(), filter.Criteria{}, &draft)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "status", verrs[0].Field)
}

func TestLeave_CreateChecksReferences(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID:   f.employeeID,
		LeaveTypeID:  "missing",
		DepartmentID: f.deptID,
		StartDate:    "2024-06-10",
		EndDate:      "2024-06-10",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}
