package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticMembers map[string]map[string]struct{}

func (m staticMembers) DepartmentEmployeeIDs(_ context.Context, departmentID string) (map[string]struct{}, error) {
	return m[departmentID], nil
}

func newService(t *testing.T, strict bool, members staticMembers) (report.WorkReportService, []string) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)

	var ids []string
	for _, code := range []string{"NV001", "NV002"} {
		e, err := employeeRepo.Create(ctx, employee.Employee{EmployeeCode: code, FullName: code, Email: code + "@company.vn"})
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}
	machine := workflow.NewMachine(workflow.ReportRules, strict).
		WithClock(func() time.Time { return time.Date(2024, 6, 14, 17, 0, 0, 0, time.UTC) })
	svc := NewWorkReportService(store, memory.NewWorkReportRepository(store), employeeRepo, members, machine, nil)
	return svc, ids
}

func createReport(t *testing.T, svc report.WorkReportService, employeeID, week string) report.WorkReportResponse {
	t.Helper()
	resp, err := svc.CreateWorkReport(context.Background(), report.CreateWorkReportRequest{
		EmployeeID:     employeeID,
		WeekStartDate:  week,
		WeekEndDate:    week,
		TasksCompleted: "Payroll import",
	})
	require.NoError(t, err)
	return resp
}

func TestWorkReport_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, ids := newService(t, false, nil)
	wr := createReport(t, svc, ids[0], "2024-06-10")
	assert.Equal(t, "draft", wr.Status)

	submitted, err := svc.SubmitWorkReport(ctx, wr.ID)
	require.NoError(t, err)
	assert.Equal(t, "submitted", submitted.Status)
	assert.Equal(t, "2024-06-14", *submitted.SubmittedDate)

	_, err = svc.SubmitWorkReport(ctx, wr.ID)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)

	rejected, err := svc.RejectWorkReport(ctx, report.RejectWorkReportRequest{ID: wr.ID, RejecterID: "head-1", Reason: "Missing details"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Equal(t, "Missing details", *rejected.RejectionReason)

	approved, err := svc.ApproveWorkReport(ctx, wr.ID, "head-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
}

func TestWorkReport_StrictRequiresSubmission(t *testing.T) {
	svc, ids := newService(t, true, nil)
	wr := createReport(t, svc, ids[0], "2024-06-10")

	_, err := svc.ApproveWorkReport(context.Background(), wr.ID, "head-1")
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

func TestListWorkReports_DepartmentThroughMembership(t *testing.T) {
	ctx := context.Background()
	members := staticMembers{}
	svc, ids := newService(t, false, members)
	members["dept-a"] = map[string]struct{}{ids[0]: {}}

	mine := createReport(t, svc, ids[0], "2024-06-10")
	createReport(t, svc, ids[1], "2024-06-10")

	dept := "dept-a"
	list, err := svc.ListWorkReports(ctx, filter.Criteria{DepartmentID: &dept}, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	empty := "dept-empty"
	list, _ = svc.ListWorkReports(ctx, filter.Criteria{DepartmentID: &empty}, nil)
	assert.Empty(t, list)

	all, _ := svc.ListWorkReports(ctx, filter.Criteria{}, nil)
	assert.Len(t, all, 2)
}

func TestListWorkReports_StatusFilter(t *testing.T) {
	ctx := context.Background()
	svc, ids := newService(t, false, nil)
	createReport(t, svc, ids[0], "2024-06-10")

	draft := "draft"
	list, err := svc.ListWorkReports(ctx, filter.Criteria{}, &draft)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	pending := "pending"
	_, err = svc.ListWorkReports(ctx, filter.Criteria{}, &pending)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "status", verrs[0].Field)
}

func TestUpdateWorkReport(t *testing.T) {
	ctx := context.Background()
	svc, ids := newService(t, false, nil)
	wr := createReport(t, svc, ids[0], "2024-06-10")

	end := "2024-06-14"
	updated, err := svc.UpdateWorkReport(ctx, report.UpdateWorkReportRequest{ID: wr.ID, WeekEndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, end, updated.WeekEndDate)

	before := "2024-06-01"
	_, err = svc.UpdateWorkReport(ctx, report.UpdateWorkReportRequest{ID: wr.ID, WeekEndDate: &before})
	assert.ErrorIs(t, err, report.ErrInvalidDateRange)

	_, err = svc.UpdateWorkReport(ctx, report.UpdateWorkReportRequest{ID: "missing", WeekEndDate: &end})
	assert.ErrorIs(t, err, report.ErrWorkReportNotFound)
}
