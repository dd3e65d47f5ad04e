package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        overtime.OvertimeService
	employeeID string
	deptID     string
	typeID     string
}

func newFixture(t *testing.T, cfg Config) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	departmentRepo := memory.NewDepartmentRepository(store)
	typeRepo := memory.NewOvertimeTypeRepository(store)

	e, err := employeeRepo.Create(ctx, employee.Employee{EmployeeCode: "NV001", FullName: "Tran Thi Binh", Email: "binh@company.vn"})
	require.NoError(t, err)
	d, err := departmentRepo.Create(ctx, organization.Department{OrganizationID: "org", Name: "Operations", Code: "OPS"})
	require.NoError(t, err)
	ot, err := typeRepo.Create(ctx, overtime.OvertimeType{Code: "OT150", Name: "Weekday overtime", Coefficient: decimal.RequireFromString("1.5")})
	require.NoError(t, err)

	machine := workflow.NewMachine(workflow.RequestRules, false)
	return fixture{
		svc:        NewOvertimeService(store, typeRepo, memory.NewOvertimeRepository(store), employeeRepo, departmentRepo, machine, nil, cfg),
		employeeID: e.ID,
		deptID:     d.ID,
		typeID:     ot.ID,
	}
}

func (f fixture) create(t *testing.T, date, start, end string) overtime.OvertimeResponse {
	t.Helper()
	resp, err := f.svc.CreateOvertime(context.Background(), overtime.CreateOvertimeRequest{
		EmployeeID:     f.employeeID,
		OvertimeTypeID: f.typeID,
		DepartmentID:   f.deptID,
		OvertimeDate:   date,
		StartTime:      start,
		EndTime:        end,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateOvertime_HoursAndWeightedHours(t *testing.T) {
	f := newFixture(t, Config{})

	resp := f.create(t, "2024-06-12", "17:30", "19:30")
	assert.Equal(t, 2.0, resp.Hours)
	assert.True(t, decimal.RequireFromString("1.5").Equal(resp.Coefficient))
	assert.True(t, decimal.RequireFromString("3").Equal(resp.WeightedHours))
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateOvertime_OvernightRawByDefault(t *testing.T) {
	f := newFixture(t, Config{})
	resp := f.create(t, "2024-06-12", "22:00", "02:00")
	assert.Equal(t, -20.0, resp.Hours)

	normalized := newFixture(t, Config{NormalizeOvernight: true})
	resp = normalized.create(t, "2024-06-12", "22:00", "02:00")
	assert.Equal(t, 4.0, resp.Hours)
}

func TestUpdateOvertime_RecomputesHours(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{})
	created := f.create(t, "2024-06-12", "18:00", "19:00")

	end := "21:15"
	updated, err := f.svc.UpdateOvertime(ctx, overtime.UpdateOvertimeRequest{ID: created.ID, EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, 3.25, updated.Hours)

	reason := "Release night"
	updated, err = f.svc.UpdateOvertime(ctx, overtime.UpdateOvertimeRequest{ID: created.ID, Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, 3.25, updated.Hours)
	assert.Equal(t, reason, *updated.Reason)
}

func TestOvertime_Workflow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{})
	created := f.create(t, "2024-06-12", "18:00", "20:00")

	_, err := f.svc.DepartmentApproveOvertime(ctx, created.ID, "head-1")
	require.NoError(t, err)
	_, err = f.svc.DepartmentApproveOvertime(ctx, created.ID, "head-1")
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)

	rejected, err := f.svc.RejectOvertime(ctx, overtime.RejectOvertimeRequest{ID: created.ID, RejecterID: "director-1", Reason: "Not pre-approved"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)

	_, err = f.svc.ApproveOvertime(ctx, "missing", "director-1")
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotFound)
}

func TestListOvertimes_DepartmentFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{})
	f.create(t, "2024-06-12", "18:00", "20:00")

	other := "another-department"
	list, err := f.svc.ListOvertimes(ctx, filter.Criteria{DepartmentID: &other}, nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = f.svc.ListOvertimes(ctx, filter.Criteria{DepartmentID: &f.deptID}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	outside := filter.Criteria{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
	}
	list, _ = f.svc.ListOvertimes(ctx, outside, nil)
	assert.Empty(t, list)
}

func TestOvertimeType_CodeUnique(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{})

	_, err := f.svc.CreateOvertimeType(ctx, overtime.CreateOvertimeTypeRequest{Code: "OT150", Name: "dup", Coefficient: decimal.NewFromInt(2)})
	assert.ErrorIs(t, err, overtime.ErrOvertimeTypeCodeExists)

	_, err = f.svc.CreateOvertimeType(ctx, overtime.CreateOvertimeTypeRequest{Code: "OT000", Name: "zero", Coefficient: decimal.Zero})
	assert.Error(t, err)
}
