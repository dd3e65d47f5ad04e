package timekeeping

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/timekeeping"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticMembers map[string]map[string]struct{}

func (m staticMembers) DepartmentEmployeeIDs(_ context.Context, departmentID string) (map[string]struct{}, error) {
	return m[departmentID], nil
}

type fixture struct {
	svc       *TimekeepingServiceImpl
	employees []employee.Employee
	deviceID  string
}

func setup(t *testing.T, members staticMembers) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)

	var employees []employee.Employee
	for _, code := range []string{"NV001", "NV002"} {
		e, err := employeeRepo.Create(ctx, employee.Employee{EmployeeCode: code, FullName: code, Email: code + "@company.vn"})
		require.NoError(t, err)
		employees = append(employees, e)
	}

	svc := NewTimekeepingService(
		store,
		memory.NewTimeEntryRepository(store),
		memory.NewDeviceRepository(store),
		memory.NewRawTimeDataRepository(store),
		employeeRepo,
		memory.NewWorkShiftRepository(store),
		members,
		nil,
	)
	device, err := svc.CreateDevice(ctx, timekeeping.CreateDeviceRequest{Name: "Lobby", SerialNumber: "ZK-001"})
	require.NoError(t, err)

	return fixture{svc: svc, employees: employees, deviceID: device.ID}
}

func strPtr(s string) *string { return &s }

func TestCreateTimeEntry_DerivesHours(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	entry, err := f.svc.CreateTimeEntry(ctx, timekeeping.CreateTimeEntryRequest{
		EmployeeID: f.employees[0].ID,
		Date:       "2024-06-03",
		CheckIn:    strPtr("08:00"),
		CheckOut:   strPtr("17:30"),
	})
	require.NoError(t, err)
	require.NotNil(t, entry.Hours)
	assert.Equal(t, 9.5, *entry.Hours)
	assert.Equal(t, "manual", entry.Source)

	_, err = f.svc.CreateTimeEntry(ctx, timekeeping.CreateTimeEntryRequest{EmployeeID: f.employees[0].ID, Date: "2024-06-03"})
	assert.ErrorIs(t, err, timekeeping.ErrTimeEntryExists)

	_, err = f.svc.CreateTimeEntry(ctx, timekeeping.CreateTimeEntryRequest{EmployeeID: "missing", Date: "2024-06-03"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateTimeEntry_RecalculatesHours(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	entry, err := f.svc.CreateTimeEntry(ctx, timekeeping.CreateTimeEntryRequest{
		EmployeeID: f.employees[0].ID,
		Date:       "2024-06-03",
		CheckIn:    strPtr("08:00"),
	})
	require.NoError(t, err)
	assert.Nil(t, entry.Hours)

	updated, err := f.svc.UpdateTimeEntry(ctx, timekeeping.UpdateTimeEntryRequest{ID: entry.ID, CheckOut: strPtr("12:00")})
	require.NoError(t, err)
	require.NotNil(t, updated.Hours)
	assert.Equal(t, 4.0, *updated.Hours)
}

func TestDevices_SerialUnique(t *testing.T) {
	f := setup(t, nil)

	_, err := f.svc.CreateDevice(context.Background(), timekeeping.CreateDeviceRequest{Name: "Gate", SerialNumber: "zk-001"})
	assert.ErrorIs(t, err, timekeeping.ErrDeviceSerialExists)
}

func TestIngestRawData_RejectsInactiveDevice(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	inactive := string(timekeeping.DeviceStatusInactive)
	_, err := f.svc.UpdateDevice(ctx, timekeeping.UpdateDeviceRequest{ID: f.deviceID, Status: &inactive})
	require.NoError(t, err)

	_, err = f.svc.IngestRawData(ctx, timekeeping.IngestRawDataRequest{
		DeviceID: f.deviceID,
		Punches:  []timekeeping.RawPunch{{EmployeeCode: "NV001", PunchedAt: "2024-06-03T08:00:00Z"}},
	})
	assert.ErrorIs(t, err, timekeeping.ErrDeviceInactive)
}

func TestProcessRawData(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	_, err := f.svc.IngestRawData(ctx, timekeeping.IngestRawDataRequest{
		DeviceID: f.deviceID,
		Punches: []timekeeping.RawPunch{
			{EmployeeCode: "NV001", PunchedAt: "2024-06-03T12:00:00Z"},
			{EmployeeCode: "NV001", PunchedAt: "2024-06-03T08:00:00Z"},
			{EmployeeCode: "nv001", PunchedAt: "2024-06-03T17:00:00Z"},
			{EmployeeCode: "NV002", PunchedAt: "2024-06-03T08:15:00Z"},
			{EmployeeCode: "GHOST", PunchedAt: "2024-06-03T08:20:00Z"},
		},
	})
	require.NoError(t, err)

	result, err := f.svc.ProcessRawData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 2, result.EntriesCreated)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"GHOST"}, result.UnknownCodes)

	entries, err := f.svc.ListTimeEntries(ctx, filter.Criteria{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byEmployee := map[string]timekeeping.TimeEntryResponse{}
	for _, e := range entries {
		byEmployee[e.EmployeeID] = e
	}
	full := byEmployee[f.employees[0].ID]
	assert.Equal(t, "08:00", *full.CheckIn)
	assert.Equal(t, "17:00", *full.CheckOut)
	assert.Equal(t, 9.0, *full.Hours)
	assert.Equal(t, "device", full.Source)

	single := byEmployee[f.employees[1].ID]
	assert.Equal(t, "08:15", *single.CheckIn)
	assert.Nil(t, single.CheckOut)

	unprocessed := false
	left, err := f.svc.ListRawData(ctx, &unprocessed)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "GHOST", left[0].EmployeeCode)

	_, err = f.svc.IngestRawData(ctx, timekeeping.IngestRawDataRequest{
		DeviceID: f.deviceID,
		Punches:  []timekeeping.RawPunch{{EmployeeCode: "NV002", PunchedAt: "2024-06-03T18:00:00Z"}},
	})
	require.NoError(t, err)

	again, err := f.svc.ProcessRawData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Processed)
	assert.Equal(t, 1, again.EntriesUpdated)

	entries, _ = f.svc.ListTimeEntries(ctx, filter.Criteria{})
	for _, e := range entries {
		if e.EmployeeID == f.employees[1].ID {
			assert.Equal(t, "08:15", *e.CheckIn)
			assert.Equal(t, "18:00", *e.CheckOut)
		}
	}
}

func TestListTimeEntries_DepartmentFilter(t *testing.T) {
	members := staticMembers{}
	f := setup(t, members)
	members["dept-a"] = map[string]struct{}{f.employees[1].ID: {}}
	ctx := context.Background()

	for _, e := range f.employees {
		_, err := f.svc.CreateTimeEntry(ctx, timekeeping.CreateTimeEntryRequest{EmployeeID: e.ID, Date: "2024-06-03"})
		require.NoError(t, err)
	}

	dept := "dept-a"
	entries, err := f.svc.ListTimeEntries(ctx, filter.Criteria{DepartmentID: &dept})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, f.employees[1].ID, entries[0].EmployeeID)
}
