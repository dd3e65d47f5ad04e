package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc         employee.EmployeeService
	assignments employee.AssignmentRepository
	departments []organization.Department
	positions   []position.Position
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	departmentRepo := memory.NewDepartmentRepository(store)
	positionRepo := memory.NewPositionRepository(store)
	assignmentRepo := memory.NewAssignmentRepository(store)

	f := fixture{
		svc: NewEmployeeService(
			store,
			memory.NewEmployeeRepository(store),
			assignmentRepo,
			departmentRepo,
			positionRepo,
		),
		assignments: assignmentRepo,
	}
	for _, code := range []string{"HR", "IT", "OPS"} {
		d, err := departmentRepo.Create(ctx, organization.Department{OrganizationID: "org", Name: code, Code: code})
		require.NoError(t, err)
		f.departments = append(f.departments, d)
	}
	for _, code := range []string{"DEV", "QA"} {
		p, err := positionRepo.Create(ctx, position.Position{Name: code, Code: code})
		require.NoError(t, err)
		f.positions = append(f.positions, p)
	}
	return f
}

func (f fixture) createEmployee(t *testing.T, code, email string, departmentIDs ...string) employee.EmployeeResponse {
	t.Helper()
	resp, err := f.svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeCode:  code,
		FullName:      "Employee " + code,
		Email:         email,
		HireDate:      "2023-01-09",
		DepartmentIDs: departmentIDs,
	})
	require.NoError(t, err)
	return resp
}

func TestEmployeeDepartments_EmptyWithoutRows(t *testing.T) {
	f := newFixture(t)
	e := f.createEmployee(t, "NV001", "an@company.vn")

	departments, err := f.svc.EmployeeDepartments(context.Background(), e.ID)
	require.NoError(t, err)
	assert.NotNil(t, departments)
	assert.Empty(t, departments)

	positions, err := f.svc.EmployeePositions(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Empty(t, positions)
}

func TestEmployeeDepartments_ExactSetWithoutDuplicates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hr, it, ops := f.departments[0], f.departments[1], f.departments[2]
	e := f.createEmployee(t, "NV001", "an@company.vn", ops.ID, hr.ID)
	other := f.createEmployee(t, "NV002", "binh@company.vn", it.ID)

	// a duplicated row added behind the service's back still resolves once
	_, err := f.assignments.AddDepartmentMembership(ctx, employee.DepartmentMembership{EmployeeID: e.ID, DepartmentID: hr.ID})
	require.NoError(t, err)
	require.NoError(t, f.svc.AssignDepartment(ctx, e.ID, hr.ID))

	departments, err := f.svc.EmployeeDepartments(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, []organization.Department{hr, ops}, departments)

	members, err := f.svc.DepartmentEmployeeIDs(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{other.ID: {}}, members)

	require.NoError(t, f.svc.UnassignDepartment(ctx, e.ID, ops.ID))
	departments, _ = f.svc.EmployeeDepartments(ctx, e.ID)
	assert.Equal(t, []organization.Department{hr}, departments)
}

func TestEmployeePositions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.createEmployee(t, "NV001", "an@company.vn")

	require.NoError(t, f.svc.AssignPosition(ctx, e.ID, f.positions[1].ID))
	require.NoError(t, f.svc.AssignPosition(ctx, e.ID, f.positions[1].ID))

	positions, err := f.svc.EmployeePositions(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, []position.Position{f.positions[1]}, positions)

	err = f.svc.AssignPosition(ctx, e.ID, "missing")
	assert.ErrorIs(t, err, position.ErrPositionNotFound)

	_, err = f.svc.EmployeePositions(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	_, err = f.svc.EmployeeDepartments(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateEmployee_Conflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.createEmployee(t, "NV001", "an@company.vn")

	_, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "NV001", FullName: "Dup", Email: "dup@company.vn", HireDate: "2023-01-09",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	_, err = f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "NV009", FullName: "Dup", Email: "AN@company.vn", HireDate: "2023-01-09",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "NV010", FullName: "Ghost", Email: "ghost@company.vn", HireDate: "2023-01-09",
		DepartmentIDs: []string{"missing"},
	})
	assert.ErrorIs(t, err, organization.ErrDepartmentNotFound)

	_, err = f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmployeeCode: "x"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "full_name")

	all, err := f.svc.ListEmployees(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.createEmployee(t, "NV001", "an@company.vn")
	f.createEmployee(t, "NV002", "binh@company.vn")

	name := "Nguyen Van An"
	updated, err := f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: e.ID, FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FullName)
	assert.Equal(t, "an@company.vn", updated.Email)

	taken := "NV002"
	_, err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: e.ID, EmployeeCode: &taken})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	_, err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: "missing", FullName: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees_Filters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hr := f.departments[0]
	a := f.createEmployee(t, "NV001", "an@company.vn", hr.ID)
	f.createEmployee(t, "NV002", "binh@company.vn")

	byDept, err := f.svc.ListEmployees(ctx, employee.EmployeeFilter{DepartmentID: &hr.ID})
	require.NoError(t, err)
	require.Len(t, byDept, 1)
	assert.Equal(t, a.ID, byDept[0].ID)
	assert.Equal(t, []string{hr.ID}, byDept[0].DepartmentIDs)

	search := "BINH"
	bySearch, _ := f.svc.ListEmployees(ctx, employee.EmployeeFilter{Search: &search})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "NV002", bySearch[0].EmployeeCode)
}

func TestDeleteEmployee_MissingIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.createEmployee(t, "NV001", "an@company.vn")

	require.NoError(t, f.svc.DeleteEmployee(ctx, "missing"))
	require.NoError(t, f.svc.DeleteEmployee(ctx, e.ID))

	_, err := f.svc.GetEmployee(ctx, e.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
