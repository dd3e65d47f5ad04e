package employee

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// DeleteEmployee removes the employee only; association rows and requests are kept.
	DeleteEmployee(ctx context.Context, id string) error

	// Relationship resolver
	EmployeeDepartments(ctx context.Context, employeeID string) ([]organization.Department, error)
	EmployeePositions(ctx context.Context, employeeID string) ([]position.Position, error)
	DepartmentEmployeeIDs(ctx context.Context, departmentID string) (map[string]struct{}, error)

	AssignDepartment(ctx context.Context, employeeID, departmentID string) error
	UnassignDepartment(ctx context.Context, employeeID, departmentID string) error
	AssignPosition(ctx context.Context, employeeID, positionID string) error
	UnassignPosition(ctx context.Context, employeeID, positionID string) error
}
