package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ExistsByCodeOrEmail(ctx context.Context, excludeID string, employeeCode, email *string) (codeTaken bool, emailTaken bool, err error)
	// Update and Delete report found=false when no employee has the given id.
	Update(ctx context.Context, e Employee) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AssignmentRepository holds the association rows linking employees to departments and positions.
type AssignmentRepository interface {
	DepartmentMemberships(ctx context.Context) ([]DepartmentMembership, error)
	AddDepartmentMembership(ctx context.Context, m DepartmentMembership) (bool, error)
	RemoveDepartmentMembership(ctx context.Context, m DepartmentMembership) (bool, error)

	PositionAssignments(ctx context.Context) ([]PositionAssignment, error)
	AddPositionAssignment(ctx context.Context, a PositionAssignment) (bool, error)
	RemovePositionAssignment(ctx context.Context, a PositionAssignment) (bool, error)
}
