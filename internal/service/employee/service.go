package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
)

type EmployeeServiceImpl struct {
	store          *memory.Store
	employeeRepo   employee.EmployeeRepository
	assignmentRepo employee.AssignmentRepository
	departmentRepo organization.DepartmentRepository
	positionRepo   position.PositionRepository
}

func NewEmployeeService(
	store *memory.Store,
	employeeRepo employee.EmployeeRepository,
	assignmentRepo employee.AssignmentRepository,
	departmentRepo organization.DepartmentRepository,
	positionRepo position.PositionRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		store:          store,
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	newEmployee := req.ToEntity()

	var created employee.Employee
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if err := s.ensureUnique(ctx, "", &newEmployee.EmployeeCode, &newEmployee.Email); err != nil {
			return err
		}
		for _, id := range req.DepartmentIDs {
			if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
				return err
			}
		}
		for _, id := range req.PositionIDs {
			if _, err := s.positionRepo.GetByID(ctx, id); err != nil {
				return err
			}
		}

		var err error
		created, err = s.employeeRepo.Create(ctx, newEmployee)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		for _, id := range req.DepartmentIDs {
			if _, err := s.assignmentRepo.AddDepartmentMembership(ctx, employee.DepartmentMembership{EmployeeID: created.ID, DepartmentID: id}); err != nil {
				return fmt.Errorf("failed to assign department: %w", err)
			}
		}
		for _, id := range req.PositionIDs {
			if _, err := s.assignmentRepo.AddPositionAssignment(ctx, employee.PositionAssignment{EmployeeID: created.ID, PositionID: id}); err != nil {
				return fmt.Errorf("failed to assign position: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID, "employee_code", created.EmployeeCode)
	return s.toResponse(ctx, created)
}

func (s *EmployeeServiceImpl) ensureUnique(ctx context.Context, excludeID string, code, email *string) error {
	codeTaken, emailTaken, err := s.employeeRepo.ExistsByCodeOrEmail(ctx, excludeID, code, email)
	if err != nil {
		return fmt.Errorf("failed to check employee uniqueness: %w", err)
	}
	if codeTaken {
		return employee.ErrEmployeeCodeExists
	}
	if emailTaken {
		return employee.ErrEmailExists
	}
	return nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, e)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	memberships, err := s.assignmentRepo.DepartmentMemberships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list department memberships: %w", err)
	}
	assignments, err := s.assignmentRepo.PositionAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list position assignments: %w", err)
	}

	departmentsOf := make(map[string][]string)
	for _, m := range memberships {
		departmentsOf[m.EmployeeID] = appendUnique(departmentsOf[m.EmployeeID], m.DepartmentID)
	}
	positionsOf := make(map[string][]string)
	for _, a := range assignments {
		positionsOf[a.EmployeeID] = appendUnique(positionsOf[a.EmployeeID], a.PositionID)
	}

	var search string
	if filter.Search != nil {
		search = strings.ToLower(strings.TrimSpace(*filter.Search))
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		if filter.DepartmentID != nil && !contains(departmentsOf[e.ID], *filter.DepartmentID) {
			continue
		}
		if filter.PositionID != nil && !contains(positionsOf[e.ID], *filter.PositionID) {
			continue
		}
		if filter.EmploymentStatus != nil && string(e.EmploymentStatus) != *filter.EmploymentStatus {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.FullName), search) &&
			!strings.Contains(strings.ToLower(e.EmployeeCode), search) &&
			!strings.Contains(strings.ToLower(e.Email), search) {
			continue
		}
		responses = append(responses, employee.ToResponse(e, departmentsOf[e.ID], positionsOf[e.ID]))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		current, err := s.employeeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&current)
		if err := s.ensureUnique(ctx, current.ID, &current.EmployeeCode, &current.Email); err != nil {
			return err
		}

		found, err := s.employeeRepo.Update(ctx, current)
		if err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		if !found {
			return employee.ErrEmployeeNotFound
		}
		updated, err = s.employeeRepo.GetByID(ctx, current.ID)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, updated)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	found, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if !found {
		slog.Debug("Delete of unknown employee ignored", "employee_id", id)
		return nil
	}
	slog.Info("Employee deleted", "employee_id", id)
	return nil
}

// EmployeeDepartments returns the departments linked to the employee through association
// rows, in department collection order and without duplicates.
func (s *EmployeeServiceImpl) EmployeeDepartments(ctx context.Context, employeeID string) ([]organization.Department, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	departmentIDs, err := s.departmentIDsOf(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	result := make([]organization.Department, 0, len(departmentIDs))
	for _, d := range departments {
		if contains(departmentIDs, d.ID) {
			result = append(result, d)
		}
	}
	return result, nil
}

// EmployeePositions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) EmployeePositions(ctx context.Context, employeeID string) ([]position.Position, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	positionIDs, err := s.positionIDsOf(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	result := make([]position.Position, 0, len(positionIDs))
	for _, p := range positions {
		if contains(positionIDs, p.ID) {
			result = append(result, p)
		}
	}
	return result, nil
}

// DepartmentEmployeeIDs is the reverse lookup used to filter records that carry no
// department of their own.
func (s *EmployeeServiceImpl) DepartmentEmployeeIDs(ctx context.Context, departmentID string) (map[string]struct{}, error) {
	memberships, err := s.assignmentRepo.DepartmentMemberships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list department memberships: %w", err)
	}
	ids := make(map[string]struct{})
	for _, m := range memberships {
		if m.DepartmentID == departmentID {
			ids[m.EmployeeID] = struct{}{}
		}
	}
	return ids, nil
}

// AssignDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AssignDepartment(ctx context.Context, employeeID, departmentID string) error {
	return memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return err
		}
		if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
			return err
		}
		added, err := s.assignmentRepo.AddDepartmentMembership(ctx, employee.DepartmentMembership{EmployeeID: employeeID, DepartmentID: departmentID})
		if err != nil {
			return fmt.Errorf("failed to assign department: %w", err)
		}
		if !added {
			slog.Debug("Employee already in department", "employee_id", employeeID, "department_id", departmentID)
		}
		return nil
	})
}

// UnassignDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UnassignDepartment(ctx context.Context, employeeID, departmentID string) error {
	if _, err := s.assignmentRepo.RemoveDepartmentMembership(ctx, employee.DepartmentMembership{EmployeeID: employeeID, DepartmentID: departmentID}); err != nil {
		return fmt.Errorf("failed to unassign department: %w", err)
	}
	return nil
}

// AssignPosition implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AssignPosition(ctx context.Context, employeeID, positionID string) error {
	return memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return err
		}
		if _, err := s.positionRepo.GetByID(ctx, positionID); err != nil {
			return err
		}
		added, err := s.assignmentRepo.AddPositionAssignment(ctx, employee.PositionAssignment{EmployeeID: employeeID, PositionID: positionID})
		if err != nil {
			return fmt.Errorf("failed to assign position: %w", err)
		}
		if !added {
			slog.Debug("Employee already holds position", "employee_id", employeeID, "position_id", positionID)
		}
		return nil
	})
}

// UnassignPosition implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UnassignPosition(ctx context.Context, employeeID, positionID string) error {
	if _, err := s.assignmentRepo.RemovePositionAssignment(ctx, employee.PositionAssignment{EmployeeID: employeeID, PositionID: positionID}); err != nil {
		return fmt.Errorf("failed to unassign position: %w", err)
	}
	return nil
}

func (s *EmployeeServiceImpl) departmentIDsOf(ctx context.Context, employeeID string) ([]string, error) {
	memberships, err := s.assignmentRepo.DepartmentMemberships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list department memberships: %w", err)
	}
	var ids []string
	for _, m := range memberships {
		if m.EmployeeID == employeeID {
			ids = appendUnique(ids, m.DepartmentID)
		}
	}
	return ids, nil
}

func (s *EmployeeServiceImpl) positionIDsOf(ctx context.Context, employeeID string) ([]string, error) {
	assignments, err := s.assignmentRepo.PositionAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list position assignments: %w", err)
	}
	var ids []string
	for _, a := range assignments {
		if a.EmployeeID == employeeID {
			ids = appendUnique(ids, a.PositionID)
		}
	}
	return ids, nil
}

func (s *EmployeeServiceImpl) toResponse(ctx context.Context, e employee.Employee) (employee.EmployeeResponse, error) {
	departmentIDs, err := s.departmentIDsOf(ctx, e.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	positionIDs, err := s.positionIDsOf(ctx, e.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e, departmentIDs, positionIDs), nil
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

func appendUnique(values []string, v string) []string {
	if contains(values, v) {
		return values
	}
	return append(values, v)
}
