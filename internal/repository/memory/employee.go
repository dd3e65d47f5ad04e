package memory

import (
	"context"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	*crud[employee.Employee]
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{&crud[employee.Employee]{
		store: store,
		table: store.employees,
		id:    func(e employee.Employee) string { return e.ID },
		assign: func(e *employee.Employee, id string, now time.Time) {
			e.ID, e.CreatedAt, e.UpdatedAt = id, now, now
		},
		touch: func(e *employee.Employee, old employee.Employee, now time.Time) {
			e.CreatedAt, e.UpdatedAt = old.CreatedAt, now
		},
		notFound: employee.ErrEmployeeNotFound,
	}}
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	e, ok := r.first(ctx, func(e employee.Employee) bool {
		return strings.EqualFold(e.EmployeeCode, employeeCode)
	})
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// ExistsByCodeOrEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByCodeOrEmail(ctx context.Context, excludeID string, employeeCode, email *string) (bool, bool, error) {
	var codeTaken, emailTaken bool
	r.where(ctx, func(e employee.Employee) bool {
		if e.ID == excludeID {
			return false
		}
		if employeeCode != nil && strings.EqualFold(e.EmployeeCode, *employeeCode) {
			codeTaken = true
		}
		if email != nil && strings.EqualFold(e.Email, *email) {
			emailTaken = true
		}
		return false
	})
	return codeTaken, emailTaken, nil
}

type assignmentRepositoryImpl struct {
	store *Store
}

func NewAssignmentRepository(store *Store) employee.AssignmentRepository {
	return &assignmentRepositoryImpl{store: store}
}

// DepartmentMemberships implements employee.AssignmentRepository.
func (r *assignmentRepositoryImpl) DepartmentMemberships(ctx context.Context) ([]employee.DepartmentMembership, error) {
	unlock := r.store.read(ctx)
	defer unlock()

	return append([]employee.DepartmentMembership(nil), r.store.departmentMembers...), nil
}

// AddDepartmentMembership reports false when the pair already exists.
func (r *assignmentRepositoryImpl) AddDepartmentMembership(ctx context.Context, m employee.DepartmentMembership) (bool, error) {
	unlock := r.store.write(ctx)
	defer unlock()

	for _, existing := range r.store.departmentMembers {
		if existing == m {
			return false, nil
		}
	}
	r.store.departmentMembers = append(r.store.departmentMembers, m)
	return true, nil
}

// RemoveDepartmentMembership implements employee.AssignmentRepository.
func (r *assignmentRepositoryImpl) RemoveDepartmentMembership(ctx context.Context, m employee.DepartmentMembership) (bool, error) {
	unlock := r.store.write(ctx)
	defer unlock()

	for i, existing := range r.store.departmentMembers {
		if existing == m {
			r.store.departmentMembers = append(r.store.departmentMembers[:i], r.store.departmentMembers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// PositionAssignments implements employee.AssignmentRepository.
func (r *assignmentRepositoryImpl) PositionAssignments(ctx context.Context) ([]employee.PositionAssignment, error) {
	unlock := r.store.read(ctx)
	defer unlock()

	return append([]employee.PositionAssignment(nil), r.store.positionAssignments...), nil
}

// AddPositionAssignment reports false when the pair already exists.
func (r *assignmentRepositoryImpl) AddPositionAssignment(ctx context.Context, a employee.PositionAssignment) (bool, error) {
	unlock := r.store.write(ctx)
	defer unlock()

	for _, existing := range r.store.positionAssignments {
		if existing == a {
			return false, nil
		}
	}
	r.store.positionAssignments = append(r.store.positionAssignments, a)
	return true, nil
}

// RemovePositionAssignment implements employee.AssignmentRepository.
func (r *assignmentRepositoryImpl) RemovePositionAssignment(ctx context.Context, a employee.PositionAssignment) (bool, error) {
	unlock := r.store.write(ctx)
	defer unlock()

	for i, existing := range r.store.positionAssignments {
		if existing == a {
			r.store.positionAssignments = append(r.store.positionAssignments[:i], r.store.positionAssignments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
