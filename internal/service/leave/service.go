package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	store *memory.Store
	leave.LeaveTypeRepository
	leave.LeaveRepository
	employee.EmployeeRepository
	organization.DepartmentRepository
	machine  *workflow.Machine
	notifier notification.Publisher
}

func NewLeaveService(
	store *memory.Store,
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo organization.DepartmentRepository,
	machine *workflow.Machine,
	notifier notification.Publisher,
) leave.LeaveService {
	if notifier == nil {
		notifier = notification.Discard
	}
	return &LeaveServiceImpl{
		store:                store,
		LeaveTypeRepository:  leaveTypeRepo,
		LeaveRepository:      leaveRepo,
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
		machine:              machine,
		notifier:             notifier,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	var created leave.LeaveType
	err := memory.WithTransaction(ctx, l.store, func(ctx context.Context) error {
		if err := l.ensureTypeCode(ctx, "", req.Code); err != nil {
			return err
		}
		var err error
		created, err = l.LeaveTypeRepository.Create(ctx, leave.LeaveType{
			Code:           req.Code,
			Name:           strings.TrimSpace(req.Name),
			Description:    req.Description,
			MaxDaysPerYear: req.MaxDaysPerYear,
			IsPaid:         req.IsPaid,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave type: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	return leave.ToLeaveTypeResponse(created), nil
}

func (l *LeaveServiceImpl) ensureTypeCode(ctx context.Context, excludeID, code string) error {
	types, err := l.LeaveTypeRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leave types: %w", err)
	}
	for _, t := range types {
		if t.ID != excludeID && strings.EqualFold(t.Code, code) {
			return leave.ErrLeaveTypeCodeExists
		}
	}
	return nil
}

// UpdateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	var updated leave.LeaveType
	err := memory.WithTransaction(ctx, l.store, func(ctx context.Context) error {
		leaveType, err := l.LeaveTypeRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&leaveType)
		if err := l.ensureTypeCode(ctx, leaveType.ID, leaveType.Code); err != nil {
			return err
		}
		found, err := l.LeaveTypeRepository.Update(ctx, leaveType)
		if err != nil {
			return fmt.Errorf("failed to update leave type: %w", err)
		}
		if !found {
			return leave.ErrLeaveTypeNotFound
		}
		updated = leaveType
		return nil
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	return leave.ToLeaveTypeResponse(updated), nil
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := l.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, leave.ToLeaveTypeResponse(t))
	}
	return responses, nil
}

// DeleteLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	if _, err := l.LeaveTypeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	return nil
}

// CreateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var created leave.Leave
	err := memory.WithTransaction(ctx, l.store, func(ctx context.Context) error {
		newLeave := req.ToEntity()
		if err := l.checkReferences(ctx, newLeave); err != nil {
			return err
		}
		var err error
		created, err = l.LeaveRepository.Create(ctx, newLeave)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave request created", "leave_id", created.ID, "employee_id", created.EmployeeID, "days", created.NumberOfDays)
	resp := l.toResponse(ctx, created)
	l.notifier.NotifyRoles(ctx, []user.Role{user.RoleManager, user.RoleAdmin}, notification.CreateNotificationRequest{
		Type:    notification.WorkflowType(notification.SubjectLeave, created.Status),
		Title:   "New leave request",
		Message: fmt.Sprintf("A leave request for %d day(s) from %s is waiting for approval", created.NumberOfDays, resp.StartDate),
		Data:    map[string]interface{}{"leave_id": created.ID, "employee_id": created.EmployeeID},
	})
	return resp, nil
}

func (l *LeaveServiceImpl) checkReferences(ctx context.Context, lv leave.Leave) error {
	if _, err := l.EmployeeRepository.GetByID(ctx, lv.EmployeeID); err != nil {
		return err
	}
	if _, err := l.LeaveTypeRepository.GetByID(ctx, lv.LeaveTypeID); err != nil {
		return err
	}
	if _, err := l.DepartmentRepository.GetByID(ctx, lv.DepartmentID); err != nil {
		return err
	}
	return nil
}

// GetLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	lv, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return l.toResponse(ctx, lv), nil
}

// ListLeaves returns the requests whose start date falls in the criteria range and that
// match the department and employee filters.
func (l *LeaveServiceImpl) ListLeaves(ctx context.Context, criteria filter.Criteria, status *string) ([]leave.LeaveResponse, error) {
	if status != nil && !workflow.IsRequestStatus(*status) {
		return nil, validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(workflow.RequestStatusValues, ", "),
		}}
	}

	leaves, err := l.LeaveRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		if !criteria.Match(lv.StartDate, lv.DepartmentID, lv.EmployeeID) {
			continue
		}
		if status != nil && string(lv.Status) != *status {
			continue
		}
		responses = append(responses, l.toResponse(ctx, lv))
	}
	return responses, nil
}

// UpdateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeave(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var updated leave.Leave
	err := memory.WithTransaction(ctx, l.store, func(ctx context.Context) error {
		lv, err := l.LeaveRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&lv)
		if lv.EndDate.Before(lv.StartDate) {
			return leave.ErrInvalidDateRange
		}
		if err := l.checkReferences(ctx, lv); err != nil {
			return err
		}
		found, err := l.LeaveRepository.Update(ctx, lv)
		if err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		if !found {
			return leave.ErrLeaveNotFound
		}
		updated, err = l.LeaveRepository.GetByID(ctx, lv.ID)
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return l.toResponse(ctx, updated), nil
}

// DeleteLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	found, err := l.LeaveRepository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if found {
		slog.Info("Leave request deleted", "leave_id", id)
	}
	return nil
}

// DepartmentApproveLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) DepartmentApproveLeave(ctx context.Context, id, approverID string) (leave.LeaveResponse, error) {
	return l.transition(ctx, id, func(a *workflow.Approval) error {
		return l.machine.DepartmentApprove(a, approverID)
	})
}

// ApproveLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeave(ctx context.Context, id, approverID string) (leave.LeaveResponse, error) {
	return l.transition(ctx, id, func(a *workflow.Approval) error {
		return l.machine.Approve(a, approverID)
	})
}

// RejectLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeave(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	return l.transition(ctx, req.ID, func(a *workflow.Approval) error {
		return l.machine.Reject(a, req.RejecterID, req.Reason)
	})
}

// transition loads the request, applies one workflow step and stores the result atomically.
func (l *LeaveServiceImpl) transition(ctx context.Context, id string, step func(*workflow.Approval) error) (leave.LeaveResponse, error) {
	var updated leave.Leave
	err := memory.WithTransaction(ctx, l.store, func(ctx context.Context) error {
		lv, err := l.LeaveRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := step(&lv.Approval); err != nil {
			return err
		}
		found, err := l.LeaveRepository.Update(ctx, lv)
		if err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		if !found {
			return leave.ErrLeaveNotFound
		}
		updated, err = l.LeaveRepository.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave request status changed", "leave_id", id, "status", updated.Status)
	resp := l.toResponse(ctx, updated)
	l.notifyDecision(ctx, updated)
	return resp, nil
}

func (l *LeaveServiceImpl) notifyDecision(ctx context.Context, lv leave.Leave) {
	req := notification.CreateNotificationRequest{
		Type:  notification.WorkflowType(notification.SubjectLeave, lv.Status),
		Title: "Leave request " + strings.ReplaceAll(string(lv.Status), "_", " "),
		Data:  map[string]interface{}{"leave_id": lv.ID, "status": string(lv.Status)},
	}
	switch lv.Status {
	case workflow.StatusDepartmentApproved:
		req.Message = "Your leave request was approved by the department and awaits final approval"
		l.notifier.NotifyRoles(ctx, []user.Role{user.RoleAdmin}, notification.CreateNotificationRequest{
			Type:    req.Type,
			Title:   "Leave request awaiting final approval",
			Message: "A department-approved leave request needs your decision",
			Data:    req.Data,
		})
	case workflow.StatusApproved:
		req.Message = "Your leave request was approved"
	case workflow.StatusRejected:
		req.Message = "Your leave request was rejected"
		if lv.RejectionReason != nil {
			req.Message += ": " + *lv.RejectionReason
		}
	}
	l.notifier.NotifyEmployee(ctx, lv.EmployeeID, req)
}

func (l *LeaveServiceImpl) toResponse(ctx context.Context, lv leave.Leave) leave.LeaveResponse {
	resp := leave.ToLeaveResponse(lv)
	if e, err := l.EmployeeRepository.GetByID(ctx, lv.EmployeeID); err == nil {
		resp.EmployeeName = &e.FullName
	}
	if t, err := l.LeaveTypeRepository.GetByID(ctx, lv.LeaveTypeID); err == nil {
		resp.LeaveTypeName = &t.Name
	}
	return resp
}
