package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Config controls how overtime hours are derived.
type Config struct {
	// NormalizeOvernight treats an end time before the start time as the next day.
	NormalizeOvernight bool
}

type OvertimeServiceImpl struct {
	store          *memory.Store
	typeRepo       overtime.OvertimeTypeRepository
	overtimeRepo   overtime.OvertimeRepository
	employeeRepo   employee.EmployeeRepository
	departmentRepo organization.DepartmentRepository
	machine        *workflow.Machine
	notifier       notification.Publisher
	config         Config
}

func NewOvertimeService(
	store *memory.Store,
	typeRepo overtime.OvertimeTypeRepository,
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo organization.DepartmentRepository,
	machine *workflow.Machine,
	notifier notification.Publisher,
	cfg Config,
) overtime.OvertimeService {
	if notifier == nil {
		notifier = notification.Discard
	}
	return &OvertimeServiceImpl{
		store:          store,
		typeRepo:       typeRepo,
		overtimeRepo:   overtimeRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		machine:        machine,
		notifier:       notifier,
		config:         cfg,
	}
}

// CreateOvertimeType implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CreateOvertimeType(ctx context.Context, req overtime.CreateOvertimeTypeRequest) (overtime.OvertimeTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeTypeResponse{}, err
	}

	var created overtime.OvertimeType
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if err := s.ensureTypeCode(ctx, "", req.Code); err != nil {
			return err
		}
		var err error
		created, err = s.typeRepo.Create(ctx, overtime.OvertimeType{
			Code:        req.Code,
			Name:        strings.TrimSpace(req.Name),
			Coefficient: req.Coefficient,
			Description: req.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to create overtime type: %w", err)
		}
		return nil
	})
	if err != nil {
		return overtime.OvertimeTypeResponse{}, err
	}
	return overtime.ToOvertimeTypeResponse(created), nil
}

func (s *OvertimeServiceImpl) ensureTypeCode(ctx context.Context, excludeID, code string) error {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list overtime types: %w", err)
	}
	for _, t := range types {
		if t.ID != excludeID && strings.EqualFold(t.Code, code) {
			return overtime.ErrOvertimeTypeCodeExists
		}
	}
	return nil
}

// UpdateOvertimeType implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) UpdateOvertimeType(ctx context.Context, req overtime.UpdateOvertimeTypeRequest) (overtime.OvertimeTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeTypeResponse{}, err
	}

	var updated overtime.OvertimeType
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		t, err := s.typeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&t)
		if err := s.ensureTypeCode(ctx, t.ID, t.Code); err != nil {
			return err
		}
		found, err := s.typeRepo.Update(ctx, t)
		if err != nil {
			return fmt.Errorf("failed to update overtime type: %w", err)
		}
		if !found {
			return overtime.ErrOvertimeTypeNotFound
		}
		updated = t
		return nil
	})
	if err != nil {
		return overtime.OvertimeTypeResponse{}, err
	}
	return overtime.ToOvertimeTypeResponse(updated), nil
}

// ListOvertimeTypes implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListOvertimeTypes(ctx context.Context) ([]overtime.OvertimeTypeResponse, error) {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime types: %w", err)
	}
	responses := make([]overtime.OvertimeTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, overtime.ToOvertimeTypeResponse(t))
	}
	return responses, nil
}

// DeleteOvertimeType implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) DeleteOvertimeType(ctx context.Context, id string) error {
	if _, err := s.typeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete overtime type: %w", err)
	}
	return nil
}

// CreateOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CreateOvertime(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	var created overtime.Overtime
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		o := req.ToEntity()
		if err := o.Recalculate(s.config.NormalizeOvernight); err != nil {
			return fmt.Errorf("failed to compute overtime hours: %w", err)
		}
		if err := s.checkReferences(ctx, o); err != nil {
			return err
		}
		var err error
		created, err = s.overtimeRepo.Create(ctx, o)
		if err != nil {
			return fmt.Errorf("failed to create overtime request: %w", err)
		}
		return nil
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	slog.Info("Overtime request created", "overtime_id", created.ID, "employee_id", created.EmployeeID, "hours", created.Hours)
	if created.Hours < 0 {
		slog.Warn("Overtime spans midnight and yields negative hours", "overtime_id", created.ID, "start_time", created.StartTime, "end_time", created.EndTime)
	}
	resp := s.toResponse(ctx, created)
	s.notifier.NotifyRoles(ctx, []user.Role{user.RoleManager, user.RoleAdmin}, notification.CreateNotificationRequest{
		Type:    notification.WorkflowType(notification.SubjectOvertime, created.Status),
		Title:   "New overtime request",
		Message: fmt.Sprintf("An overtime request for %s (%s-%s) is waiting for approval", resp.OvertimeDate, created.StartTime, created.EndTime),
		Data:    map[string]interface{}{"overtime_id": created.ID, "employee_id": created.EmployeeID},
	})
	return resp, nil
}

func (s *OvertimeServiceImpl) checkReferences(ctx context.Context, o overtime.Overtime) error {
	if _, err := s.employeeRepo.GetByID(ctx, o.EmployeeID); err != nil {
		return err
	}
	if _, err := s.typeRepo.GetByID(ctx, o.OvertimeTypeID); err != nil {
		return err
	}
	if _, err := s.departmentRepo.GetByID(ctx, o.DepartmentID); err != nil {
		return err
	}
	return nil
}

// GetOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetOvertime(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	o, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	return s.toResponse(ctx, o), nil
}

// ListOvertimes filters by overtime date, department and employee.
func (s *OvertimeServiceImpl) ListOvertimes(ctx context.Context, criteria filter.Criteria, status *string) ([]overtime.OvertimeResponse, error) {
	if status != nil && !workflow.IsRequestStatus(*status) {
		return nil, validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(workflow.RequestStatusValues, ", "),
		}}
	}

	overtimes, err := s.overtimeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	coefficients, err := s.coefficients(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]overtime.OvertimeResponse, 0, len(overtimes))
	for _, o := range overtimes {
		if !criteria.Match(o.OvertimeDate, o.DepartmentID, o.EmployeeID) {
			continue
		}
		if status != nil && string(o.Status) != *status {
			continue
		}
		responses = append(responses, overtime.ToOvertimeResponse(o, coefficients[o.OvertimeTypeID]))
	}
	return responses, nil
}

// UpdateOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) UpdateOvertime(ctx context.Context, req overtime.UpdateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	var updated overtime.Overtime
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		o, err := s.overtimeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if req.Apply(&o) {
			if err := o.Recalculate(s.config.NormalizeOvernight); err != nil {
				return fmt.Errorf("failed to compute overtime hours: %w", err)
			}
		}
		if err := s.checkReferences(ctx, o); err != nil {
			return err
		}
		found, err := s.overtimeRepo.Update(ctx, o)
		if err != nil {
			return fmt.Errorf("failed to update overtime request: %w", err)
		}
		if !found {
			return overtime.ErrOvertimeNotFound
		}
		updated, err = s.overtimeRepo.GetByID(ctx, o.ID)
		return err
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// DeleteOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) DeleteOvertime(ctx context.Context, id string) error {
	found, err := s.overtimeRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime request: %w", err)
	}
	if found {
		slog.Info("Overtime request deleted", "overtime_id", id)
	}
	return nil
}

// DepartmentApproveOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) DepartmentApproveOvertime(ctx context.Context, id, approverID string) (overtime.OvertimeResponse, error) {
	return s.transition(ctx, id, func(a *workflow.Approval) error {
		return s.machine.DepartmentApprove(a, approverID)
	})
}

// ApproveOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ApproveOvertime(ctx context.Context, id, approverID string) (overtime.OvertimeResponse, error) {
	return s.transition(ctx, id, func(a *workflow.Approval) error {
		return s.machine.Approve(a, approverID)
	})
}

// RejectOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) RejectOvertime(ctx context.Context, req overtime.RejectOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}
	return s.transition(ctx, req.ID, func(a *workflow.Approval) error {
		return s.machine.Reject(a, req.RejecterID, req.Reason)
	})
}

func (s *OvertimeServiceImpl) transition(ctx context.Context, id string, step func(*workflow.Approval) error) (overtime.OvertimeResponse, error) {
	var updated overtime.Overtime
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		o, err := s.overtimeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := step(&o.Approval); err != nil {
			return err
		}
		found, err := s.overtimeRepo.Update(ctx, o)
		if err != nil {
			return fmt.Errorf("failed to update overtime request: %w", err)
		}
		if !found {
			return overtime.ErrOvertimeNotFound
		}
		updated, err = s.overtimeRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	slog.Info("Overtime request status changed", "overtime_id", id, "status", updated.Status)
	resp := s.toResponse(ctx, updated)

	req := notification.CreateNotificationRequest{
		Type:    notification.WorkflowType(notification.SubjectOvertime, updated.Status),
		Title:   "Overtime request " + strings.ReplaceAll(string(updated.Status), "_", " "),
		Message: fmt.Sprintf("Your overtime request for %s is now %s", resp.OvertimeDate, strings.ReplaceAll(string(updated.Status), "_", " ")),
		Data:    map[string]interface{}{"overtime_id": updated.ID, "status": string(updated.Status)},
	}
	if updated.Status == workflow.StatusRejected && updated.RejectionReason != nil {
		req.Message += ": " + *updated.RejectionReason
	}
	s.notifier.NotifyEmployee(ctx, updated.EmployeeID, req)
	if updated.Status == workflow.StatusDepartmentApproved {
		s.notifier.NotifyRoles(ctx, []user.Role{user.RoleAdmin}, notification.CreateNotificationRequest{
			Type:    req.Type,
			Title:   "Overtime request awaiting final approval",
			Message: "A department-approved overtime request needs your decision",
			Data:    req.Data,
		})
	}
	return resp, nil
}

// coefficients maps overtime type id to its multiplier.
func (s *OvertimeServiceImpl) coefficients(ctx context.Context) (map[string]decimal.Decimal, error) {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime types: %w", err)
	}
	result := make(map[string]decimal.Decimal, len(types))
	for _, t := range types {
		result[t.ID] = t.Coefficient
	}
	return result, nil
}

func (s *OvertimeServiceImpl) toResponse(ctx context.Context, o overtime.Overtime) overtime.OvertimeResponse {
	var coefficient decimal.Decimal
	if t, err := s.typeRepo.GetByID(ctx, o.OvertimeTypeID); err == nil {
		coefficient = t.Coefficient
	}
	return overtime.ToOvertimeResponse(o, coefficient)
}
