package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

// DepartmentMembers resolves the employees of a department.
type DepartmentMembers interface {
	DepartmentEmployeeIDs(ctx context.Context, departmentID string) (map[string]struct{}, error)
}

type WorkReportServiceImpl struct {
	store        *memory.Store
	reportRepo   report.WorkReportRepository
	employeeRepo employee.EmployeeRepository
	members      DepartmentMembers
	machine      *workflow.Machine
	notifier     notification.Publisher
}

func NewWorkReportService(
	store *memory.Store,
	reportRepo report.WorkReportRepository,
	employeeRepo employee.EmployeeRepository,
	members DepartmentMembers,
	machine *workflow.Machine,
	notifier notification.Publisher,
) report.WorkReportService {
	if notifier == nil {
		notifier = notification.Discard
	}
	return &WorkReportServiceImpl{
		store:        store,
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
		members:      members,
		machine:      machine,
		notifier:     notifier,
	}
}

// CreateWorkReport stores a new draft report.
func (s *WorkReportServiceImpl) CreateWorkReport(ctx context.Context, req report.CreateWorkReportRequest) (report.WorkReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WorkReportResponse{}, err
	}

	var created report.WorkReport
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		var err error
		created, err = s.reportRepo.Create(ctx, req.ToEntity())
		if err != nil {
			return fmt.Errorf("failed to create work report: %w", err)
		}
		return nil
	})
	if err != nil {
		return report.WorkReportResponse{}, err
	}

	slog.Info("Work report created", "work_report_id", created.ID, "employee_id", created.EmployeeID)
	return report.ToResponse(created), nil
}

// GetWorkReport implements report.WorkReportService.
func (s *WorkReportServiceImpl) GetWorkReport(ctx context.Context, id string) (report.WorkReportResponse, error) {
	wr, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return report.WorkReportResponse{}, err
	}
	return report.ToResponse(wr), nil
}

// ListWorkReports implements report.WorkReportService.
func (s *WorkReportServiceImpl) ListWorkReports(ctx context.Context, criteria filter.Criteria, status *string) ([]report.WorkReportResponse, error) {
	if status != nil && !workflow.IsReportStatus(*status) {
		return nil, validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(workflow.ReportStatusValues, ", "),
		}}
	}

	var members map[string]struct{}
	if criteria.DepartmentID != nil {
		var err error
		members, err = s.members.DepartmentEmployeeIDs(ctx, *criteria.DepartmentID)
		if err != nil {
			return nil, err
		}
	}

	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work reports: %w", err)
	}

	responses := make([]report.WorkReportResponse, 0, len(reports))
	for _, wr := range reports {
		if !criteria.MatchMembers(wr.WeekStartDate, wr.EmployeeID, members) {
			continue
		}
		if status != nil && string(wr.Status) != *status {
			continue
		}
		responses = append(responses, report.ToResponse(wr))
	}
	return responses, nil
}

// UpdateWorkReport implements report.WorkReportService.
func (s *WorkReportServiceImpl) UpdateWorkReport(ctx context.Context, req report.UpdateWorkReportRequest) (report.WorkReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WorkReportResponse{}, err
	}

	var updated report.WorkReport
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		wr, err := s.reportRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&wr)
		if wr.WeekEndDate.Before(wr.WeekStartDate) {
			return report.ErrInvalidDateRange
		}
		found, err := s.reportRepo.Update(ctx, wr)
		if err != nil {
			return fmt.Errorf("failed to update work report: %w", err)
		}
		if !found {
			return report.ErrWorkReportNotFound
		}
		updated, err = s.reportRepo.GetByID(ctx, wr.ID)
		return err
	})
	if err != nil {
		return report.WorkReportResponse{}, err
	}
	return report.ToResponse(updated), nil
}

// DeleteWorkReport implements report.WorkReportService.
func (s *WorkReportServiceImpl) DeleteWorkReport(ctx context.Context, id string) error {
	found, err := s.reportRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete work report: %w", err)
	}
	if found {
		slog.Info("Work report deleted", "work_report_id", id)
	}
	return nil
}

// SubmitWorkReport moves a draft to submitted.
func (s *WorkReportServiceImpl) SubmitWorkReport(ctx context.Context, id string) (report.WorkReportResponse, error) {
	wr, err := s.transition(ctx, id, s.machine.Submit)
	if err != nil {
		return report.WorkReportResponse{}, err
	}
	s.notifier.NotifyRoles(ctx, []user.Role{user.RoleManager, user.RoleAdmin}, notification.CreateNotificationRequest{
		Type:    notification.WorkflowType(notification.SubjectWorkReport, workflow.Status(wr.Status)),
		Title:   "Work report submitted",
		Message: fmt.Sprintf("A work report for the week of %s is ready for review", wr.WeekStartDate),
		Data:    map[string]interface{}{"work_report_id": wr.ID, "employee_id": wr.EmployeeID},
	})
	return wr, nil
}

// ApproveWorkReport implements report.WorkReportService.
func (s *WorkReportServiceImpl) ApproveWorkReport(ctx context.Context, id, approverID string) (report.WorkReportResponse, error) {
	wr, err := s.transition(ctx, id, func(a *workflow.Approval) error {
		return s.machine.Approve(a, approverID)
	})
	if err != nil {
		return report.WorkReportResponse{}, err
	}
	s.notifyReviewed(ctx, wr, "Your work report for the week of "+wr.WeekStartDate+" was approved")
	return wr, nil
}

// RejectWorkReport implements report.WorkReportService.
func (s *WorkReportServiceImpl) RejectWorkReport(ctx context.Context, req report.RejectWorkReportRequest) (report.WorkReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WorkReportResponse{}, err
	}
	wr, err := s.transition(ctx, req.ID, func(a *workflow.Approval) error {
		return s.machine.Reject(a, req.RejecterID, req.Reason)
	})
	if err != nil {
		return report.WorkReportResponse{}, err
	}
	s.notifyReviewed(ctx, wr, "Your work report for the week of "+wr.WeekStartDate+" was rejected: "+*wr.RejectionReason)
	return wr, nil
}

func (s *WorkReportServiceImpl) notifyReviewed(ctx context.Context, wr report.WorkReportResponse, message string) {
	s.notifier.NotifyEmployee(ctx, wr.EmployeeID, notification.CreateNotificationRequest{
		Type:    notification.WorkflowType(notification.SubjectWorkReport, workflow.Status(wr.Status)),
		Title:   "Work report reviewed",
		Message: message,
		Data:    map[string]interface{}{"work_report_id": wr.ID, "status": wr.Status},
	})
}

func (s *WorkReportServiceImpl) transition(ctx context.Context, id string, step func(*workflow.Approval) error) (report.WorkReportResponse, error) {
	var updated report.WorkReport
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		wr, err := s.reportRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := step(&wr.Approval); err != nil {
			return err
		}
		found, err := s.reportRepo.Update(ctx, wr)
		if err != nil {
			return fmt.Errorf("failed to update work report: %w", err)
		}
		if !found {
			return report.ErrWorkReportNotFound
		}
		updated, err = s.reportRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return report.WorkReportResponse{}, err
	}

	slog.Info("Work report status changed", "work_report_id", id, "status", updated.Status)
	return report.ToResponse(updated), nil
}
