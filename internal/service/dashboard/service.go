package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DepartmentMembers resolves the employees of a department.
type DepartmentMembers interface {
	DepartmentEmployeeIDs(ctx context.Context, departmentID string) (map[string]struct{}, error)
}

type DashboardServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	leaveRepo        leave.LeaveRepository
	overtimeRepo     overtime.OvertimeRepository
	overtimeTypeRepo overtime.OvertimeTypeRepository
	reportRepo       report.WorkReportRepository
	members          DepartmentMembers
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	overtimeRepo overtime.OvertimeRepository,
	overtimeTypeRepo overtime.OvertimeTypeRepository,
	reportRepo report.WorkReportRepository,
	members DepartmentMembers,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:     employeeRepo,
		leaveRepo:        leaveRepo,
		overtimeRepo:     overtimeRepo,
		overtimeTypeRepo: overtimeTypeRepo,
		reportRepo:       reportRepo,
		members:          members,
	}
}

// GetDashboard computes every summary in parallel over the same criteria.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, criteria filter.Criteria) (*dashboard.DashboardResponse, error) {
	var (
		employees   dashboard.EmployeeSummary
		leaves      dashboard.LeaveSummary
		overtimes   dashboard.OvertimeSummary
		workReports dashboard.WorkReportSummary
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.getEmployeeSummary(gCtx, criteria)
		return err
	})

	g.Go(func() error {
		var err error
		leaves, err = s.GetLeaveSummary(gCtx, criteria)
		return err
	})

	g.Go(func() error {
		var err error
		overtimes, err = s.GetOvertimeSummary(gCtx, criteria)
		return err
	})

	g.Go(func() error {
		var err error
		workReports, err = s.GetWorkReportSummary(gCtx, criteria)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		From:         criteria.StartDate(),
		To:           criteria.EndDate(),
		DepartmentID: criteria.DepartmentID,
		EmployeeID:   criteria.EmployeeID,
		Employees:    employees,
		Leaves:       leaves,
		Overtimes:    overtimes,
		WorkReports:  workReports,
	}, nil
}

// GetLeaveSummary counts leaves by status over their start date.
func (s *DashboardServiceImpl) GetLeaveSummary(ctx context.Context, criteria filter.Criteria) (dashboard.LeaveSummary, error) {
	leaves, err := s.leaveRepo.List(ctx)
	if err != nil {
		return dashboard.LeaveSummary{}, fmt.Errorf("failed to list leaves: %w", err)
	}

	var summary dashboard.LeaveSummary
	for _, l := range leaves {
		if !criteria.Match(l.StartDate, l.DepartmentID, l.EmployeeID) {
			continue
		}
		summary.Add(l.Status)
		if l.Status == workflow.StatusApproved {
			summary.ApprovedDays += l.NumberOfDays
		}
	}
	return summary, nil
}

// GetOvertimeSummary counts overtimes by status over their overtime date. Approved hours are
// summed raw and weighted by the coefficient of each record's type.
func (s *DashboardServiceImpl) GetOvertimeSummary(ctx context.Context, criteria filter.Criteria) (dashboard.OvertimeSummary, error) {
	overtimes, err := s.overtimeRepo.List(ctx)
	if err != nil {
		return dashboard.OvertimeSummary{}, fmt.Errorf("failed to list overtimes: %w", err)
	}
	types, err := s.overtimeTypeRepo.List(ctx)
	if err != nil {
		return dashboard.OvertimeSummary{}, fmt.Errorf("failed to list overtime types: %w", err)
	}
	coefficients := make(map[string]decimal.Decimal, len(types))
	for _, t := range types {
		coefficients[t.ID] = t.Coefficient
	}

	summary := dashboard.OvertimeSummary{ApprovedWeightedHours: decimal.Zero}
	for _, o := range overtimes {
		if !criteria.Match(o.OvertimeDate, o.DepartmentID, o.EmployeeID) {
			continue
		}
		summary.Add(o.Status)
		if o.Status == workflow.StatusApproved {
			summary.ApprovedHours += o.Hours
			summary.ApprovedWeightedHours = summary.ApprovedWeightedHours.Add(
				overtime.WeightedHours(o.Hours, coefficients[o.OvertimeTypeID]),
			)
		}
	}
	return summary, nil
}

// GetWorkReportSummary counts reports by status over their week start date.
func (s *DashboardServiceImpl) GetWorkReportSummary(ctx context.Context, criteria filter.Criteria) (dashboard.WorkReportSummary, error) {
	members, err := s.departmentMembers(ctx, criteria)
	if err != nil {
		return dashboard.WorkReportSummary{}, err
	}
	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return dashboard.WorkReportSummary{}, fmt.Errorf("failed to list work reports: %w", err)
	}

	var summary dashboard.WorkReportSummary
	for _, wr := range reports {
		if criteria.MatchMembers(wr.WeekStartDate, wr.EmployeeID, members) {
			summary.Add(wr.Status)
		}
	}
	return summary, nil
}

// getEmployeeSummary ignores the date range; headcount is a point-in-time figure.
func (s *DashboardServiceImpl) getEmployeeSummary(ctx context.Context, criteria filter.Criteria) (dashboard.EmployeeSummary, error) {
	members, err := s.departmentMembers(ctx, criteria)
	if err != nil {
		return dashboard.EmployeeSummary{}, err
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return dashboard.EmployeeSummary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	headcount := filter.Criteria{DepartmentID: criteria.DepartmentID, EmployeeID: criteria.EmployeeID}
	var summary dashboard.EmployeeSummary
	for _, e := range employees {
		if !headcount.MatchMembers(e.HireDate, e.ID, members) {
			continue
		}
		summary.Total++
		if e.EmploymentStatus == employee.EmploymentStatusActive {
			summary.Active++
		}
	}
	return summary, nil
}

func (s *DashboardServiceImpl) departmentMembers(ctx context.Context, criteria filter.Criteria) (map[string]struct{}, error) {
	if criteria.DepartmentID == nil {
		return nil, nil
	}
	return s.members.DepartmentEmployeeIDs(ctx, *criteria.DepartmentID)
}
