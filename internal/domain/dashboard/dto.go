package dashboard

import (
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/shopspring/decimal"
)

// StatusSummary counts leave or overtime requests by status.
type StatusSummary struct {
	Total              int `json:"total"`
	Pending            int `json:"pending"`
	DepartmentApproved int `json:"department_approved"`
	Approved           int `json:"approved"`
	Rejected           int `json:"rejected"`
}

// Add counts one record.
func (s *StatusSummary) Add(status workflow.Status) {
	s.Total++
	switch status {
	case workflow.StatusPending:
		s.Pending++
	case workflow.StatusDepartmentApproved:
		s.DepartmentApproved++
	case workflow.StatusApproved:
		s.Approved++
	case workflow.StatusRejected:
		s.Rejected++
	}
}

type LeaveSummary struct {
	StatusSummary
	ApprovedDays int `json:"approved_days"`
}

type OvertimeSummary struct {
	StatusSummary
	ApprovedHours         float64         `json:"approved_hours"`
	ApprovedWeightedHours decimal.Decimal `json:"approved_weighted_hours"`
}

type WorkReportSummary struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	Submitted int `json:"submitted"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
}

func (s *WorkReportSummary) Add(status workflow.Status) {
	s.Total++
	switch status {
	case workflow.StatusDraft:
		s.Draft++
	case workflow.StatusSubmitted:
		s.Submitted++
	case workflow.StatusApproved:
		s.Approved++
	case workflow.StatusRejected:
		s.Rejected++
	}
}

type EmployeeSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type DashboardResponse struct {
	From         string            `json:"from,omitempty"`
	To           string            `json:"to,omitempty"`
	DepartmentID *string           `json:"department_id,omitempty"`
	EmployeeID   *string           `json:"employee_id,omitempty"`
	Employees    EmployeeSummary   `json:"employees"`
	Leaves       LeaveSummary      `json:"leaves"`
	Overtimes    OvertimeSummary   `json:"overtimes"`
	WorkReports  WorkReportSummary `json:"work_reports"`
}
