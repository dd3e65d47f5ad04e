package report

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

const maxTextLength = 5000

type CreateWorkReportRequest struct {
	EmployeeID      string `json:"employee_id"`
	WeekStartDate   string `json:"week_start_date"`
	WeekEndDate     string `json:"week_end_date"`
	TasksCompleted  string `json:"tasks_completed"`
	TasksInProgress string `json:"tasks_in_progress"`
	NextWeekPlans   string `json:"next_week_plans"`
	Issues          string `json:"issues"`
}

func (r *CreateWorkReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}

	start, startOK := validator.IsValidDate(r.WeekStartDate)
	if !startOK {
		errs.Add("week_start_date", "week_start_date is required and must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.WeekEndDate)
	if !endOK {
		errs.Add("week_end_date", "week_end_date is required and must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("week_end_date", ErrInvalidDateRange.Error())
	}

	if validator.IsEmpty(r.TasksCompleted) {
		errs.Add("tasks_completed", "tasks_completed is required")
	}
	for field, text := range map[string]string{
		"tasks_completed":   r.TasksCompleted,
		"tasks_in_progress": r.TasksInProgress,
		"next_week_plans":   r.NextWeekPlans,
		"issues":            r.Issues,
	} {
		if len(text) > maxTextLength {
			errs.Add(field, field+" must not exceed 5000 characters")
		}
	}

	return errs.Err()
}

func (r *CreateWorkReportRequest) ToEntity() WorkReport {
	wr := WorkReport{
		EmployeeID:      r.EmployeeID,
		TasksCompleted:  r.TasksCompleted,
		TasksInProgress: r.TasksInProgress,
		NextWeekPlans:   r.NextWeekPlans,
		Issues:          r.Issues,
		Approval:        workflow.NewReportApproval(),
	}
	wr.WeekStartDate, _ = utils.ParseDate(r.WeekStartDate)
	wr.WeekEndDate, _ = utils.ParseDate(r.WeekEndDate)
	return wr
}

type UpdateWorkReportRequest struct {
	ID              string  `json:"-"`
	WeekStartDate   *string `json:"week_start_date,omitempty"`
	WeekEndDate     *string `json:"week_end_date,omitempty"`
	TasksCompleted  *string `json:"tasks_completed,omitempty"`
	TasksInProgress *string `json:"tasks_in_progress,omitempty"`
	NextWeekPlans   *string `json:"next_week_plans,omitempty"`
	Issues          *string `json:"issues,omitempty"`
}

func (r *UpdateWorkReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.WeekStartDate != nil {
		if _, ok := validator.IsValidDate(*r.WeekStartDate); !ok {
			errs.Add("week_start_date", "week_start_date must be in YYYY-MM-DD format")
		}
	}
	if r.WeekEndDate != nil {
		if _, ok := validator.IsValidDate(*r.WeekEndDate); !ok {
			errs.Add("week_end_date", "week_end_date must be in YYYY-MM-DD format")
		}
	}
	if r.TasksCompleted != nil && validator.IsEmpty(*r.TasksCompleted) {
		errs.Add("tasks_completed", "tasks_completed must not be empty")
	}

	return errs.Err()
}

func (r *UpdateWorkReportRequest) Apply(wr *WorkReport) {
	if r.WeekStartDate != nil {
		wr.WeekStartDate, _ = utils.ParseDate(*r.WeekStartDate)
	}
	if r.WeekEndDate != nil {
		wr.WeekEndDate, _ = utils.ParseDate(*r.WeekEndDate)
	}
	if r.TasksCompleted != nil {
		wr.TasksCompleted = *r.TasksCompleted
	}
	if r.TasksInProgress != nil {
		wr.TasksInProgress = *r.TasksInProgress
	}
	if r.NextWeekPlans != nil {
		wr.NextWeekPlans = *r.NextWeekPlans
	}
	if r.Issues != nil {
		wr.Issues = *r.Issues
	}
}

type RejectWorkReportRequest struct {
	ID         string `json:"-"`
	RejecterID string `json:"-"`
	Reason     string `json:"reason"`
}

func (r *RejectWorkReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	return errs.Err()
}

type WorkReportResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	WeekStartDate   string `json:"week_start_date"`
	WeekEndDate     string `json:"week_end_date"`
	TasksCompleted  string `json:"tasks_completed"`
	TasksInProgress string `json:"tasks_in_progress"`
	NextWeekPlans   string `json:"next_week_plans"`
	Issues          string `json:"issues"`

	workflow.ApprovalResponse

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(wr WorkReport) WorkReportResponse {
	return WorkReportResponse{
		ID:               wr.ID,
		EmployeeID:       wr.EmployeeID,
		WeekStartDate:    wr.WeekStartDate.Format(utils.DateLayout),
		WeekEndDate:      wr.WeekEndDate.Format(utils.DateLayout),
		TasksCompleted:   wr.TasksCompleted,
		TasksInProgress:  wr.TasksInProgress,
		NextWeekPlans:    wr.NextWeekPlans,
		Issues:           wr.Issues,
		ApprovalResponse: wr.Approval.ToResponse(),
		CreatedAt:        wr.CreatedAt,
		UpdatedAt:        wr.UpdatedAt,
	}
}
