package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	MaxDaysPerYear *int    `json:"max_days_per_year,omitempty"`
	IsPaid         bool    `json:"is_paid"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCode(r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	if r.MaxDaysPerYear != nil && *r.MaxDaysPerYear <= 0 {
		errs.Add("max_days_per_year", "max_days_per_year must be a positive integer")
	}

	return errs.Err()
}

type UpdateLeaveTypeRequest struct {
	ID             string  `json:"-"`
	Code           *string `json:"code,omitempty"`
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	MaxDaysPerYear *int    `json:"max_days_per_year,omitempty"`
	IsPaid         *bool   `json:"is_paid,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Leave type id
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}

	if r.Code != nil && !validator.IsValidCode(*r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs.Add("name", "name must not be empty")
		}
		if len(*r.Name) > 255 {
			errs.Add("name", "name must not exceed 255 characters")
		}
	}

	if r.MaxDaysPerYear != nil && *r.MaxDaysPerYear <= 0 {
		errs.Add("max_days_per_year", "max_days_per_year must be a positive integer")
	}

	return errs.Err()
}

func (r *UpdateLeaveTypeRequest) Apply(t *LeaveType) {
	if r.Code != nil {
		t.Code = *r.Code
	}
	if r.Name != nil {
		t.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		t.Description = r.Description
	}
	if r.MaxDaysPerYear != nil {
		t.MaxDaysPerYear = r.MaxDaysPerYear
	}
	if r.IsPaid != nil {
		t.IsPaid = *r.IsPaid
	}
}

type LeaveTypeResponse struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	MaxDaysPerYear *int    `json:"max_days_per_year,omitempty"`
	IsPaid         bool    `json:"is_paid"`
}

func ToLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:             t.ID,
		Code:           t.Code,
		Name:           t.Name,
		Description:    t.Description,
		MaxDaysPerYear: t.MaxDaysPerYear,
		IsPaid:         t.IsPaid,
	}
}

type CreateLeaveRequest struct {
	EmployeeID   string  `json:"employee_id"`
	LeaveTypeID  string  `json:"leave_type_id"`
	DepartmentID string  `json:"department_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs.Add("leave_type_id", "leave_type_id is required")
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs.Add("department_id", "department_id is required")
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date is required and must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date is required and must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if r.Reason != nil && len(*r.Reason) > 1000 {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.Err()
}

// ToEntity builds a pending Leave from a validated request.
func (r *CreateLeaveRequest) ToEntity() Leave {
	l := Leave{
		EmployeeID:   r.EmployeeID,
		LeaveTypeID:  r.LeaveTypeID,
		DepartmentID: r.DepartmentID,
		Reason:       r.Reason,
		Approval:     workflow.NewRequestApproval(),
	}
	l.StartDate, _ = utils.ParseDate(r.StartDate)
	l.EndDate, _ = utils.ParseDate(r.EndDate)
	l.Recalculate()
	return l
}

// UpdateLeaveRequest carries only the fields to change. Status is driven by the workflow endpoints.
type UpdateLeaveRequest struct {
	ID           string  `json:"-"`
	LeaveTypeID  *string `json:"leave_type_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.LeaveTypeID != nil && validator.IsEmpty(*r.LeaveTypeID) {
		errs.Add("leave_type_id", "leave_type_id must not be empty")
	}
	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs.Add("department_id", "department_id must not be empty")
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// Apply merges the request into l and recomputes the day count when a date changed.
func (r *UpdateLeaveRequest) Apply(l *Leave) {
	if r.LeaveTypeID != nil {
		l.LeaveTypeID = *r.LeaveTypeID
	}
	if r.DepartmentID != nil {
		l.DepartmentID = *r.DepartmentID
	}
	if r.Reason != nil {
		l.Reason = r.Reason
	}
	if r.StartDate != nil {
		l.StartDate, _ = utils.ParseDate(*r.StartDate)
	}
	if r.EndDate != nil {
		l.EndDate, _ = utils.ParseDate(*r.EndDate)
	}
	if r.StartDate != nil || r.EndDate != nil {
		l.Recalculate()
	}
}

type RejectLeaveRequest struct {
	ID         string `json:"-"`
	RejecterID string `json:"-"`
	Reason     string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	} else if len(r.Reason) > 1000 {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.Err()
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	LeaveTypeID  string  `json:"leave_type_id"`
	DepartmentID string  `json:"department_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	NumberOfDays int     `json:"number_of_days"`
	Reason       *string `json:"reason,omitempty"`

	workflow.ApprovalResponse

	// Relationships (for responses)
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:               l.ID,
		EmployeeID:       l.EmployeeID,
		LeaveTypeID:      l.LeaveTypeID,
		DepartmentID:     l.DepartmentID,
		StartDate:        l.StartDate.Format(utils.DateLayout),
		EndDate:          l.EndDate.Format(utils.DateLayout),
		NumberOfDays:     l.NumberOfDays,
		Reason:           l.Reason,
		ApprovalResponse: l.Approval.ToResponse(),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
