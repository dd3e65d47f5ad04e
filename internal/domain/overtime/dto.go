package overtime

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOvertimeTypeRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Coefficient decimal.Decimal `json:"coefficient"`
	Description *string         `json:"description,omitempty"`
}

func (r *CreateOvertimeTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCode(r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if !r.Coefficient.IsPositive() {
		errs.Add("coefficient", "coefficient must be greater than zero")
	}

	return errs.Err()
}

type UpdateOvertimeTypeRequest struct {
	ID          string           `json:"-"`
	Code        *string          `json:"code,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Coefficient *decimal.Decimal `json:"coefficient,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r *UpdateOvertimeTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Code != nil && !validator.IsValidCode(*r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Coefficient != nil && !r.Coefficient.IsPositive() {
		errs.Add("coefficient", "coefficient must be greater than zero")
	}

	return errs.Err()
}

func (r *UpdateOvertimeTypeRequest) Apply(t *OvertimeType) {
	if r.Code != nil {
		t.Code = *r.Code
	}
	if r.Name != nil {
		t.Name = strings.TrimSpace(*r.Name)
	}
	if r.Coefficient != nil {
		t.Coefficient = *r.Coefficient
	}
	if r.Description != nil {
		t.Description = r.Description
	}
}

type OvertimeTypeResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Coefficient decimal.Decimal `json:"coefficient"`
	Description *string         `json:"description,omitempty"`
}

func ToOvertimeTypeResponse(t OvertimeType) OvertimeTypeResponse {
	return OvertimeTypeResponse{
		ID:          t.ID,
		Code:        t.Code,
		Name:        t.Name,
		Coefficient: t.Coefficient,
		Description: t.Description,
	}
}

type CreateOvertimeRequest struct {
	EmployeeID     string  `json:"employee_id"`
	OvertimeTypeID string  `json:"overtime_type_id"`
	DepartmentID   string  `json:"department_id"`
	OvertimeDate   string  `json:"overtime_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Reason         *string `json:"reason,omitempty"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.IsEmpty(r.OvertimeTypeID) {
		errs.Add("overtime_type_id", "overtime_type_id is required")
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs.Add("department_id", "department_id is required")
	}
	if _, ok := validator.IsValidDate(r.OvertimeDate); !ok {
		errs.Add("overtime_date", "overtime_date is required and must be in YYYY-MM-DD format")
	}
	if !utils.IsValidClock(r.StartTime) {
		errs.Add("start_time", "start_time is required and must be in HH:MM format")
	}
	if !utils.IsValidClock(r.EndTime) {
		errs.Add("end_time", "end_time is required and must be in HH:MM format")
	}

	return errs.Err()
}

// ToEntity builds a pending Overtime from a validated request. Hours are left to Recalculate.
func (r *CreateOvertimeRequest) ToEntity() Overtime {
	o := Overtime{
		EmployeeID:     r.EmployeeID,
		OvertimeTypeID: r.OvertimeTypeID,
		DepartmentID:   r.DepartmentID,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Reason:         r.Reason,
		Approval:       workflow.NewRequestApproval(),
	}
	o.OvertimeDate, _ = utils.ParseDate(r.OvertimeDate)
	return o
}

type UpdateOvertimeRequest struct {
	ID             string  `json:"-"`
	OvertimeTypeID *string `json:"overtime_type_id,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	OvertimeDate   *string `json:"overtime_date,omitempty"`
	StartTime      *string `json:"start_time,omitempty"`
	EndTime        *string `json:"end_time,omitempty"`
	Reason         *string `json:"reason,omitempty"`
}

func (r *UpdateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.OvertimeTypeID != nil && validator.IsEmpty(*r.OvertimeTypeID) {
		errs.Add("overtime_type_id", "overtime_type_id must not be empty")
	}
	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs.Add("department_id", "department_id must not be empty")
	}
	if r.OvertimeDate != nil {
		if _, ok := validator.IsValidDate(*r.OvertimeDate); !ok {
			errs.Add("overtime_date", "overtime_date must be in YYYY-MM-DD format")
		}
	}
	if r.StartTime != nil && !utils.IsValidClock(*r.StartTime) {
		errs.Add("start_time", "start_time must be in HH:MM format")
	}
	if r.EndTime != nil && !utils.IsValidClock(*r.EndTime) {
		errs.Add("end_time", "end_time must be in HH:MM format")
	}

	return errs.Err()
}

// Apply merges the request into o and reports whether the clock times changed.
func (r *UpdateOvertimeRequest) Apply(o *Overtime) (timesChanged bool) {
	if r.OvertimeTypeID != nil {
		o.OvertimeTypeID = *r.OvertimeTypeID
	}
	if r.DepartmentID != nil {
		o.DepartmentID = *r.DepartmentID
	}
	if r.OvertimeDate != nil {
		o.OvertimeDate, _ = utils.ParseDate(*r.OvertimeDate)
	}
	if r.Reason != nil {
		o.Reason = r.Reason
	}
	if r.StartTime != nil {
		o.StartTime = *r.StartTime
		timesChanged = true
	}
	if r.EndTime != nil {
		o.EndTime = *r.EndTime
		timesChanged = true
	}
	return timesChanged
}

type RejectOvertimeRequest struct {
	ID         string `json:"-"`
	RejecterID string `json:"-"`
	Reason     string `json:"reason"`
}

func (r *RejectOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	return errs.Err()
}

type OvertimeResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	OvertimeTypeID string          `json:"overtime_type_id"`
	DepartmentID   string          `json:"department_id"`
	OvertimeDate   string          `json:"overtime_date"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
	Hours          float64         `json:"hours"`
	Coefficient    decimal.Decimal `json:"coefficient"`
	WeightedHours  decimal.Decimal `json:"weighted_hours"`
	Reason         *string         `json:"reason,omitempty"`

	workflow.ApprovalResponse

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToOvertimeResponse renders o. coefficient is the multiplier of its type, zero when the
// type no longer exists.
func ToOvertimeResponse(o Overtime, coefficient decimal.Decimal) OvertimeResponse {
	return OvertimeResponse{
		ID:               o.ID,
		EmployeeID:       o.EmployeeID,
		OvertimeTypeID:   o.OvertimeTypeID,
		DepartmentID:     o.DepartmentID,
		OvertimeDate:     o.OvertimeDate.Format(utils.DateLayout),
		StartTime:        o.StartTime,
		EndTime:          o.EndTime,
		Hours:            o.Hours,
		Coefficient:      coefficient,
		WeightedHours:    WeightedHours(o.Hours, coefficient),
		Reason:           o.Reason,
		ApprovalResponse: o.Approval.ToResponse(),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
