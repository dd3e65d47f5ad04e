package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	HireDate         string  `json:"hire_date"`
	EmploymentStatus string  `json:"employment_status,omitempty"`
	Address          *string `json:"address,omitempty"`

	DepartmentIDs []string `json:"department_ids,omitempty"`
	PositionIDs   []string `json:"position_ids,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs.Add("employee_code", "employee_code is required")
	} else if !validator.IsValidCode(r.EmployeeCode) {
		errs.Add("employee_code", "employee_code must be 2-20 upper-case letters, digits, '-' or '_'")
	}

	if validator.IsEmpty(r.FullName) {
		errs.Add("full_name", "full_name is required")
	} else if len(r.FullName) > 255 {
		errs.Add("full_name", "full_name must not exceed 255 characters")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email is invalid")
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs.Add("phone_number", "phone_number must contain 9-15 digits")
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, GenderValues) {
		errs.Add("gender", "gender must be one of: male, female")
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		}
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs.Add("hire_date", "hire_date is required and must be in YYYY-MM-DD format")
	}

	if r.EmploymentStatus != "" && !validator.IsInSlice(r.EmploymentStatus, EmploymentStatusValues) {
		errs.Add("employment_status", "employment_status must be one of: active, resigned, terminated")
	}

	return errs.Err()
}

// ToEntity builds an Employee from a validated request.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	e := Employee{
		EmployeeCode:     strings.TrimSpace(r.EmployeeCode),
		FullName:         strings.TrimSpace(r.FullName),
		Email:            strings.ToLower(strings.TrimSpace(r.Email)),
		PhoneNumber:      r.PhoneNumber,
		Address:          r.Address,
		EmploymentStatus: EmploymentStatusActive,
	}
	if r.EmploymentStatus != "" {
		e.EmploymentStatus = EmploymentStatus(r.EmploymentStatus)
	}
	if r.Gender != nil {
		g := Gender(*r.Gender)
		e.Gender = &g
	}
	if r.DateOfBirth != nil {
		dob, _ := utils.ParseDate(*r.DateOfBirth)
		e.DateOfBirth = &dob
	}
	e.HireDate, _ = utils.ParseDate(r.HireDate)
	return e
}

// UpdateEmployeeRequest is a partial update: nil fields keep their current value.
type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	EmployeeCode     *string `json:"employee_code,omitempty"`
	FullName         *string `json:"full_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	HireDate         *string `json:"hire_date,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
	Address          *string `json:"address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.EmployeeCode != nil && !validator.IsValidCode(*r.EmployeeCode) {
		errs.Add("employee_code", "employee_code must be 2-20 upper-case letters, digits, '-' or '_'")
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs.Add("full_name", "full_name must not be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email is invalid")
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs.Add("phone_number", "phone_number must contain 9-15 digits")
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, GenderValues) {
		errs.Add("gender", "gender must be one of: male, female")
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		}
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
		}
	}
	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, EmploymentStatusValues) {
		errs.Add("employment_status", "employment_status must be one of: active, resigned, terminated")
	}

	return errs.Err()
}

// Apply merges the request into e. Fields present in the request win.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.EmployeeCode != nil {
		e.EmployeeCode = strings.TrimSpace(*r.EmployeeCode)
	}
	if r.FullName != nil {
		e.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.PhoneNumber != nil {
		e.PhoneNumber = r.PhoneNumber
	}
	if r.Gender != nil {
		g := Gender(*r.Gender)
		e.Gender = &g
	}
	if r.DateOfBirth != nil {
		dob, _ := utils.ParseDate(*r.DateOfBirth)
		e.DateOfBirth = &dob
	}
	if r.HireDate != nil {
		e.HireDate, _ = utils.ParseDate(*r.HireDate)
	}
	if r.EmploymentStatus != nil {
		e.EmploymentStatus = EmploymentStatus(*r.EmploymentStatus)
	}
	if r.Address != nil {
		e.Address = r.Address
	}
}

type EmployeeFilter struct {
	DepartmentID     *string
	PositionID       *string
	EmploymentStatus *string
	Search           *string
}

type EmployeeResponse struct {
	ID               string    `json:"id"`
	EmployeeCode     string    `json:"employee_code"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PhoneNumber      *string   `json:"phone_number,omitempty"`
	Gender           *string   `json:"gender,omitempty"`
	DateOfBirth      *string   `json:"date_of_birth,omitempty"`
	HireDate         string    `json:"hire_date"`
	EmploymentStatus string    `json:"employment_status"`
	Address          *string   `json:"address,omitempty"`
	DepartmentIDs    []string  `json:"department_ids"`
	PositionIDs      []string  `json:"position_ids"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToResponse(e Employee, departmentIDs, positionIDs []string) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		Email:            e.Email,
		PhoneNumber:      e.PhoneNumber,
		HireDate:         e.HireDate.Format(utils.DateLayout),
		EmploymentStatus: string(e.EmploymentStatus),
		Address:          e.Address,
		DepartmentIDs:    departmentIDs,
		PositionIDs:      positionIDs,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if resp.DepartmentIDs == nil {
		resp.DepartmentIDs = []string{}
	}
	if resp.PositionIDs == nil {
		resp.PositionIDs = []string{}
	}
	if e.Gender != nil {
		g := string(*e.Gender)
		resp.Gender = &g
	}
	if e.DateOfBirth != nil {
		dob := e.DateOfBirth.Format(utils.DateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}
