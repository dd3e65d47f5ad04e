package organization

import (
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

type CreateOrganizationRequest struct {
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

func (r *CreateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}
	if !validator.IsValidCode(r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone must contain 9-15 digits")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email is invalid")
	}

	return errs.Err()
}

type UpdateOrganizationRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name,omitempty"`
	Code    *string `json:"code,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

func (r *UpdateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Code != nil && !validator.IsValidCode(*r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone must contain 9-15 digits")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email is invalid")
	}

	return errs.Err()
}

func (r *UpdateOrganizationRequest) Apply(o *Organization) {
	if r.Name != nil {
		o.Name = strings.TrimSpace(*r.Name)
	}
	if r.Code != nil {
		o.Code = *r.Code
	}
	if r.Address != nil {
		o.Address = r.Address
	}
	if r.Phone != nil {
		o.Phone = r.Phone
	}
	if r.Email != nil {
		o.Email = r.Email
	}
}

type CreateDepartmentRequest struct {
	OrganizationID string  `json:"organization_id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	ManagerID      *string `json:"manager_id,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OrganizationID) {
		errs.Add("organization_id", "organization_id is required")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}
	if !validator.IsValidCode(r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}

	return errs.Err()
}

type UpdateDepartmentRequest struct {
	ID             string  `json:"-"`
	OrganizationID *string `json:"organization_id,omitempty"`
	Name           *string `json:"name,omitempty"`
	Code           *string `json:"code,omitempty"`
	ManagerID      *string `json:"manager_id,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.OrganizationID != nil && validator.IsEmpty(*r.OrganizationID) {
		errs.Add("organization_id", "organization_id must not be empty")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Code != nil && !validator.IsValidCode(*r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}

	return errs.Err()
}

func (r *UpdateDepartmentRequest) Apply(d *Department) {
	if r.OrganizationID != nil {
		d.OrganizationID = *r.OrganizationID
	}
	if r.Name != nil {
		d.Name = strings.TrimSpace(*r.Name)
	}
	if r.Code != nil {
		d.Code = *r.Code
	}
	if r.ManagerID != nil {
		d.ManagerID = r.ManagerID
	}
	if r.Description != nil {
		d.Description = r.Description
	}
}

type DepartmentResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	ManagerID      *string `json:"manager_id,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Code:           d.Code,
		ManagerID:      d.ManagerID,
		Description:    d.Description,
	}
}

type OrganizationResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Code        string               `json:"code"`
	Address     *string              `json:"address,omitempty"`
	Phone       *string              `json:"phone,omitempty"`
	Email       *string              `json:"email,omitempty"`
	Departments []DepartmentResponse `json:"departments"`
}

func ToOrganizationResponse(o Organization, departments []Department) OrganizationResponse {
	resp := OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Code:        o.Code,
		Address:     o.Address,
		Phone:       o.Phone,
		Email:       o.Email,
		Departments: make([]DepartmentResponse, 0, len(departments)),
	}
	for _, d := range departments {
		resp.Departments = append(resp.Departments, ToDepartmentResponse(d))
	}
	return resp
}
