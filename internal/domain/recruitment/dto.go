package recruitment

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

type CreateJobOpeningRequest struct {
	Title        string  `json:"title"`
	DepartmentID string  `json:"department_id"`
	PositionID   *string `json:"position_id,omitempty"`
	Quantity     int     `json:"quantity"`
	Description  *string `json:"description,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
}

func (r *CreateJobOpeningRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	} else if len(r.Title) > 255 {
		errs.Add("title", "title must not exceed 255 characters")
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs.Add("department_id", "department_id is required")
	}
	if r.Quantity <= 0 {
		errs.Add("quantity", "quantity must be a positive integer")
	}
	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs.Add("deadline", "deadline must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

func (r *CreateJobOpeningRequest) ToEntity() JobOpening {
	o := JobOpening{
		Title:        strings.TrimSpace(r.Title),
		DepartmentID: r.DepartmentID,
		PositionID:   r.PositionID,
		Quantity:     r.Quantity,
		Description:  r.Description,
		Status:       OpeningStatusOpen,
	}
	if r.Deadline != nil {
		d, _ := utils.ParseDate(*r.Deadline)
		o.Deadline = &d
	}
	return o
}

type UpdateJobOpeningRequest struct {
	ID           string  `json:"-"`
	Title        *string `json:"title,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	PositionID   *string `json:"position_id,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
	Description  *string `json:"description,omitempty"`
	Status       *string `json:"status,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
}

func (r *UpdateJobOpeningRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs.Add("title", "title must not be empty")
	}
	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs.Add("department_id", "department_id must not be empty")
	}
	if r.Quantity != nil && *r.Quantity <= 0 {
		errs.Add("quantity", "quantity must be a positive integer")
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, OpeningStatusValues) {
		errs.Add("status", "status must be one of: open, closed")
	}
	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs.Add("deadline", "deadline must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

func (r *UpdateJobOpeningRequest) Apply(o *JobOpening) {
	if r.Title != nil {
		o.Title = strings.TrimSpace(*r.Title)
	}
	if r.DepartmentID != nil {
		o.DepartmentID = *r.DepartmentID
	}
	if r.PositionID != nil {
		o.PositionID = r.PositionID
	}
	if r.Quantity != nil {
		o.Quantity = *r.Quantity
	}
	if r.Description != nil {
		o.Description = r.Description
	}
	if r.Status != nil {
		o.Status = OpeningStatus(*r.Status)
	}
	if r.Deadline != nil {
		d, _ := utils.ParseDate(*r.Deadline)
		o.Deadline = &d
	}
}

type JobOpeningFilter struct {
	DepartmentID *string
	Status       *string
}

type JobOpeningResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	DepartmentID   string    `json:"department_id"`
	PositionID     *string   `json:"position_id,omitempty"`
	Quantity       int       `json:"quantity"`
	Description    *string   `json:"description,omitempty"`
	Status         string    `json:"status"`
	Deadline       *string   `json:"deadline,omitempty"`
	CandidateCount int       `json:"candidate_count"`
	HiredCount     int       `json:"hired_count"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToJobOpeningResponse(o JobOpening, candidates []Candidate) JobOpeningResponse {
	resp := JobOpeningResponse{
		ID:             o.ID,
		Title:          o.Title,
		DepartmentID:   o.DepartmentID,
		PositionID:     o.PositionID,
		Quantity:       o.Quantity,
		Description:    o.Description,
		Status:         string(o.Status),
		CandidateCount: len(candidates),
		CreatedAt:      o.CreatedAt,
	}
	if o.Deadline != nil {
		d := o.Deadline.Format(utils.DateLayout)
		resp.Deadline = &d
	}
	for _, c := range candidates {
		if c.Stage == StageHired {
			resp.HiredCount++
		}
	}
	return resp
}

type CreateCandidateRequest struct {
	JobOpeningID string  `json:"job_opening_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	AppliedDate  string  `json:"applied_date,omitempty"`
	Note         *string `json:"note,omitempty"`
}

func (r *CreateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobOpeningID) {
		errs.Add("job_opening_id", "job_opening_id is required")
	}
	if validator.IsEmpty(r.FullName) {
		errs.Add("full_name", "full_name is required")
	}
	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email is required and must be valid")
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs.Add("phone_number", "phone_number must contain 9-15 digits")
	}
	if r.AppliedDate != "" {
		if _, ok := validator.IsValidDate(r.AppliedDate); !ok {
			errs.Add("applied_date", "applied_date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// ToEntity builds a candidate in the applied stage. today is used when no applied date was sent.
func (r *CreateCandidateRequest) ToEntity(today time.Time) Candidate {
	c := Candidate{
		JobOpeningID: r.JobOpeningID,
		FullName:     strings.TrimSpace(r.FullName),
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		PhoneNumber:  r.PhoneNumber,
		Stage:        StageApplied,
		AppliedDate:  today,
		Note:         r.Note,
	}
	if r.AppliedDate != "" {
		c.AppliedDate, _ = utils.ParseDate(r.AppliedDate)
	}
	return c
}

type UpdateCandidateRequest struct {
	ID          string  `json:"-"`
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Note        *string `json:"note,omitempty"`
}

func (r *UpdateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
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

	return errs.Err()
}

func (r *UpdateCandidateRequest) Apply(c *Candidate) {
	if r.FullName != nil {
		c.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.PhoneNumber != nil {
		c.PhoneNumber = r.PhoneNumber
	}
	if r.Note != nil {
		c.Note = r.Note
	}
}

type MoveCandidateRequest struct {
	ID    string  `json:"-"`
	Stage string  `json:"stage"`
	Note  *string `json:"note,omitempty"`
}

func (r *MoveCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if !validator.IsInSlice(r.Stage, StageValues) {
		errs.Add("stage", "stage must be one of: "+strings.Join(StageValues, ", "))
	}

	return errs.Err()
}

type CandidateResponse struct {
	ID           string    `json:"id"`
	JobOpeningID string    `json:"job_opening_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PhoneNumber  *string   `json:"phone_number,omitempty"`
	Stage        string    `json:"stage"`
	AppliedDate  string    `json:"applied_date"`
	Note         *string   `json:"note,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToCandidateResponse(c Candidate) CandidateResponse {
	return CandidateResponse{
		ID:           c.ID,
		JobOpeningID: c.JobOpeningID,
		FullName:     c.FullName,
		Email:        c.Email,
		PhoneNumber:  c.PhoneNumber,
		Stage:        string(c.Stage),
		AppliedDate:  c.AppliedDate.Format(utils.DateLayout),
		Note:         c.Note,
		UpdatedAt:    c.UpdatedAt,
	}
}
