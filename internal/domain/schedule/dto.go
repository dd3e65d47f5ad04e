package schedule

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

const maxOccurrenceRangeDays = 366

type CreateWorkShiftRequest struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	BreakMinutes   int      `json:"break_minutes"`
	StartDate      string   `json:"start_date"`
	RecurrenceRule *string  `json:"recurrence_rule,omitempty"`
	ExceptionDates []string `json:"exception_dates,omitempty"`
	Description    *string  `json:"description,omitempty"`
}

func (r *CreateWorkShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCode(r.Code) {
		errs.Add("code", "code must be 2-20 upper-case letters, digits, '-' or '_'")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}
	if !utils.IsValidClock(r.StartTime) {
		errs.Add("start_time", "start_time is required and must be in HH:MM format")
	}
	if !utils.IsValidClock(r.EndTime) {
		errs.Add("end_time", "end_time is required and must be in HH:MM format")
	}
	if r.BreakMinutes < 0 {
		errs.Add("break_minutes", "break_minutes must not be negative")
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs.Add("start_date", "start_date is required and must be in YYYY-MM-DD format")
	} else if r.RecurrenceRule != nil && !validator.IsEmpty(*r.RecurrenceRule) {
		if _, err := ParseRecurrence(*r.RecurrenceRule, start); err != nil {
			errs.Add("recurrence_rule", err.Error())
		}
	}
	validateExceptionDates(&errs, r.ExceptionDates)

	if len(errs) == 0 {
		shift := r.ToEntity()
		if hours, err := shift.Hours(); err == nil && hours <= 0 {
			errs.Add("break_minutes", "break_minutes must be shorter than the shift")
		}
	}

	return errs.Err()
}

func (r *CreateWorkShiftRequest) ToEntity() WorkShift {
	s := WorkShift{
		Code:           r.Code,
		Name:           strings.TrimSpace(r.Name),
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		BreakMinutes:   r.BreakMinutes,
		RecurrenceRule: normalizeRule(r.RecurrenceRule),
		ExceptionDates: parseDates(r.ExceptionDates),
		Description:    r.Description,
	}
	s.StartDate, _ = utils.ParseDate(r.StartDate)
	return s
}

type UpdateWorkShiftRequest struct {
	ID             string    `json:"-"`
	Code           *string   `json:"code,omitempty"`
	Name           *string   `json:"name,omitempty"`
	StartTime      *string   `json:"start_time,omitempty"`
	EndTime        *string   `json:"end_time,omitempty"`
	BreakMinutes   *int      `json:"break_minutes,omitempty"`
	StartDate      *string   `json:"start_date,omitempty"`
	RecurrenceRule *string   `json:"recurrence_rule,omitempty"`
	ExceptionDates *[]string `json:"exception_dates,omitempty"`
	Description    *string   `json:"description,omitempty"`
}

func (r *UpdateWorkShiftRequest) Validate() error {
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
	if r.StartTime != nil && !utils.IsValidClock(*r.StartTime) {
		errs.Add("start_time", "start_time must be in HH:MM format")
	}
	if r.EndTime != nil && !utils.IsValidClock(*r.EndTime) {
		errs.Add("end_time", "end_time must be in HH:MM format")
	}
	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs.Add("break_minutes", "break_minutes must not be negative")
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if r.ExceptionDates != nil {
		validateExceptionDates(&errs, *r.ExceptionDates)
	}

	return errs.Err()
}

// Apply merges the request into s. An empty recurrence_rule clears the rule.
func (r *UpdateWorkShiftRequest) Apply(s *WorkShift) {
	if r.Code != nil {
		s.Code = *r.Code
	}
	if r.Name != nil {
		s.Name = strings.TrimSpace(*r.Name)
	}
	if r.StartTime != nil {
		s.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		s.EndTime = *r.EndTime
	}
	if r.BreakMinutes != nil {
		s.BreakMinutes = *r.BreakMinutes
	}
	if r.StartDate != nil {
		s.StartDate, _ = utils.ParseDate(*r.StartDate)
	}
	if r.RecurrenceRule != nil {
		s.RecurrenceRule = normalizeRule(r.RecurrenceRule)
	}
	if r.ExceptionDates != nil {
		s.ExceptionDates = parseDates(*r.ExceptionDates)
	}
	if r.Description != nil {
		s.Description = r.Description
	}
}

type OccurrencesRequest struct {
	ShiftID string
	From    string
	To      string
}

func (r *OccurrencesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs.Add("id", "id is required")
	}
	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs.Add("from", "from is required and must be in YYYY-MM-DD format")
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs.Add("to", "to is required and must be in YYYY-MM-DD format")
	}
	if fromOK && toOK {
		if to.Before(from) {
			errs.Add("to", "to must not be before from")
		} else if utils.DaysBetween(from, to) > maxOccurrenceRangeDays {
			errs.Add("to", ErrOccurrenceRangeTooWide.Error())
		}
	}

	return errs.Err()
}

type WorkShiftResponse struct {
	ID             string   `json:"id"`
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	BreakMinutes   int      `json:"break_minutes"`
	Hours          float64  `json:"hours"`
	StartDate      string   `json:"start_date"`
	RecurrenceRule *string  `json:"recurrence_rule,omitempty"`
	ExceptionDates []string `json:"exception_dates,omitempty"`
	Description    *string  `json:"description,omitempty"`
}

func ToResponse(s WorkShift) WorkShiftResponse {
	hours, _ := s.Hours()
	return WorkShiftResponse{
		ID:             s.ID,
		Code:           s.Code,
		Name:           s.Name,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		BreakMinutes:   s.BreakMinutes,
		Hours:          hours,
		StartDate:      s.StartDate.Format(utils.DateLayout),
		RecurrenceRule: s.RecurrenceRule,
		ExceptionDates: formatDates(s.ExceptionDates),
		Description:    s.Description,
	}
}

type OccurrencesResponse struct {
	ShiftID   string   `json:"shift_id"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Dates     []string `json:"dates"`
}

func validateExceptionDates(errs *validator.ValidationErrors, dates []string) {
	for _, d := range dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs.Add("exception_dates", "exception_dates must be in YYYY-MM-DD format")
			return
		}
	}
}

func normalizeRule(rule *string) *string {
	if rule == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*rule)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseDates(values []string) []time.Time {
	if len(values) == 0 {
		return nil
	}
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, _ := utils.ParseDate(v)
		dates = append(dates, d)
	}
	return dates
}

func formatDates(dates []time.Time) []string {
	if len(dates) == 0 {
		return nil
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(utils.DateLayout))
	}
	return out
}
