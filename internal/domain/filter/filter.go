package filter

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

type Type string

const (
	TypeMonth Type = "month"
	TypeRange Type = "range"
)

// All is the query value meaning "no filter" for department and employee.
const All = "all"

// Params is the raw filter as received from a query string.
type Params struct {
	Type         string `json:"filter_type"`
	Date         string `json:"date"`
	From         string `json:"from"`
	To           string `json:"to"`
	DepartmentID string `json:"department_id"`
	EmployeeID   string `json:"employee_id"`
}

// Criteria is a resolved filter. A zero Start/End means the date is not constrained,
// a nil DepartmentID/EmployeeID means that predicate passes everything.
type Criteria struct {
	Start        time.Time
	End          time.Time
	DepartmentID *string
	EmployeeID   *string
}

func (p Params) Validate() error {
	var errs validator.ValidationErrors

	switch Type(p.Type) {
	case "":
	case TypeMonth:
		if p.Date != "" {
			if _, ok := validator.IsValidDate(p.Date); !ok {
				errs.Add("date", "date must be in YYYY-MM-DD format")
			}
		}
	case TypeRange:
		from, fromOK := validator.IsValidDate(p.From)
		if !fromOK {
			errs.Add("from", "from is required and must be in YYYY-MM-DD format")
		}
		if p.To != "" {
			to, toOK := validator.IsValidDate(p.To)
			if !toOK {
				errs.Add("to", "to must be in YYYY-MM-DD format")
			} else if fromOK && from.After(to) {
				errs.Add("to", "to must not be before from")
			}
		}
	default:
		errs.Add("filter_type", "filter_type must be one of: month, range")
	}

	return errs.Err()
}

// Resolve validates p and turns it into Criteria. now supplies the month used when
// filter_type=month comes without a date.
func (p Params) Resolve(now time.Time) (Criteria, error) {
	if err := p.Validate(); err != nil {
		return Criteria{}, err
	}

	c := Criteria{
		DepartmentID: sentinel(p.DepartmentID),
		EmployeeID:   sentinel(p.EmployeeID),
	}

	switch Type(p.Type) {
	case TypeMonth:
		anchor := now.UTC()
		if p.Date != "" {
			anchor, _ = utils.ParseDate(p.Date)
		}
		first, last := utils.MonthBounds(anchor)
		c.Start, c.End = utils.StartOfDay(first), utils.EndOfDay(last)
	case TypeRange:
		from, _ := utils.ParseDate(p.From)
		to := from
		if p.To != "" {
			to, _ = utils.ParseDate(p.To)
		}
		c.Start, c.End = utils.StartOfDay(from), utils.EndOfDay(to)
	}

	return c, nil
}

func sentinel(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" || v == All {
		return nil
	}
	return &v
}

func (c Criteria) Bounded() bool {
	return !c.Start.IsZero() && !c.End.IsZero()
}

// InRange reports whether t falls inside [Start, End], both inclusive.
func (c Criteria) InRange(t time.Time) bool {
	if !c.Bounded() {
		return true
	}
	return !t.Before(c.Start) && !t.After(c.End)
}

func (c Criteria) MatchDepartment(departmentID string) bool {
	return c.DepartmentID == nil || *c.DepartmentID == departmentID
}

func (c Criteria) MatchEmployee(employeeID string) bool {
	return c.EmployeeID == nil || *c.EmployeeID == employeeID
}

// Match reports whether a record passes every supplied predicate.
func (c Criteria) Match(date time.Time, departmentID, employeeID string) bool {
	return c.InRange(date) && c.MatchDepartment(departmentID) && c.MatchEmployee(employeeID)
}

// MatchMembers is Match for records that carry no department of their own. members holds
// the employees of the requested department and is ignored when no department is set.
func (c Criteria) MatchMembers(date time.Time, employeeID string, members map[string]struct{}) bool {
	if !c.InRange(date) || !c.MatchEmployee(employeeID) {
		return false
	}
	if c.DepartmentID == nil {
		return true
	}
	_, ok := members[employeeID]
	return ok
}

// RestrictTo pins the employee predicate, used when the caller may only see own records.
func (c Criteria) RestrictTo(employeeID string) Criteria {
	c.EmployeeID = &employeeID
	return c
}

// StartDate and EndDate render the bounds as YYYY-MM-DD, empty when unbounded.
func (c Criteria) StartDate() string {
	if !c.Bounded() {
		return ""
	}
	return c.Start.Format(utils.DateLayout)
}

func (c Criteria) EndDate() string {
	if !c.Bounded() {
		return ""
	}
	return c.End.Format(utils.DateLayout)
}
