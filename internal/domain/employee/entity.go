package employee

import "time"

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	Email            string
	PhoneNumber      *string
	Gender           *Gender
	DateOfBirth      *time.Time
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	Address          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

var GenderValues = []string{string(Male), string(Female)}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

var EmploymentStatusValues = []string{
	string(EmploymentStatusActive),
	string(EmploymentStatusResigned),
	string(EmploymentStatusTerminated),
}

func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}

// DepartmentMembership is one row of the employee <-> department association.
type DepartmentMembership struct {
	EmployeeID   string
	DepartmentID string
}

// PositionAssignment is one row of the employee <-> position association.
type PositionAssignment struct {
	EmployeeID string
	PositionID string
}
