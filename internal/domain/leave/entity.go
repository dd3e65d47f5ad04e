package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
)

// LeaveType entity
type LeaveType struct {
	ID             string
	Code           string
	Name           string
	Description    *string
	MaxDaysPerYear *int
	IsPaid         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Leave is a leave request. NumberOfDays always equals DaysBetween(StartDate, EndDate).
type Leave struct {
	ID           string
	EmployeeID   string
	LeaveTypeID  string
	DepartmentID string

	StartDate    time.Time
	EndDate      time.Time
	NumberOfDays int

	Reason *string

	workflow.Approval

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recalculate refreshes the derived day count.
func (l *Leave) Recalculate() {
	l.NumberOfDays = utils.DaysBetween(l.StartDate, l.EndDate)
}
