package report

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
)

// WorkReport is an employee's weekly report. It starts as a draft and goes through
// submitted before a reviewer approves or rejects it.
type WorkReport struct {
	ID              string
	EmployeeID      string
	WeekStartDate   time.Time
	WeekEndDate     time.Time
	TasksCompleted  string
	TasksInProgress string
	NextWeekPlans   string
	Issues          string

	workflow.Approval

	CreatedAt time.Time
	UpdatedAt time.Time
}
