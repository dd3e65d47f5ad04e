package notification

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
)

// NotificationType represents the type of notification
type NotificationType string

// Workflow notifications are typed "<subject>.<status>", e.g. "leave.approved".
const (
	SubjectLeave      = "leave"
	SubjectOvertime   = "overtime"
	SubjectWorkReport = "work_report"

	TypeRawDataProcessed     NotificationType = "timekeeping.raw_data_processed"
	TypeCandidateStageChange NotificationType = "recruitment.candidate_stage_changed"
)

// WorkflowType builds the notification type for a record reaching status.
func WorkflowType(subject string, status workflow.Status) NotificationType {
	return NotificationType(subject + "." + string(status))
}

// Notification is addressed to a user account, not to an employee.
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
