package workflow

import "time"

type Status string

const (
	// Leave and overtime requests
	StatusPending            Status = "pending"
	StatusDepartmentApproved Status = "department_approved"

	// Work reports
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"

	// Terminal, shared
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var RequestStatusValues = []string{
	string(StatusPending),
	string(StatusDepartmentApproved),
	string(StatusApproved),
	string(StatusRejected),
}

var ReportStatusValues = []string{
	string(StatusDraft),
	string(StatusSubmitted),
	string(StatusApproved),
	string(StatusRejected),
}

type Action string

const (
	ActionSubmit            Action = "submit"
	ActionDepartmentApprove Action = "department_approve"
	ActionApprove           Action = "approve"
	ActionReject            Action = "reject"
)

// Approval is the audit trail embedded in every record that goes through the workflow.
type Approval struct {
	Status Status

	SubmittedAt *time.Time

	DepartmentApprovedBy *string
	DepartmentApprovedAt *time.Time

	ApprovedBy *string
	ApprovedAt *time.Time

	RejectedBy      *string
	RejectedAt      *time.Time
	RejectionReason *string
}

type ApprovalResponse struct {
	Status               string  `json:"status"`
	SubmittedDate        *string `json:"submitted_date,omitempty"`
	DepartmentApprovedBy *string `json:"department_approved_by,omitempty"`
	DepartmentApprovedAt *string `json:"department_approved_date,omitempty"`
	ApprovedBy           *string `json:"approved_by,omitempty"`
	ApprovedAt           *string `json:"approved_date,omitempty"`
	RejectedBy           *string `json:"rejected_by,omitempty"`
	RejectedAt           *string `json:"rejected_date,omitempty"`
	RejectionReason      *string `json:"rejection_reason,omitempty"`
}

func (a Approval) ToResponse() ApprovalResponse {
	return ApprovalResponse{
		Status:               string(a.Status),
		SubmittedDate:        formatDate(a.SubmittedAt),
		DepartmentApprovedBy: a.DepartmentApprovedBy,
		DepartmentApprovedAt: formatDate(a.DepartmentApprovedAt),
		ApprovedBy:           a.ApprovedBy,
		ApprovedAt:           formatDate(a.ApprovedAt),
		RejectedBy:           a.RejectedBy,
		RejectedAt:           formatDate(a.RejectedAt),
		RejectionReason:      a.RejectionReason,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// NewRequestApproval returns the initial state of a leave or overtime request.
func NewRequestApproval() Approval {
	return Approval{Status: StatusPending}
}

// NewReportApproval returns the initial state of a work report.
func NewReportApproval() Approval {
	return Approval{Status: StatusDraft}
}

func IsRequestStatus(s string) bool {
	for _, v := range RequestStatusValues {
		if v == s {
			return true
		}
	}
	return false
}

func IsReportStatus(s string) bool {
	for _, v := range ReportStatusValues {
		if v == s {
			return true
		}
	}
	return false
}
