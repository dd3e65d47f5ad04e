package dashboard

import (
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/stretchr/testify/assert"
)

func TestStatusSummary_Add(t *testing.T) {
	var s StatusSummary
	for _, st := range []workflow.Status{
		workflow.StatusPending,
		workflow.StatusPending,
		workflow.StatusDepartmentApproved,
		workflow.StatusApproved,
		workflow.StatusRejected,
	} {
		s.Add(st)
	}

	assert.Equal(t, StatusSummary{Total: 5, Pending: 2, DepartmentApproved: 1, Approved: 1, Rejected: 1}, s)
}

func TestWorkReportSummary_Add(t *testing.T) {
	var s WorkReportSummary
	for _, st := range []workflow.Status{workflow.StatusDraft, workflow.StatusSubmitted, workflow.StatusSubmitted, workflow.StatusApproved} {
		s.Add(st)
	}
	assert.Equal(t, WorkReportSummary{Total: 4, Draft: 1, Submitted: 2, Approved: 1}, s)
}
