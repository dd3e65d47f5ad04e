package report

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
)

// WorkReportService defines weekly work report operations
type WorkReportService interface {
	CreateWorkReport(ctx context.Context, req CreateWorkReportRequest) (WorkReportResponse, error)
	GetWorkReport(ctx context.Context, id string) (WorkReportResponse, error)
	// ListWorkReports matches the department filter through the employee's department memberships.
	ListWorkReports(ctx context.Context, criteria filter.Criteria, status *string) ([]WorkReportResponse, error)
	UpdateWorkReport(ctx context.Context, req UpdateWorkReportRequest) (WorkReportResponse, error)
	DeleteWorkReport(ctx context.Context, id string) error

	SubmitWorkReport(ctx context.Context, id string) (WorkReportResponse, error)
	ApproveWorkReport(ctx context.Context, id, approverID string) (WorkReportResponse, error)
	RejectWorkReport(ctx context.Context, req RejectWorkReportRequest) (WorkReportResponse, error)
}
