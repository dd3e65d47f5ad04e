package overtime

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
)

type OvertimeService interface {
	// Type
	CreateOvertimeType(ctx context.Context, req CreateOvertimeTypeRequest) (OvertimeTypeResponse, error)
	UpdateOvertimeType(ctx context.Context, req UpdateOvertimeTypeRequest) (OvertimeTypeResponse, error)
	ListOvertimeTypes(ctx context.Context) ([]OvertimeTypeResponse, error)
	DeleteOvertimeType(ctx context.Context, id string) error

	// Request
	CreateOvertime(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	GetOvertime(ctx context.Context, id string) (OvertimeResponse, error)
	ListOvertimes(ctx context.Context, criteria filter.Criteria, status *string) ([]OvertimeResponse, error)
	UpdateOvertime(ctx context.Context, req UpdateOvertimeRequest) (OvertimeResponse, error)
	DeleteOvertime(ctx context.Context, id string) error

	// Workflow
	DepartmentApproveOvertime(ctx context.Context, id, approverID string) (OvertimeResponse, error)
	ApproveOvertime(ctx context.Context, id, approverID string) (OvertimeResponse, error)
	RejectOvertime(ctx context.Context, req RejectOvertimeRequest) (OvertimeResponse, error)
}
