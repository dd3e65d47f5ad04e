package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
)

type LeaveService interface {
	// Type
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	// DeleteLeaveType does not touch leave requests referencing the type.
	DeleteLeaveType(ctx context.Context, id string) error

	// Request
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetLeave(ctx context.Context, id string) (LeaveResponse, error)
	ListLeaves(ctx context.Context, criteria filter.Criteria, status *string) ([]LeaveResponse, error)
	UpdateLeave(ctx context.Context, req UpdateLeaveRequest) (LeaveResponse, error)
	DeleteLeave(ctx context.Context, id string) error

	// Workflow
	DepartmentApproveLeave(ctx context.Context, id, approverID string) (LeaveResponse, error)
	ApproveLeave(ctx context.Context, id, approverID string) (LeaveResponse, error)
	RejectLeave(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)
}
