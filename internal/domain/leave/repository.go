package leave

import "context"

// LeaveTypeRepository - interface for leave type storage
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// LeaveRepository - interface for leave request storage
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	List(ctx context.Context) ([]Leave, error)
	Update(ctx context.Context, l Leave) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
