package schedule

import "context"

type WorkShiftRepository interface {
	Create(ctx context.Context, shift WorkShift) (WorkShift, error)
	GetByID(ctx context.Context, id string) (WorkShift, error)
	List(ctx context.Context) ([]WorkShift, error)
	Update(ctx context.Context, shift WorkShift) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
