package overtime

import "context"

type OvertimeTypeRepository interface {
	Create(ctx context.Context, t OvertimeType) (OvertimeType, error)
	GetByID(ctx context.Context, id string) (OvertimeType, error)
	List(ctx context.Context) ([]OvertimeType, error)
	Update(ctx context.Context, t OvertimeType) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type OvertimeRepository interface {
	Create(ctx context.Context, o Overtime) (Overtime, error)
	GetByID(ctx context.Context, id string) (Overtime, error)
	List(ctx context.Context) ([]Overtime, error)
	Update(ctx context.Context, o Overtime) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
