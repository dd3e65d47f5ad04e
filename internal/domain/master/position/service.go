package position

import "context"

type PositionService interface {
	CreatePosition(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	ListPositions(ctx context.Context) ([]PositionResponse, error)
	UpdatePosition(ctx context.Context, req UpdatePositionRequest) (PositionResponse, error)
	DeletePosition(ctx context.Context, id string) error
}
