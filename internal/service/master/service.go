package master

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
)

type masterServiceImpl struct {
	store        *memory.Store
	positionRepo position.PositionRepository
}

func NewMasterService(store *memory.Store, positionRepo position.PositionRepository) position.PositionService {
	return &masterServiceImpl{
		store:        store,
		positionRepo: positionRepo,
	}
}

// ==================== POSITION OPERATIONS ====================

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	var created position.Position
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if err := s.ensureCode(ctx, "", req.Code); err != nil {
			return err
		}
		var err error
		created, err = s.positionRepo.Create(ctx, position.Position{
			Name:        strings.TrimSpace(req.Name),
			Code:        req.Code,
			Description: req.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to create position: %w", err)
		}
		return nil
	})
	if err != nil {
		return position.PositionResponse{}, err
	}

	slog.Info("Position created", "position_id", created.ID, "code", created.Code)
	return position.ToResponse(created), nil
}

func (s *masterServiceImpl) ensureCode(ctx context.Context, excludeID, code string) error {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list positions: %w", err)
	}
	for _, p := range positions {
		if p.ID != excludeID && strings.EqualFold(p.Code, code) {
			return position.ErrPositionCodeExists
		}
	}
	return nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, position.ToResponse(p))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	var updated position.Position
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		existing, err := s.positionRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&existing)
		if err := s.ensureCode(ctx, existing.ID, existing.Code); err != nil {
			return err
		}
		found, err := s.positionRepo.Update(ctx, existing)
		if err != nil {
			return fmt.Errorf("failed to update position: %w", err)
		}
		if !found {
			return position.ErrPositionNotFound
		}
		updated = existing
		return nil
	})
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.ToResponse(updated), nil
}

// DeletePosition leaves assignment rows in place; they resolve to nothing afterwards.
func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	found, err := s.positionRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if found {
		slog.Info("Position deleted", "position_id", id)
	}
	return nil
}
