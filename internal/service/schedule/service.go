package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
)

type scheduleServiceImpl struct {
	store         *memory.Store
	workShiftRepo schedule.WorkShiftRepository
}

func NewScheduleService(store *memory.Store, workShiftRepo schedule.WorkShiftRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{
		store:         store,
		workShiftRepo: workShiftRepo,
	}
}

// CreateWorkShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateWorkShift(ctx context.Context, req schedule.CreateWorkShiftRequest) (schedule.WorkShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkShiftResponse{}, err
	}

	shift := req.ToEntity()
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if err := s.checkCode(ctx, "", shift.Code); err != nil {
			return err
		}
		var err error
		shift, err = s.workShiftRepo.Create(ctx, shift)
		if err != nil {
			return fmt.Errorf("failed to create work shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return schedule.WorkShiftResponse{}, err
	}

	slog.Info("Work shift created", "work_shift_id", shift.ID, "code", shift.Code)
	return schedule.ToResponse(shift), nil
}

// GetWorkShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWorkShift(ctx context.Context, id string) (schedule.WorkShiftResponse, error) {
	shift, err := s.workShiftRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.WorkShiftResponse{}, err
	}
	return schedule.ToResponse(shift), nil
}

// ListWorkShifts implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListWorkShifts(ctx context.Context) ([]schedule.WorkShiftResponse, error) {
	shifts, err := s.workShiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work shifts: %w", err)
	}
	responses := make([]schedule.WorkShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, schedule.ToResponse(shift))
	}
	return responses, nil
}

// UpdateWorkShift re-validates the merged shift since the rule is anchored at the start date.
func (s *scheduleServiceImpl) UpdateWorkShift(ctx context.Context, req schedule.UpdateWorkShiftRequest) (schedule.WorkShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkShiftResponse{}, err
	}

	var updated schedule.WorkShift
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		shift, err := s.workShiftRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&shift)
		if err := validateMerged(shift); err != nil {
			return err
		}
		if err := s.checkCode(ctx, shift.ID, shift.Code); err != nil {
			return err
		}
		found, err := s.workShiftRepo.Update(ctx, shift)
		if err != nil {
			return fmt.Errorf("failed to update work shift: %w", err)
		}
		if !found {
			return schedule.ErrWorkShiftNotFound
		}
		updated, err = s.workShiftRepo.GetByID(ctx, shift.ID)
		return err
	})
	if err != nil {
		return schedule.WorkShiftResponse{}, err
	}
	return schedule.ToResponse(updated), nil
}

// DeleteWorkShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteWorkShift(ctx context.Context, id string) error {
	found, err := s.workShiftRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete work shift: %w", err)
	}
	if found {
		slog.Info("Work shift deleted", "work_shift_id", id)
	}
	return nil
}

// Occurrences implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Occurrences(ctx context.Context, req schedule.OccurrencesRequest) (schedule.OccurrencesResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.OccurrencesResponse{}, err
	}

	shift, err := s.workShiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return schedule.OccurrencesResponse{}, err
	}

	from, _ := utils.ParseDate(req.From)
	to, _ := utils.ParseDate(req.To)
	dates, err := shift.Occurrences(from, to)
	if err != nil {
		return schedule.OccurrencesResponse{}, fmt.Errorf("failed to expand work shift %s: %w", shift.ID, err)
	}

	resp := schedule.OccurrencesResponse{
		ShiftID:   shift.ID,
		From:      req.From,
		To:        req.To,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
		Dates:     make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, d.Format(utils.DateLayout))
	}
	return resp, nil
}

func (s *scheduleServiceImpl) checkCode(ctx context.Context, excludeID, code string) error {
	shifts, err := s.workShiftRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list work shifts: %w", err)
	}
	for _, shift := range shifts {
		if shift.ID != excludeID && strings.EqualFold(shift.Code, code) {
			return schedule.ErrWorkShiftCodeExists
		}
	}
	return nil
}

func validateMerged(shift schedule.WorkShift) error {
	var errs validator.ValidationErrors

	if shift.RecurrenceRule != nil {
		if _, err := schedule.ParseRecurrence(*shift.RecurrenceRule, shift.StartDate); err != nil {
			errs.Add("recurrence_rule", err.Error())
		}
	}
	if hours, err := shift.Hours(); err == nil && hours <= 0 {
		errs.Add("break_minutes", "break_minutes must be shorter than the shift")
	}

	return errs.Err()
}
