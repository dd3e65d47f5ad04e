package schedule

import "context"

type ScheduleService interface {
	CreateWorkShift(ctx context.Context, req CreateWorkShiftRequest) (WorkShiftResponse, error)
	GetWorkShift(ctx context.Context, id string) (WorkShiftResponse, error)
	ListWorkShifts(ctx context.Context) ([]WorkShiftResponse, error)
	UpdateWorkShift(ctx context.Context, req UpdateWorkShiftRequest) (WorkShiftResponse, error)
	DeleteWorkShift(ctx context.Context, id string) error

	// Occurrences expands the shift's recurrence into concrete dates.
	Occurrences(ctx context.Context, req OccurrencesRequest) (OccurrencesResponse, error)
}
