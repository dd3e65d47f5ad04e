package schedule

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() schedule.ScheduleService {
	store := memory.NewStore()
	return NewScheduleService(store, memory.NewWorkShiftRepository(store))
}

func weekdayShift(t *testing.T, svc schedule.ScheduleService) schedule.WorkShiftResponse {
	t.Helper()
	rule := "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"
	shift, err := svc.CreateWorkShift(context.Background(), schedule.CreateWorkShiftRequest{
		Code:           "DAY",
		Name:           "Day shift",
		StartTime:      "08:00",
		EndTime:        "17:00",
		BreakMinutes:   60,
		StartDate:      "2024-06-03",
		RecurrenceRule: &rule,
		ExceptionDates: []string{"2024-06-05"},
	})
	require.NoError(t, err)
	return shift
}

func TestOccurrences(t *testing.T) {
	svc := newService()
	shift := weekdayShift(t, svc)
	assert.Equal(t, 8.0, shift.Hours)

	resp, err := svc.Occurrences(context.Background(), schedule.OccurrencesRequest{ShiftID: shift.ID, From: "2024-06-01", To: "2024-06-09"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-03", "2024-06-04", "2024-06-06", "2024-06-07"}, resp.Dates)
	assert.Equal(t, "08:00", resp.StartTime)
}

func TestOccurrences_Errors(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Occurrences(ctx, schedule.OccurrencesRequest{ShiftID: "missing", From: "2024-06-01", To: "2024-06-09"})
	assert.ErrorIs(t, err, schedule.ErrWorkShiftNotFound)

	var verrs validator.ValidationErrors
	_, err = svc.Occurrences(ctx, schedule.OccurrencesRequest{ShiftID: "any", From: "2024-01-01", To: "2025-06-01"})
	assert.ErrorAs(t, err, &verrs)
}

func TestCreateWorkShift_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	weekdayShift(t, svc)

	bad := "FREQ=SOMETIMES"
	_, err := svc.CreateWorkShift(ctx, schedule.CreateWorkShiftRequest{
		Code: "BAD", Name: "Bad", StartTime: "08:00", EndTime: "12:00", StartDate: "2024-06-03", RecurrenceRule: &bad,
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "recurrence_rule")

	_, err = svc.CreateWorkShift(ctx, schedule.CreateWorkShiftRequest{
		Code: "DAY", Name: "Copy", StartTime: "08:00", EndTime: "12:00", StartDate: "2024-06-03",
	})
	assert.ErrorIs(t, err, schedule.ErrWorkShiftCodeExists)
}

func TestUpdateWorkShift(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	shift := weekdayShift(t, svc)

	none := ""
	updated, err := svc.UpdateWorkShift(ctx, schedule.UpdateWorkShiftRequest{ID: shift.ID, RecurrenceRule: &none})
	require.NoError(t, err)
	assert.Nil(t, updated.RecurrenceRule)

	resp, err := svc.Occurrences(ctx, schedule.OccurrencesRequest{ShiftID: shift.ID, From: "2024-06-01", To: "2024-06-30"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-03"}, resp.Dates)

	longBreak := 600
	_, err = svc.UpdateWorkShift(ctx, schedule.UpdateWorkShiftRequest{ID: shift.ID, BreakMinutes: &longBreak})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	require.NoError(t, svc.DeleteWorkShift(ctx, shift.ID))
	require.NoError(t, svc.DeleteWorkShift(ctx, shift.ID))
	_, err = svc.GetWorkShift(ctx, shift.ID)
	assert.ErrorIs(t, err, schedule.ErrWorkShiftNotFound)
}
