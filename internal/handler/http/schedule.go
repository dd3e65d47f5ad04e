package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	// Work Shift
	CreateWorkShift(w http.ResponseWriter, r *http.Request)
	GetWorkShift(w http.ResponseWriter, r *http.Request)
	ListWorkShifts(w http.ResponseWriter, r *http.Request)
	UpdateWorkShift(w http.ResponseWriter, r *http.Request)
	DeleteWorkShift(w http.ResponseWriter, r *http.Request)

	// Recurrence
	Occurrences(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// CreateWorkShift implements ScheduleHandler.
func (h *scheduleHandlerImpl) CreateWorkShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateWorkShiftRequest
	if !decodeJSON(w, r, &req, "CreateWorkShift") {
		return
	}

	result, err := h.scheduleService.CreateWorkShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work shift created successfully", result)
}

// GetWorkShift implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetWorkShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetWorkShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListWorkShifts implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListWorkShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.ListWorkShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateWorkShift implements ScheduleHandler.
func (h *scheduleHandlerImpl) UpdateWorkShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateWorkShiftRequest
	if !decodeJSON(w, r, &req, "UpdateWorkShift") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateWorkShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work shift updated successfully", result)
}

// DeleteWorkShift implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteWorkShift(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteWorkShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work shift deleted successfully", nil)
}

// Occurrences handles GET /work-shifts/{id}/occurrences?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *scheduleHandlerImpl) Occurrences(w http.ResponseWriter, r *http.Request) {
	req := schedule.OccurrencesRequest{
		ShiftID: chi.URLParam(r, "id"),
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
	}

	result, err := h.scheduleService.Occurrences(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
