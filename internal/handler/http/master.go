package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// MasterHandler serves the reference data: positions, leave types and overtime types.
type MasterHandler interface {
	// Position handlers
	CreatePosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)

	// Leave type handlers
	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	UpdateLeaveType(w http.ResponseWriter, r *http.Request)
	DeleteLeaveType(w http.ResponseWriter, r *http.Request)

	// Overtime type handlers
	CreateOvertimeType(w http.ResponseWriter, r *http.Request)
	ListOvertimeTypes(w http.ResponseWriter, r *http.Request)
	UpdateOvertimeType(w http.ResponseWriter, r *http.Request)
	DeleteOvertimeType(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	positionService position.PositionService
	leaveService    leave.LeaveService
	overtimeService overtime.OvertimeService
}

func NewMasterHandler(positionService position.PositionService, leaveService leave.LeaveService, overtimeService overtime.OvertimeService) MasterHandler {
	return &masterHandlerImpl{
		positionService: positionService,
		leaveService:    leaveService,
		overtimeService: overtimeService,
	}
}

// ==================== POSITION HANDLERS ====================

func (h *masterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if !decodeJSON(w, r, &req, "CreatePosition") {
		return
	}

	result, err := h.positionService.CreatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", result)
}

func (h *masterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	result, err := h.positionService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.UpdatePositionRequest
	if !decodeJSON(w, r, &req, "UpdatePosition") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.positionService.UpdatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", result)
}

func (h *masterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.positionService.DeletePosition(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}

// ==================== LEAVE TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if !decodeJSON(w, r, &req, "CreateLeaveType") {
		return
	}

	result, err := h.leaveService.CreateLeaveType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", result)
}

func (h *masterHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveTypeRequest
	if !decodeJSON(w, r, &req, "UpdateLeaveType") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.UpdateLeaveType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", result)
}

func (h *masterHandlerImpl) DeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.DeleteLeaveType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

// ==================== OVERTIME TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateOvertimeType(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeTypeRequest
	if !decodeJSON(w, r, &req, "CreateOvertimeType") {
		return
	}

	result, err := h.overtimeService.CreateOvertimeType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime type created successfully", result)
}

func (h *masterHandlerImpl) ListOvertimeTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.overtimeService.ListOvertimeTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateOvertimeType(w http.ResponseWriter, r *http.Request) {
	var req overtime.UpdateOvertimeTypeRequest
	if !decodeJSON(w, r, &req, "UpdateOvertimeType") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.overtimeService.UpdateOvertimeType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime type updated successfully", result)
}

func (h *masterHandlerImpl) DeleteOvertimeType(w http.ResponseWriter, r *http.Request) {
	if err := h.overtimeService.DeleteOvertimeType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime type deleted successfully", nil)
}
