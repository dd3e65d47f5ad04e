package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/timekeeping"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimekeepingHandler interface {
	// Time entries
	ListTimeEntries(w http.ResponseWriter, r *http.Request)
	CreateTimeEntry(w http.ResponseWriter, r *http.Request)
	UpdateTimeEntry(w http.ResponseWriter, r *http.Request)
	DeleteTimeEntry(w http.ResponseWriter, r *http.Request)

	// Devices
	ListDevices(w http.ResponseWriter, r *http.Request)
	CreateDevice(w http.ResponseWriter, r *http.Request)
	UpdateDevice(w http.ResponseWriter, r *http.Request)
	DeleteDevice(w http.ResponseWriter, r *http.Request)

	// Raw punches
	ListRawData(w http.ResponseWriter, r *http.Request)
	IngestRawData(w http.ResponseWriter, r *http.Request)
	ProcessRawData(w http.ResponseWriter, r *http.Request)
}

type timekeepingHandlerImpl struct {
	timekeepingService timekeeping.TimekeepingService
}

func NewTimekeepingHandler(timekeepingService timekeeping.TimekeepingService) TimekeepingHandler {
	return &timekeepingHandlerImpl{timekeepingService: timekeepingService}
}

// ListTimeEntries handles GET /time-entries
func (h *timekeepingHandlerImpl) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	_, criteria, err := scopedCriteria(r, user.PermissionTimekeepingViewAll, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timekeepingService.ListTimeEntries(r.Context(), criteria)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateTimeEntry handles POST /time-entries
func (h *timekeepingHandlerImpl) CreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var req timekeeping.CreateTimeEntryRequest
	if !decodeJSON(w, r, &req, "CreateTimeEntry") {
		return
	}

	result, err := h.timekeepingService.CreateTimeEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created successfully", result)
}

// UpdateTimeEntry handles PUT /time-entries/{id}
func (h *timekeepingHandlerImpl) UpdateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var req timekeeping.UpdateTimeEntryRequest
	if !decodeJSON(w, r, &req, "UpdateTimeEntry") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timekeepingService.UpdateTimeEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated successfully", result)
}

// DeleteTimeEntry handles DELETE /time-entries/{id}
func (h *timekeepingHandlerImpl) DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.timekeepingService.DeleteTimeEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted successfully", nil)
}

func (h *timekeepingHandlerImpl) ListDevices(w http.ResponseWriter, r *http.Request) {
	result, err := h.timekeepingService.ListDevices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timekeepingHandlerImpl) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req timekeeping.CreateDeviceRequest
	if !decodeJSON(w, r, &req, "CreateDevice") {
		return
	}

	result, err := h.timekeepingService.CreateDevice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Device registered successfully", result)
}

func (h *timekeepingHandlerImpl) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	var req timekeeping.UpdateDeviceRequest
	if !decodeJSON(w, r, &req, "UpdateDevice") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timekeepingService.UpdateDevice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device updated successfully", result)
}

func (h *timekeepingHandlerImpl) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	if err := h.timekeepingService.DeleteDevice(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device deleted successfully", nil)
}

// ListRawData handles GET /raw-time-data?processed=true|false
func (h *timekeepingHandlerImpl) ListRawData(w http.ResponseWriter, r *http.Request) {
	result, err := h.timekeepingService.ListRawData(r.Context(), optionalBoolQuery(r, "processed"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// IngestRawData handles POST /raw-time-data
func (h *timekeepingHandlerImpl) IngestRawData(w http.ResponseWriter, r *http.Request) {
	var req timekeeping.IngestRawDataRequest
	if !decodeJSON(w, r, &req, "IngestRawData") {
		return
	}

	result, err := h.timekeepingService.IngestRawData(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punches recorded", result)
}

// ProcessRawData handles POST /raw-time-data/process
func (h *timekeepingHandlerImpl) ProcessRawData(w http.ResponseWriter, r *http.Request) {
	result, err := h.timekeepingService.ProcessRawData(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
