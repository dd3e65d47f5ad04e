package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Lifecycle
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.WorkReportService
}

func NewReportHandler(reportService report.WorkReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) owner(r *http.Request) func() (string, error) {
	return func() (string, error) {
		existing, err := h.reportService.GetWorkReport(r.Context(), chi.URLParam(r, "id"))
		return existing.EmployeeID, err
	}
}

// List handles GET /work-reports
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, criteria, err := scopedCriteria(r, user.PermissionRequestViewAll, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.ListWorkReports(r.Context(), criteria, optionalQuery(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /work-reports/{id}
func (h *reportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetWorkReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := middleware.IdentityFromRequest(r)
	if err == nil {
		err = ownerOrPermitted(id, user.PermissionRequestViewAll, result.EmployeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /work-reports; the report starts as a draft.
func (h *reportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req report.CreateWorkReportRequest
	if !decodeJSON(w, r, &req, "CreateWorkReport") {
		return
	}

	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID, err = ownEmployeeID(id, user.PermissionRequestViewAll, req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.CreateWorkReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work report created successfully", result)
}

// Update handles PUT /work-reports/{id}
func (h *reportHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req report.UpdateWorkReportRequest
	if !decodeJSON(w, r, &req, "UpdateWorkReport") {
		return
	}
	if _, ok := authorizeOwned(w, r, user.PermissionRequestViewAll, nil, h.owner(r)); !ok {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.reportService.UpdateWorkReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work report updated successfully", result)
}

// Delete handles DELETE /work-reports/{id}
func (h *reportHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	missing := func(err error) bool { return errors.Is(err, report.ErrWorkReportNotFound) }
	if _, ok := authorizeOwned(w, r, user.PermissionRequestViewAll, missing, h.owner(r)); !ok {
		return
	}

	if err := h.reportService.DeleteWorkReport(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work report deleted successfully", nil)
}

// Submit handles POST /work-reports/{id}/submit
func (h *reportHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorizeOwned(w, r, user.PermissionRequestViewAll, nil, h.owner(r)); !ok {
		return
	}

	result, err := h.reportService.SubmitWorkReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work report submitted", result)
}

// Approve handles POST /work-reports/{id}/approve
func (h *reportHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.ApproveWorkReport(r.Context(), chi.URLParam(r, "id"), id.ActorID())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work report approved", result)
}

// Reject handles POST /work-reports/{id}/reject
func (h *reportHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req report.RejectWorkReportRequest
	if !decodeJSON(w, r, &req, "RejectWorkReport") {
		return
	}

	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.RejecterID = id.ActorID()

	result, err := h.reportService.RejectWorkReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work report rejected", result)
}
