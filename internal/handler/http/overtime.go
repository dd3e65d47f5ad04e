package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	UpdateRequest(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)

	DepartmentApproveRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

func (o *OvertimeHandlerImpl) owner(r *http.Request) func() (string, error) {
	return func() (string, error) {
		existing, err := o.overtimeService.GetOvertime(r.Context(), chi.URLParam(r, "id"))
		return existing.EmployeeID, err
	}
}

func isOvertimeNotFound(err error) bool { return errors.Is(err, overtime.ErrOvertimeNotFound) }

// ListRequests implements OvertimeHandler. Employees only ever see their own overtime.
func (o *OvertimeHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	_, criteria, err := scopedCriteria(r, user.PermissionRequestViewAll, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	overtimes, err := o.overtimeService.ListOvertimes(r.Context(), criteria, optionalQuery(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtimes)
}

// GetRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	result, err := o.overtimeService.GetOvertime(r.Context(), chi.URLParam(r, "id"))
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

// CreateRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if !decodeJSON(w, r, &req, "CreateOvertime") {
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

	result, err := o.overtimeService.CreateOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request created successfully", result)
}

// UpdateRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	var req overtime.UpdateOvertimeRequest
	if !decodeJSON(w, r, &req, "UpdateOvertime") {
		return
	}
	if _, ok := authorizeOwned(w, r, user.PermissionRequestViewAll, nil, o.owner(r)); !ok {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := o.overtimeService.UpdateOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request updated successfully", result)
}

// DeleteRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorizeOwned(w, r, user.PermissionRequestViewAll, isOvertimeNotFound, o.owner(r)); !ok {
		return
	}

	if err := o.overtimeService.DeleteOvertime(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request deleted successfully", nil)
}

// DepartmentApproveRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) DepartmentApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := o.overtimeService.DepartmentApproveOvertime(r.Context(), chi.URLParam(r, "id"), id.ActorID())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved by department", result)
}

// ApproveRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := o.overtimeService.ApproveOvertime(r.Context(), chi.URLParam(r, "id"), id.ActorID())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved successfully", result)
}

// RejectRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	var req overtime.RejectOvertimeRequest
	if !decodeJSON(w, r, &req, "RejectOvertime") {
		return
	}

	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.RejecterID = id.ActorID()

	result, err := o.overtimeService.RejectOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", result)
}
