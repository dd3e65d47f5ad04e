package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	UpdateRequest(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)

	DepartmentApproveRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func (l *LeaveHandlerImpl) owner(r *http.Request) func() (string, error) {
	return func() (string, error) {
		existing, err := l.leaveService.GetLeave(r.Context(), chi.URLParam(r, "id"))
		return existing.EmployeeID, err
	}
}

func isLeaveNotFound(err error) bool { return errors.Is(err, leave.ErrLeaveNotFound) }

// ListRequests implements LeaveHandler. Employees only ever see their own requests.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	_, criteria, err := scopedCriteria(r, user.PermissionRequestViewAll, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := l.leaveService.ListLeaves(r.Context(), criteria, optionalQuery(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	result, err := l.leaveService.GetLeave(r.Context(), chi.URLParam(r, "id"))
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

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if !decodeJSON(w, r, &req, "CreateLeave") {
		return
	}

	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Set employee_id from JWT (override any value from request for security)
	req.EmployeeID, err = ownEmployeeID(id, user.PermissionRequestViewAll, req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", result)
}

// UpdateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveRequest
	if !decodeJSON(w, r, &req, "UpdateLeave") {
		return
	}
	if _, ok := authorizeOwned(w, r, user.PermissionRequestViewAll, nil, l.owner(r)); !ok {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := l.leaveService.UpdateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", result)
}

// DeleteRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorizeOwned(w, r, user.PermissionRequestViewAll, isLeaveNotFound, l.owner(r)); !ok {
		return
	}

	if err := l.leaveService.DeleteLeave(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// DepartmentApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DepartmentApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.DepartmentApproveLeave(r.Context(), chi.URLParam(r, "id"), id.ActorID())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved by department", result)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.ApproveLeave(r.Context(), chi.URLParam(r, "id"), id.ActorID())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", result)
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.RejectLeaveRequest
	if !decodeJSON(w, r, &req, "RejectLeave") {
		return
	}

	id, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.RejecterID = id.ActorID()

	result, err := l.leaveService.RejectLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}
