package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)

	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	AssignDepartment(w http.ResponseWriter, r *http.Request)
	UnassignDepartment(w http.ResponseWriter, r *http.Request)
	AssignPosition(w http.ResponseWriter, r *http.Request)
	UnassignPosition(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	f := employee.EmployeeFilter{
		DepartmentID:     optionalQuery(r, "department_id"),
		PositionID:       optionalQuery(r, "position_id"),
		EmploymentStatus: optionalQuery(r, "employment_status"),
		Search:           optionalQuery(r, "search"),
	}

	result, err := h.employeeService.ListEmployees(r.Context(), f)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req, "CreateEmployee") {
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req, "UpdateEmployee") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

func (h *employeeHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.employeeService.EmployeeDepartments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]organization.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		result = append(result, organization.ToDepartmentResponse(d))
	}
	response.Success(w, result)
}

func (h *employeeHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.employeeService.EmployeePositions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		result = append(result, position.ToResponse(p))
	}
	response.Success(w, result)
}

func (h *employeeHandlerImpl) AssignDepartment(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.AssignDepartment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "departmentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department assigned", nil)
}

func (h *employeeHandlerImpl) UnassignDepartment(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.UnassignDepartment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "departmentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department unassigned", nil)
}

func (h *employeeHandlerImpl) AssignPosition(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.AssignPosition(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "positionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position assigned", nil)
}

func (h *employeeHandlerImpl) UnassignPosition(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.UnassignPosition(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "positionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position unassigned", nil)
}
