package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &organizationHandlerImpl{organizationService: organizationService}
}

func (h *organizationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.organizationService.ListOrganizations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.organizationService.GetOrganization(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req organization.CreateOrganizationRequest
	if !decodeJSON(w, r, &req, "CreateOrganization") {
		return
	}

	result, err := h.organizationService.CreateOrganization(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Organization created successfully", result)
}

func (h *organizationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdateOrganizationRequest
	if !decodeJSON(w, r, &req, "UpdateOrganization") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.organizationService.UpdateOrganization(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Organization updated successfully", result)
}

// Delete is refused with 409 while the organization still owns departments.
func (h *organizationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.organizationService.DeleteOrganization(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Organization deleted successfully", nil)
}

func (h *organizationHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.organizationService.ListDepartments(r.Context(), optionalQuery(r, "organization_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.organizationService.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req organization.CreateDepartmentRequest
	if !decodeJSON(w, r, &req, "CreateDepartment") {
		return
	}

	result, err := h.organizationService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", result)
}

func (h *organizationHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdateDepartmentRequest
	if !decodeJSON(w, r, &req, "UpdateDepartment") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.organizationService.UpdateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated successfully", result)
}

func (h *organizationHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.organizationService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}
