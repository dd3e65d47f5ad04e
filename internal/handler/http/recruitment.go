package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecruitmentHandler interface {
	ListOpenings(w http.ResponseWriter, r *http.Request)
	GetOpening(w http.ResponseWriter, r *http.Request)
	CreateOpening(w http.ResponseWriter, r *http.Request)
	UpdateOpening(w http.ResponseWriter, r *http.Request)
	DeleteOpening(w http.ResponseWriter, r *http.Request)

	ListCandidates(w http.ResponseWriter, r *http.Request)
	CreateCandidate(w http.ResponseWriter, r *http.Request)
	UpdateCandidate(w http.ResponseWriter, r *http.Request)
	DeleteCandidate(w http.ResponseWriter, r *http.Request)
	MoveCandidate(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{recruitmentService: recruitmentService}
}

func (h *recruitmentHandlerImpl) ListOpenings(w http.ResponseWriter, r *http.Request) {
	f := recruitment.JobOpeningFilter{
		DepartmentID: optionalQuery(r, "department_id"),
		Status:       optionalQuery(r, "status"),
	}

	result, err := h.recruitmentService.ListJobOpenings(r.Context(), f)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) GetOpening(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.GetJobOpening(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) CreateOpening(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateJobOpeningRequest
	if !decodeJSON(w, r, &req, "CreateJobOpening") {
		return
	}

	result, err := h.recruitmentService.CreateJobOpening(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job opening created successfully", result)
}

func (h *recruitmentHandlerImpl) UpdateOpening(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateJobOpeningRequest
	if !decodeJSON(w, r, &req, "UpdateJobOpening") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recruitmentService.UpdateJobOpening(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job opening updated successfully", result)
}

// DeleteOpening answers 409 while candidates still reference the opening.
func (h *recruitmentHandlerImpl) DeleteOpening(w http.ResponseWriter, r *http.Request) {
	if err := h.recruitmentService.DeleteJobOpening(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job opening deleted successfully", nil)
}

func (h *recruitmentHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.ListCandidates(r.Context(), optionalQuery(r, "job_opening_id"), optionalQuery(r, "stage"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateCandidateRequest
	if !decodeJSON(w, r, &req, "CreateCandidate") {
		return
	}

	result, err := h.recruitmentService.CreateCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Candidate created successfully", result)
}

func (h *recruitmentHandlerImpl) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateCandidateRequest
	if !decodeJSON(w, r, &req, "UpdateCandidate") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recruitmentService.UpdateCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Candidate updated successfully", result)
}

func (h *recruitmentHandlerImpl) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := h.recruitmentService.DeleteCandidate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Candidate deleted successfully", nil)
}

// MoveCandidate handles POST /candidates/{id}/stage
func (h *recruitmentHandlerImpl) MoveCandidate(w http.ResponseWriter, r *http.Request) {
	var req recruitment.MoveCandidateRequest
	if !decodeJSON(w, r, &req, "MoveCandidate") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recruitmentService.MoveCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Candidate moved", result)
}
