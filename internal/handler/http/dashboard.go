package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns combined dashboard data
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetLeaveSummary returns leave status counts
	GetLeaveSummary(w http.ResponseWriter, r *http.Request)
	// GetOvertimeSummary returns overtime status counts and approved hours
	GetOvertimeSummary(w http.ResponseWriter, r *http.Request)
	// GetWorkReportSummary returns work report status counts
	GetWorkReportSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	_, criteria, err := scopedCriteria(r, user.PermissionRequestViewAll, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), criteria)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLeaveSummary handles GET /dashboard/leaves
func (h *dashboardHandlerImpl) GetLeaveSummary(w http.ResponseWriter, r *http.Request) {
	_, criteria, err := scopedCriteria(r, user.PermissionRequestViewAll, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetLeaveSummary(r.Context(), criteria)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOvertimeSummary handles GET /dashboard/overtimes
func (h *dashboardHandlerImpl) GetOvertimeSummary(w http.ResponseWriter, r *http.Request) {
	_, criteria, err := scopedCriteria(r, user.PermissionRequestViewAll, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetOvertimeSummary(r.Context(), criteria)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkReportSummary handles GET /dashboard/work-reports
func (h *dashboardHandlerImpl) GetWorkReportSummary(w http.ResponseWriter, r *http.Request) {
	_, criteria, err := scopedCriteria(r, user.PermissionRequestViewAll, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetWorkReportSummary(r.Context(), criteria)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
