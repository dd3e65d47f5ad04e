package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/timekeeping"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

var notFoundErrors = []error{
	user.ErrUserNotFound,
	employee.ErrEmployeeNotFound,
	organization.ErrOrganizationNotFound,
	organization.ErrDepartmentNotFound,
	position.ErrPositionNotFound,
	leave.ErrLeaveNotFound,
	leave.ErrLeaveTypeNotFound,
	overtime.ErrOvertimeNotFound,
	overtime.ErrOvertimeTypeNotFound,
	report.ErrWorkReportNotFound,
	schedule.ErrWorkShiftNotFound,
	timekeeping.ErrTimeEntryNotFound,
	timekeeping.ErrDeviceNotFound,
	recruitment.ErrJobOpeningNotFound,
	recruitment.ErrCandidateNotFound,
	notification.ErrNotificationNotFound,
}

var conflictErrors = []error{
	user.ErrUserEmailExists,
	employee.ErrEmployeeCodeExists,
	employee.ErrEmailExists,
	organization.ErrOrganizationCodeExists,
	organization.ErrDepartmentCodeExists,
	organization.ErrOrganizationHasDepartments,
	position.ErrPositionCodeExists,
	leave.ErrLeaveTypeCodeExists,
	overtime.ErrOvertimeTypeCodeExists,
	schedule.ErrWorkShiftCodeExists,
	timekeeping.ErrTimeEntryExists,
	timekeeping.ErrDeviceSerialExists,
	timekeeping.ErrDeviceInactive,
	recruitment.ErrOpeningHasCandidates,
	recruitment.ErrOpeningClosed,
	workflow.ErrInvalidTransition,
}

var unprocessableErrors = []error{
	workflow.ErrRejectionReasonRequired,
	workflow.ErrActorRequired,
	leave.ErrInvalidDateRange,
	report.ErrInvalidDateRange,
	schedule.ErrInvalidRecurrenceRule,
	schedule.ErrOccurrenceRangeTooWide,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	case isAny(err, notFoundErrors):
		NotFound(w, err.Error())
	case isAny(err, conflictErrors):
		Conflict(w, err.Error())
	case isAny(err, unprocessableErrors):
		UnprocessableEntity(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
