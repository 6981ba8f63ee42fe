package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/location"
	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-agent-go/internal/gateway/hris"
	"github.com/cmlabs-hris/attendance-agent-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	// Backend errors carry the server's message verbatim.
	var apiErr *hris.APIError
	if errors.As(err, &apiErr) {
		BadGateway(w, apiErr.Message)
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoScheduleToday):
		NotFound(w, "No schedule found for today, please contact your manager")
	case errors.Is(err, attendance.ErrAlreadyCompleted):
		Conflict(w, "Attendance for today is already completed")
	case errors.Is(err, attendance.ErrOutOfOrder):
		Conflict(w, "Punch does not match the next required action")
	case errors.Is(err, attendance.ErrPunchInFlight):
		Conflict(w, "A punch submission is already in progress")
	case errors.Is(err, attendance.ErrOutsideRadius):
		PreconditionFailed(w, "You are outside the allowed radius")

	// Location domain errors
	case errors.Is(err, location.ErrPermissionDenied):
		PreconditionFailed(w, "Location permission denied")
	case errors.Is(err, location.ErrServicesDisabled):
		PreconditionFailed(w, "Location services are disabled")
	case errors.Is(err, location.ErrNoLocation):
		PreconditionFailed(w, "No location fix available")

	// Session errors
	case errors.Is(err, session.ErrExpired):
		Unauthorized(w, "Session expired, please sign in again")

	// Transport errors
	case errors.Is(err, hris.ErrNetwork):
		BadGateway(w, "Network error, please try again")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
