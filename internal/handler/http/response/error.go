package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/auth"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/user"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, user.ErrUserClaimMissing), errors.Is(err, user.ErrRoleClaimMissing):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrEmployeeRequired):
		Forbidden(w, "An employee account is required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Office domain errors
	case errors.Is(err, office.ErrOfficeNotFound):
		NotFound(w, "Office location not found")
	case errors.Is(err, office.ErrOfficeNameExists):
		Conflict(w, "Office location with this name already exists")
	case errors.Is(err, office.ErrNothingToUpdate):
		BadRequest(w, "No updatable fields provided", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrDepartmentSettingsNotFound):
		NotFound(w, "Department settings not found")
	case errors.Is(err, settings.ErrDepartmentRequired):
		BadRequest(w, "Department name is required", nil)
	case errors.Is(err, settings.ErrEmptyOverride):
		BadRequest(w, "Settings update contains no fields", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday with this name already exists on this date")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
