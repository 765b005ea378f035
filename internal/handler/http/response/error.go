package response

import (
	"errors"
	"net/http"

	"github.com/staffly/ems-backend-go/internal/domain/auth"
	"github.com/staffly/ems-backend-go/internal/domain/employee"
	"github.com/staffly/ems-backend-go/internal/domain/user"
	"github.com/staffly/ems-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already exists. Please use a different email.")
	case errors.Is(err, auth.ErrStoreNotReady), errors.Is(err, employee.ErrStoreNotReady):
		ServiceUnavailable(w, "Store is still loading, try again shortly")

	// Role gating
	case errors.Is(err, user.ErrManagementRoleRequired):
		Forbidden(w, "You don't have permission to access this page.")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
