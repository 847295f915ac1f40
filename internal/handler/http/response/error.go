package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
)

// HandleError maps errors that reach the HTTP edge outside a presenter
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, attendance.ErrScopeRequired):
		Forbidden(w, "Company access required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
