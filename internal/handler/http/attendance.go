package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	ExportMonthly(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceQueryService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceQueryService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	params, ok := parseQueryParams(w, r)
	if !ok {
		return
	}

	h.handle(w, r, params, newJSONAttendancePresenter(w, params))
}

// ExportMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	params, ok := parseQueryParams(w, r)
	if !ok {
		return
	}

	h.handle(w, r, params, newXLSXAttendancePresenter(w, params))
}

func (h *attendanceHandlerImpl) handle(w http.ResponseWriter, r *http.Request, params attendance.AttendanceQueryParams, presenter attendance.AttendancePresenter) {
	// employees only see their own attendance; anyone else looks unknown to them
	if scope, ok := attendance.ScopeFromContext(r.Context()); ok && !scope.CanRead(params.EmployeeID) {
		presenter.RespondInvalidEmployee(params.EmployeeID)
		return
	}

	if err := h.attendanceService.HandleRequest(r.Context(), params, presenter); err != nil {
		slog.Error("Failed to get attendance data",
			"employee_id", params.EmployeeID,
			"month", params.Month,
			"year", params.Year,
			"error", err,
		)
		response.HandleError(w, err)
	}
}

func parseQueryParams(w http.ResponseWriter, r *http.Request) (attendance.AttendanceQueryParams, bool) {
	req := attendance.AttendanceQueryRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      r.URL.Query().Get("month"),
		Year:       r.URL.Query().Get("year"),
	}

	params, err := req.Parse()
	if err != nil {
		var details map[string]string
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details = validationErrs.ToMap()
		}
		response.BadRequest(w, "Invalid query parameters", details)
		return attendance.AttendanceQueryParams{}, false
	}

	return params, true
}
