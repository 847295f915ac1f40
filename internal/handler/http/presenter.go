package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/spreadsheet"
)

// jsonAttendancePresenter writes query outcomes as the standard JSON envelope.
type jsonAttendancePresenter struct {
	w      http.ResponseWriter
	params attendance.AttendanceQueryParams
}

func newJSONAttendancePresenter(w http.ResponseWriter, params attendance.AttendanceQueryParams) *jsonAttendancePresenter {
	return &jsonAttendancePresenter{w: w, params: params}
}

// RespondInvalidMonth implements attendance.AttendancePresenter.
func (p *jsonAttendancePresenter) RespondInvalidMonth(month int) {
	response.ValidationError(p.w, map[string]string{
		"month": attendance.ErrInvalidMonth.Error(),
	})
}

// RespondInvalidYear implements attendance.AttendancePresenter.
func (p *jsonAttendancePresenter) RespondInvalidYear(year int) {
	response.ValidationError(p.w, map[string]string{
		"year": attendance.ErrInvalidYear.Error(),
	})
}

// RespondInvalidEmployee implements attendance.AttendancePresenter.
func (p *jsonAttendancePresenter) RespondInvalidEmployee(employeeID string) {
	response.NotFound(p.w, "Employee not found")
}

// RespondWithAttendanceData implements attendance.AttendancePresenter.
func (p *jsonAttendancePresenter) RespondWithAttendanceData(records []attendance.Attendance) {
	response.Success(p.w, attendance.NewMonthlyAttendanceResponse(p.params, records))
}

// xlsxAttendancePresenter serves the data as a workbook; failures stay JSON.
type xlsxAttendancePresenter struct {
	*jsonAttendancePresenter
}

func newXLSXAttendancePresenter(w http.ResponseWriter, params attendance.AttendanceQueryParams) *xlsxAttendancePresenter {
	return &xlsxAttendancePresenter{jsonAttendancePresenter: newJSONAttendancePresenter(w, params)}
}

// RespondWithAttendanceData implements attendance.AttendancePresenter.
func (p *xlsxAttendancePresenter) RespondWithAttendanceData(records []attendance.Attendance) {
	content, err := spreadsheet.AttendanceWorkbook(records)
	if err != nil {
		slog.Error("Failed to build attendance workbook", "employee_id", p.params.EmployeeID, "error", err)
		response.InternalServerError(p.w, "Failed to generate attendance export")
		return
	}

	filename := fmt.Sprintf("attendance_%s_%04d_%02d.xlsx", p.params.EmployeeID, p.params.Year, p.params.Month)
	response.File(p.w, spreadsheet.ContentTypeXLSX, filename, content)
}
