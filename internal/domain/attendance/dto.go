package attendance

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE QUERY DTOs
// ========================================

// AttendanceQueryParams selects one employee's attendance for a calendar month.
type AttendanceQueryParams struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

// MonthStart returns the first instant of the requested month in UTC.
func (p AttendanceQueryParams) MonthStart() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the first instant of the following month in UTC.
func (p AttendanceQueryParams) MonthEnd() time.Time {
	return p.MonthStart().AddDate(0, 1, 0)
}

// AttendanceQueryRequest holds the raw values read from the URL.
type AttendanceQueryRequest struct {
	EmployeeID string
	Month      string
	Year       string
}

// Parse converts the raw request into params. Range checks are left to the query service.
func (r AttendanceQueryRequest) Parse() (AttendanceQueryParams, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	month, err := strconv.Atoi(r.Month)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required and must be an integer",
		})
	}

	year, err := strconv.Atoi(r.Year)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required and must be an integer",
		})
	}

	if len(errs) > 0 {
		return AttendanceQueryParams{}, errs
	}

	return AttendanceQueryParams{
		EmployeeID: r.EmployeeID,
		Month:      month,
		Year:       year,
	}, nil
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name"`
	EmployeePosition  *string  `json:"employee_position,omitempty"`
	Date              string   `json:"date"`
	ClockInTime       *string  `json:"clock_in_time,omitempty"`
	ClockOutTime      *string  `json:"clock_out_time,omitempty"`
	WorkingHours      *float64 `json:"working_hours,omitempty"`
	Status            string   `json:"status"`
	LateMinutes       *int     `json:"late_minutes,omitempty"`
	EarlyLeaveMinutes *int     `json:"early_leave_minutes,omitempty"`
	OvertimeMinutes   *int     `json:"overtime_minutes,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type MonthlyAttendanceResponse struct {
	EmployeeID   string               `json:"employee_id"`
	Month        int                  `json:"month"`
	Year         int                  `json:"year"`
	TotalRecords int                  `json:"total_records"`
	Attendances  []AttendanceResponse `json:"attendances"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ToResponse maps a stored record to its JSON view.
func (a Attendance) ToResponse() AttendanceResponse {
	resp := AttendanceResponse{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		EmployeePosition:  a.EmployeePosition,
		Date:              a.Date.Format("2006-01-02"),
		ClockInTime:       timePtrToString(a.ClockIn),
		ClockOutTime:      timePtrToString(a.ClockOut),
		Status:            a.Status,
		LateMinutes:       a.LateMinutes,
		EarlyLeaveMinutes: a.EarlyLeaveMinutes,
		OvertimeMinutes:   a.OvertimeMinutes,
		CreatedAt:         a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         a.UpdatedAt.Format(time.RFC3339),
	}

	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}

	if a.WorkHoursInMinutes != nil {
		hours := float64(*a.WorkHoursInMinutes) / 60.0
		resp.WorkingHours = &hours
	}

	return resp
}

// NewMonthlyAttendanceResponse wraps records for one employee-month.
func NewMonthlyAttendanceResponse(params AttendanceQueryParams, records []Attendance) MonthlyAttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, att.ToResponse())
	}

	return MonthlyAttendanceResponse{
		EmployeeID:   params.EmployeeID,
		Month:        params.Month,
		Year:         params.Year,
		TotalRecords: len(responses),
		Attendances:  responses,
	}
}
