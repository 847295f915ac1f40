package attendance

import (
	"context"
)

// AttendanceStorage is the persistence side of the attendance query.
type AttendanceStorage interface {
	// ValidateEmployeeID returns an error matching ErrInvalidEmployeeID when the employee is unknown
	ValidateEmployeeID(ctx context.Context, employeeID string) error

	// GetAttendanceDataForMonthYear returns the employee's records for the month, oldest first
	GetAttendanceDataForMonthYear(ctx context.Context, params AttendanceQueryParams) ([]Attendance, error)
}
