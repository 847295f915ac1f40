package attendance

import (
	"context"
)

// AttendanceQueryService defines the monthly attendance lookup
type AttendanceQueryService interface {
	// GetAttendanceData validates params and returns the matching records
	GetAttendanceData(ctx context.Context, params AttendanceQueryParams) ([]Attendance, error)

	// HandleRequest runs GetAttendanceData and reports the outcome through presenter.
	// Only errors outside the validation taxonomy are returned.
	HandleRequest(ctx context.Context, params AttendanceQueryParams, presenter AttendancePresenter) error
}
