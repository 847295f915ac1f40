package attendance

import (
	"time"
)

type Attendance struct {
	ID                 string
	EmployeeID         string
	CompanyID          string
	Date               time.Time
	ClockIn            *time.Time
	ClockOut           *time.Time
	WorkHoursInMinutes *int
	Status             string
	LateMinutes        *int
	EarlyLeaveMinutes  *int
	OvertimeMinutes    *int
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	EmployeeName     *string
	EmployeePosition *string
}
