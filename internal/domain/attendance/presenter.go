package attendance

// AttendancePresenter turns query outcomes into a response for one transport.
type AttendancePresenter interface {
	RespondInvalidMonth(month int)
	RespondInvalidYear(year int)
	RespondInvalidEmployee(employeeID string)
	RespondWithAttendanceData(records []Attendance)
}
