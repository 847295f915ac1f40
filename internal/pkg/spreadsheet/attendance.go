package spreadsheet

import (
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	AttendanceSheet = "Attendance"
)

var attendanceHeaders = []string{
	"Date", "Employee", "Position", "Status", "Clock In", "Clock Out",
	"Working Hours", "Late Minutes", "Early Leave Minutes", "Overtime Minutes",
}

// AttendanceWorkbook renders one month of records as an xlsx file.
func AttendanceWorkbook(records []attendance.Attendance) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AttendanceSheet); err != nil {
		return nil, fmt.Errorf("error renaming sheet: %w", err)
	}

	if err := f.SetSheetRow(AttendanceSheet, "A1", &attendanceHeaders); err != nil {
		return nil, fmt.Errorf("error writing headers: %w", err)
	}

	for i, att := range records {
		resp := att.ToResponse()
		row := []interface{}{
			resp.Date,
			resp.EmployeeName,
			stringOrEmpty(resp.EmployeePosition),
			resp.Status,
			stringOrEmpty(resp.ClockInTime),
			stringOrEmpty(resp.ClockOutTime),
			floatOrEmpty(resp.WorkingHours),
			intOrEmpty(resp.LateMinutes),
			intOrEmpty(resp.EarlyLeaveMinutes),
			intOrEmpty(resp.OvertimeMinutes),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(AttendanceSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error saving workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func stringOrEmpty(s *string) interface{} {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(i *int) interface{} {
	if i == nil {
		return ""
	}
	return *i
}

func floatOrEmpty(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}
