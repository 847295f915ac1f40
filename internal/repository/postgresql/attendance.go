package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

// ValidateEmployeeID implements attendance.AttendanceStorage.
func (a *attendanceRepository) ValidateEmployeeID(ctx context.Context, employeeID string) error {
	// employees.id is a uuid column; anything else would fail the cast
	if _, err := uuid.Parse(employeeID); err != nil {
		return attendance.ErrInvalidEmployeeID
	}

	scope, ok := attendance.ScopeFromContext(ctx)
	if !ok {
		return attendance.ErrScopeRequired
	}
	// employees.company_id is a uuid column too; a malformed company has no employees
	if _, err := uuid.Parse(scope.CompanyID); err != nil {
		return attendance.ErrInvalidEmployeeID
	}

	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, scope.CompanyID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check employee existence: %w", err)
	}

	if !exists {
		return attendance.ErrInvalidEmployeeID
	}

	return nil
}

// GetAttendanceDataForMonthYear implements attendance.AttendanceStorage.
func (a *attendanceRepository) GetAttendanceDataForMonthYear(ctx context.Context, params attendance.AttendanceQueryParams) ([]attendance.Attendance, error) {
	scope, ok := attendance.ScopeFromContext(ctx)
	if !ok {
		return nil, attendance.ErrScopeRequired
	}

	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			a.id, a.employee_id, a.company_id, a.date,
			a.clock_in, a.clock_out, a.work_hours_in_minutes,
			a.status, a.late_minutes, a.early_leave_minutes, a.overtime_minutes,
			a.created_at, a.updated_at,
			e.full_name AS employee_name,
			p.name AS employee_position
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE a.employee_id = $1
		  AND a.company_id = $2
		  AND a.date >= $3
		  AND a.date < $4
		ORDER BY a.date ASC, a.clock_in ASC
	`

	rows, err := q.Query(ctx, query, params.EmployeeID, scope.CompanyID, params.MonthStart(), params.MonthEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date,
			&att.ClockIn, &att.ClockOut, &att.WorkHoursInMinutes,
			&att.Status, &att.LateMinutes, &att.EarlyLeaveMinutes, &att.OvertimeMinutes,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeePosition,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceStorage {
	return &attendanceRepository{db: db}
}
