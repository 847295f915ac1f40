package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
)

type AttendanceQueryServiceImpl struct {
	attendance.AttendanceStorage
	now func() time.Time
}

// HandleRequest implements attendance.AttendanceQueryService.
func (a *AttendanceQueryServiceImpl) HandleRequest(ctx context.Context, params attendance.AttendanceQueryParams, presenter attendance.AttendancePresenter) error {
	records, err := a.GetAttendanceData(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrInvalidMonth):
			presenter.RespondInvalidMonth(params.Month)
		case errors.Is(err, attendance.ErrInvalidYear):
			presenter.RespondInvalidYear(params.Year)
		case errors.Is(err, attendance.ErrInvalidEmployeeID):
			presenter.RespondInvalidEmployee(params.EmployeeID)
		default:
			return fmt.Errorf("failed to get attendance data: %w", err)
		}
		return nil
	}

	presenter.RespondWithAttendanceData(records)
	return nil
}

// GetAttendanceData implements attendance.AttendanceQueryService.
func (a *AttendanceQueryServiceImpl) GetAttendanceData(ctx context.Context, params attendance.AttendanceQueryParams) ([]attendance.Attendance, error) {
	if err := validateMonth(params.Month); err != nil {
		return nil, err
	}

	if err := validateYear(params.Year, a.now()); err != nil {
		return nil, err
	}

	if err := a.AttendanceStorage.ValidateEmployeeID(ctx, params.EmployeeID); err != nil {
		return nil, err
	}

	return a.AttendanceStorage.GetAttendanceDataForMonthYear(ctx, params)
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return &attendance.InvalidMonthError{Month: month}
	}
	return nil
}

// validateYear accepts any year up to and including the current one.
func validateYear(year int, now time.Time) error {
	if year > now.Year() {
		return &attendance.InvalidYearError{Year: year}
	}
	return nil
}

// Option customises the query service.
type Option func(*AttendanceQueryServiceImpl)

// WithClock replaces time.Now as the source of the current year.
func WithClock(now func() time.Time) Option {
	return func(a *AttendanceQueryServiceImpl) {
		a.now = now
	}
}

func NewAttendanceQueryService(storage attendance.AttendanceStorage, opts ...Option) attendance.AttendanceQueryService {
	svc := &AttendanceQueryServiceImpl{
		AttendanceStorage: storage,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}
