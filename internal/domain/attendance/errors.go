package attendance

import (
	"errors"
	"fmt"
)

// Attendance query errors
var (
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrInvalidYear       = errors.New("year must not be in the future")
	ErrInvalidEmployeeID = errors.New("employee not found")
	ErrScopeRequired     = errors.New("company scope is required")
)

// InvalidMonthError carries the rejected month. It matches ErrInvalidMonth.
type InvalidMonthError struct {
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %d: %s", e.Month, ErrInvalidMonth)
}

func (e *InvalidMonthError) Unwrap() error {
	return ErrInvalidMonth
}

// InvalidYearError carries the rejected year. It matches ErrInvalidYear.
type InvalidYearError struct {
	Year int
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year %d: %s", e.Year, ErrInvalidYear)
}

func (e *InvalidYearError) Unwrap() error {
	return ErrInvalidYear
}
