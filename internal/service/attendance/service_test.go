package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) ValidateEmployeeID(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *mockStorage) GetAttendanceDataForMonthYear(ctx context.Context, params attendance.AttendanceQueryParams) ([]attendance.Attendance, error) {
	args := m.Called(ctx, params)
	records, _ := args.Get(0).([]attendance.Attendance)
	return records, args.Error(1)
}

type mockPresenter struct {
	mock.Mock
}

func (m *mockPresenter) RespondInvalidMonth(month int) {
	m.Called(month)
}

func (m *mockPresenter) RespondInvalidYear(year int) {
	m.Called(year)
}

func (m *mockPresenter) RespondInvalidEmployee(employeeID string) {
	m.Called(employeeID)
}

func (m *mockPresenter) RespondWithAttendanceData(records []attendance.Attendance) {
	m.Called(records)
}

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func newTestService(storage attendance.AttendanceStorage) attendance.AttendanceQueryService {
	return NewAttendanceQueryService(storage, WithClock(func() time.Time { return fixedNow }))
}

func sampleRecords() []attendance.Attendance {
	day1 := time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2023, time.May, 3, 0, 0, 0, 0, time.UTC)
	return []attendance.Attendance{
		{ID: "a1", EmployeeID: "E1", Date: day1, Status: "present"},
		{ID: "a2", EmployeeID: "E1", Date: day2, Status: "late"},
	}
}

// ===== GetAttendanceData =====

func TestAttendanceQueryService_GetAttendanceData_Success(t *testing.T) {
	ctx := context.Background()
	storage := new(mockStorage)
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 5, Year: 2023}
	records := sampleRecords()

	storage.On("ValidateEmployeeID", ctx, "E1").Return(nil).Once()
	storage.On("GetAttendanceDataForMonthYear", ctx, params).Return(records, nil).Once()

	got, err := newTestService(storage).GetAttendanceData(ctx, params)

	require.NoError(t, err)
	assert.Equal(t, records, got)
	storage.AssertExpectations(t)
}

func TestAttendanceQueryService_GetAttendanceData_InvalidMonth(t *testing.T) {
	for _, month := range []int{-1, 0, 13, 100} {
		t.Run(fmt.Sprintf("month_%d", month), func(t *testing.T) {
			storage := new(mockStorage)
			params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: month, Year: 2023}

			_, err := newTestService(storage).GetAttendanceData(context.Background(), params)

			require.Error(t, err)
			assert.ErrorIs(t, err, attendance.ErrInvalidMonth)
			var monthErr *attendance.InvalidMonthError
			require.ErrorAs(t, err, &monthErr)
			assert.Equal(t, month, monthErr.Month)
			storage.AssertNotCalled(t, "ValidateEmployeeID", mock.Anything, mock.Anything)
			storage.AssertNotCalled(t, "GetAttendanceDataForMonthYear", mock.Anything, mock.Anything)
		})
	}
}

func TestAttendanceQueryService_GetAttendanceData_MonthBoundaries(t *testing.T) {
	for _, month := range []int{1, 12} {
		t.Run(fmt.Sprintf("month_%d", month), func(t *testing.T) {
			ctx := context.Background()
			storage := new(mockStorage)
			params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: month, Year: 2023}

			storage.On("ValidateEmployeeID", ctx, "E1").Return(nil).Once()
			storage.On("GetAttendanceDataForMonthYear", ctx, params).Return([]attendance.Attendance{}, nil).Once()

			_, err := newTestService(storage).GetAttendanceData(ctx, params)

			assert.NoError(t, err)
			storage.AssertExpectations(t)
		})
	}
}

func TestAttendanceQueryService_GetAttendanceData_FutureYear(t *testing.T) {
	storage := new(mockStorage)
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 1, Year: fixedNow.Year() + 1}

	_, err := newTestService(storage).GetAttendanceData(context.Background(), params)

	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrInvalidYear)
	var yearErr *attendance.InvalidYearError
	require.ErrorAs(t, err, &yearErr)
	assert.Equal(t, fixedNow.Year()+1, yearErr.Year)
	storage.AssertNotCalled(t, "ValidateEmployeeID", mock.Anything, mock.Anything)
}

func TestAttendanceQueryService_GetAttendanceData_CurrentYearIsValid(t *testing.T) {
	ctx := context.Background()
	storage := new(mockStorage)
	// December of the current year is accepted; only the year is checked
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 12, Year: fixedNow.Year()}

	storage.On("ValidateEmployeeID", ctx, "E1").Return(nil).Once()
	storage.On("GetAttendanceDataForMonthYear", ctx, params).Return([]attendance.Attendance{}, nil).Once()

	_, err := newTestService(storage).GetAttendanceData(ctx, params)

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestAttendanceQueryService_GetAttendanceData_NoLowerYearBound(t *testing.T) {
	for _, year := range []int{0, 1, -50} {
		t.Run(fmt.Sprintf("year_%d", year), func(t *testing.T) {
			ctx := context.Background()
			storage := new(mockStorage)
			params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 1, Year: year}

			storage.On("ValidateEmployeeID", ctx, "E1").Return(nil).Once()
			storage.On("GetAttendanceDataForMonthYear", ctx, params).Return([]attendance.Attendance{}, nil).Once()

			records, err := newTestService(storage).GetAttendanceData(ctx, params)

			require.NoError(t, err)
			assert.Empty(t, records)
			storage.AssertExpectations(t)
		})
	}
}

func TestAttendanceQueryService_GetAttendanceData_MonthCheckedBeforeYear(t *testing.T) {
	storage := new(mockStorage)
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 0, Year: fixedNow.Year() + 5}

	_, err := newTestService(storage).GetAttendanceData(context.Background(), params)

	assert.ErrorIs(t, err, attendance.ErrInvalidMonth)
	assert.NotErrorIs(t, err, attendance.ErrInvalidYear)
}

func TestAttendanceQueryService_GetAttendanceData_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	storage := new(mockStorage)
	params := attendance.AttendanceQueryParams{EmployeeID: "ghost", Month: 5, Year: 2023}

	storage.On("ValidateEmployeeID", ctx, "ghost").Return(attendance.ErrInvalidEmployeeID).Once()

	_, err := newTestService(storage).GetAttendanceData(ctx, params)

	assert.ErrorIs(t, err, attendance.ErrInvalidEmployeeID)
	storage.AssertNotCalled(t, "GetAttendanceDataForMonthYear", mock.Anything, mock.Anything)
}

// ===== HandleRequest =====

func TestAttendanceQueryService_HandleRequest_Success(t *testing.T) {
	ctx := context.Background()
	storage := new(mockStorage)
	presenter := new(mockPresenter)
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 5, Year: 2023}
	records := sampleRecords()

	storage.On("ValidateEmployeeID", ctx, "E1").Return(nil).Once()
	storage.On("GetAttendanceDataForMonthYear", ctx, params).Return(records, nil).Once()
	presenter.On("RespondWithAttendanceData", records).Once()

	err := newTestService(storage).HandleRequest(ctx, params, presenter)

	require.NoError(t, err)
	presenter.AssertExpectations(t)
	presenter.AssertNumberOfCalls(t, "RespondWithAttendanceData", 1)
}

func TestAttendanceQueryService_HandleRequest_InvalidMonth(t *testing.T) {
	storage := new(mockStorage)
	presenter := new(mockPresenter)
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 13, Year: 2023}

	presenter.On("RespondInvalidMonth", 13).Once()

	err := newTestService(storage).HandleRequest(context.Background(), params, presenter)

	require.NoError(t, err)
	presenter.AssertExpectations(t)
	presenter.AssertNotCalled(t, "RespondWithAttendanceData", mock.Anything)
}

func TestAttendanceQueryService_HandleRequest_InvalidYear(t *testing.T) {
	storage := new(mockStorage)
	presenter := new(mockPresenter)
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 5, Year: 3000}

	presenter.On("RespondInvalidYear", 3000).Once()

	err := newTestService(storage).HandleRequest(context.Background(), params, presenter)

	require.NoError(t, err)
	presenter.AssertExpectations(t)
}

func TestAttendanceQueryService_HandleRequest_InvalidEmployee(t *testing.T) {
	ctx := context.Background()
	storage := new(mockStorage)
	presenter := new(mockPresenter)
	params := attendance.AttendanceQueryParams{EmployeeID: "ghost", Month: 5, Year: 2023}

	// storage may wrap the sentinel
	storage.On("ValidateEmployeeID", ctx, "ghost").
		Return(fmt.Errorf("lookup employee ghost: %w", attendance.ErrInvalidEmployeeID)).Once()
	presenter.On("RespondInvalidEmployee", "ghost").Once()

	err := newTestService(storage).HandleRequest(ctx, params, presenter)

	require.NoError(t, err)
	presenter.AssertExpectations(t)
}

func TestAttendanceQueryService_HandleRequest_StorageFailurePropagates(t *testing.T) {
	ctx := context.Background()
	storage := new(mockStorage)
	presenter := new(mockPresenter)
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 5, Year: 2023}
	outage := errors.New("connection refused")

	storage.On("ValidateEmployeeID", ctx, "E1").Return(nil).Once()
	storage.On("GetAttendanceDataForMonthYear", ctx, params).Return(nil, outage).Once()

	err := newTestService(storage).HandleRequest(ctx, params, presenter)

	require.Error(t, err)
	assert.ErrorIs(t, err, outage)
	assert.Empty(t, presenter.Calls)
}

func TestAttendanceQueryService_HandleRequest_ValidationFailurePropagates(t *testing.T) {
	ctx := context.Background()
	storage := new(mockStorage)
	presenter := new(mockPresenter)
	params := attendance.AttendanceQueryParams{EmployeeID: "E1", Month: 5, Year: 2023}
	outage := errors.New("pool closed")

	storage.On("ValidateEmployeeID", ctx, "E1").Return(outage).Once()

	err := newTestService(storage).HandleRequest(ctx, params, presenter)

	assert.ErrorIs(t, err, outage)
	assert.Empty(t, presenter.Calls)
	storage.AssertNotCalled(t, "GetAttendanceDataForMonthYear", mock.Anything, mock.Anything)
}
