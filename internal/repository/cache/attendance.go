package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/redis/go-redis/v9"
)

// attendanceCache is a read-through cache for months that have ended. Corrections
// to an ended month stay hidden until its entry expires, so ttl bounds staleness.
type attendanceCache struct {
	next   attendance.AttendanceStorage
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// ValidateEmployeeID implements attendance.AttendanceStorage.
func (c *attendanceCache) ValidateEmployeeID(ctx context.Context, employeeID string) error {
	return c.next.ValidateEmployeeID(ctx, employeeID)
}

// GetAttendanceDataForMonthYear implements attendance.AttendanceStorage.
func (c *attendanceCache) GetAttendanceDataForMonthYear(ctx context.Context, params attendance.AttendanceQueryParams) ([]attendance.Attendance, error) {
	scope, ok := attendance.ScopeFromContext(ctx)
	if !ok || !c.isClosedMonth(params) {
		return c.next.GetAttendanceDataForMonthYear(ctx, params)
	}

	key := monthKey(scope.CompanyID, params)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var records []attendance.Attendance
		if err := json.Unmarshal(cached, &records); err == nil {
			return records, nil
		}
		slog.Warn("Discarding undecodable attendance cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("Attendance cache read failed", "key", key, "error", err)
	}

	records, err := c.next.GetAttendanceDataForMonthYear(ctx, params)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		slog.Warn("Failed to encode attendance cache entry", "key", key, "error", err)
		return records, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("Attendance cache write failed", "key", key, "error", err)
	}

	return records, nil
}

// isClosedMonth reports whether the requested month ended before the current one began.
// The current month is read off the local calendar, as the year check in the service is.
func (c *attendanceCache) isClosedMonth(params attendance.AttendanceQueryParams) bool {
	now := c.now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return !params.MonthEnd().After(currentMonth)
}

func monthKey(companyID string, params attendance.AttendanceQueryParams) string {
	return fmt.Sprintf("attendance:%s:%s:%04d-%02d", companyID, params.EmployeeID, params.Year, params.Month)
}

// NewAttendanceCache wraps next with a redis-backed cache.
func NewAttendanceCache(next attendance.AttendanceStorage, client *redis.Client, ttl time.Duration) attendance.AttendanceStorage {
	return newAttendanceCache(next, client, ttl, time.Now)
}

func newAttendanceCache(next attendance.AttendanceStorage, client *redis.Client, ttl time.Duration, now func() time.Time) *attendanceCache {
	return &attendanceCache{
		next:   next,
		client: client,
		ttl:    ttl,
		now:    now,
	}
}
