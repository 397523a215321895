package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a clock component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(value time.Time) Date {
	year, month, day := value.Date()
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AfterHour reports whether the time-of-day of value is strictly later than
// hour:00:00.
func AfterHour(value time.Time, hour int) bool {
	hh, mm, ss := value.Clock()
	if hh != hour {
		return hh > hour
	}
	return mm > 0 || ss > 0 || value.Nanosecond() > 0
}

// ClockString renders the time-of-day as HH:MM:SS.
func ClockString(value time.Time) string {
	return value.Format("15:04:05")
}

// LoadLocation resolves a configured zone name. Empty and "local" map to the
// host zone.
func LoadLocation(name string) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.EqualFold(trimmed, "local") {
		return time.Local, nil
	}
	if strings.EqualFold(trimmed, "utc") {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}
