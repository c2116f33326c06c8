// Package period handles the YYYY-MM month keys the analysis runs over.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// Parse parses a month key like "2025-12".
func Parse(key string) (Month, error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return Month{}, fmt.Errorf("invalid month %q: use YYYY-MM (e.g., 2025-12)", key)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Month{}, fmt.Errorf("invalid year in month %q: %w", key, err)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Month{}, fmt.Errorf("invalid month in %q: %w", key, err)
	}
	if m < 1 || m > 12 {
		return Month{}, fmt.Errorf("month out of range in %q", key)
	}

	return Month{Year: year, Month: time.Month(m)}, nil
}

// Current returns the month containing now.
func Current(now time.Time) Month {
	return Month{Year: now.Year(), Month: now.Month()}
}

// Previous returns the month before the one containing now.
func Previous(now time.Time) Month {
	return Current(now).AddMonths(-1)
}

// String returns the "2025-12" month key.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label returns the display form, e.g. "December 2025".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}

// Range returns the first and last day of the month.
func (m Month) Range() (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// AddMonths returns the month n months after m (n may be negative).
func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}
