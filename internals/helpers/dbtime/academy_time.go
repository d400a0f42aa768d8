// Package dbtime pins calendar dates to the academy's timezone.
package dbtime

import (
	"os"
	"strings"
	"sync"
	"time"
)

const defaultTimezone = "America/Bogota"

var (
	locOnce sync.Once
	loc     *time.Location
)

// AcademyLocation reads ACADEMY_TIMEZONE once.
// Fallback: America/Bogota, then UTC when tzdata is missing.
func AcademyLocation() *time.Location {
	locOnce.Do(func() {
		name := strings.TrimSpace(os.Getenv("ACADEMY_TIMEZONE"))
		if name == "" {
			name = defaultTimezone
		}
		l, err := time.LoadLocation(name)
		if err != nil {
			l = time.UTC
		}
		loc = l
	})
	return loc
}

// DateOf returns the academy calendar day of t as midnight UTC, the shape
// stored in date columns.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	local := t.In(AcademyLocation())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
