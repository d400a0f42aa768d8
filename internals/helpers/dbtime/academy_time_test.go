package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	assert.True(t, DateOf(time.Time{}).IsZero())

	// 02:00 UTC is still the previous evening in Bogotá (UTC-5).
	got := DateOf(time.Date(2026, 1, 2, 2, 0, 0, 0, time.UTC))
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if AcademyLocation() == time.UTC {
		want = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	}
	assert.Equal(t, want, got)
}
