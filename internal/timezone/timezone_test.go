package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBack(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Not/AZone"))
	assert.NotNil(t, Location("Not/AZone"))
	assert.Equal(t, time.UTC, Location("UTC"))
}

func TestDayHelpers(t *testing.T) {
	ts := time.Date(2026, 10, 20, 15, 45, 10, 0, time.UTC)

	assert.Equal(t, "2026-10-20", DayKey(ts))
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}

func TestParse(t *testing.T) {
	d, err := ParseDate("2026-10-20", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, d.Weekday())

	dt, err := ParseDateTime("2026-10-20", "09:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 9, dt.Hour())
	assert.Equal(t, 30, dt.Minute())

	_, err = ParseDateTime("2026-10-20", "9h30", time.UTC)
	assert.Error(t, err)
}
