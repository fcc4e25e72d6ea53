package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKey(t *testing.T) {
	d := time.Date(2024, 1, 1, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-01-01", DayKey(d))

	d = time.Date(2024, 2, 29, 0, 0, 1, 0, time.Local)
	assert.Equal(t, "2024-02-29", DayKey(d))
}

func TestWeekKey_MostRecentSunday(t *testing.T) {
	// 2024-01-01 is a Monday, so the week key is the day before.
	mon := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2023-12-31", WeekKey(mon))

	sat := time.Date(2024, 1, 6, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "2023-12-31", WeekKey(sat))
}

func TestWeekKey_SundayIsItsOwnWeekKey(t *testing.T) {
	sun := time.Date(2024, 1, 7, 6, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-01-07", WeekKey(sun))
}

func TestWeekKey_StableWithinWeek(t *testing.T) {
	start := time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		assert.Equal(t, "2024-01-07", WeekKey(start.AddDate(0, 0, i)))
	}
	assert.Equal(t, "2024-01-14", WeekKey(start.AddDate(0, 0, 7)))
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	c := NewFakeClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(25 * time.Hour)
	assert.Equal(t, "2024-01-02", DayKey(c.Now()))

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
