package clock

import (
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// DayKey returns the local calendar date of t as "YYYY-MM-DD".
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(dayLayout)
}

// WeekKey returns the local calendar date of the most recent Sunday,
// inclusive of t itself, as "YYYY-MM-DD".
func WeekKey(t time.Time) string {
	t = t.In(time.Local)
	return t.AddDate(0, 0, -int(t.Weekday())).Format(dayLayout)
}

// FakeClock is deterministic and test-friendly.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
