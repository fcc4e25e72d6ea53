package schedule

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/raghugg/job-hunter/internal/clock"
	"github.com/raghugg/job-hunter/internal/store"
)

// StateKey is the persistence adapter key holding the serialized State.
const StateKey = "jobhunter_state_v1"

// Patch represents a partial task update.
// nil pointer => "no change"
type Patch struct {
	Label       *string    `json:"label,omitempty"`
	Target      *int       `json:"target,omitempty"`
	Frequency   *Frequency `json:"frequency,omitempty"`
	LinkedView  *string    `json:"linkedView,omitempty"`
	ExternalURL *string    `json:"externalUrl,omitempty"`
}

// Engine owns the checklist state for the single active session. Every
// mutation updates the in-memory state first and then overwrites the
// persisted blob wholesale, so the store never sees a partial patch.
type Engine struct {
	mu    sync.Mutex
	store store.Store
	clock clock.Clock
	state State

	// set once during NewEngine when the persisted day or week key was stale
	dayResetApplied  bool
	weekResetApplied bool
}

// NewEngine loads persisted state through st, applying the day/week reset
// rules for the current moment. A missing or unparsable blob falls back to
// a freshly seeded state; NewEngine never fails on bad data.
func NewEngine(st store.Store, clk clock.Clock) *Engine {
	if clk == nil {
		clk = clock.RealClock{}
	}
	e := &Engine{store: st, clock: clk}
	e.mu.Lock()
	e.state = e.loadLocked()
	e.saveLocked()
	e.mu.Unlock()
	return e
}

// ResetsApplied reports whether loading persisted state zeroed daily or
// weekly counts because the stored day or week key no longer matched the
// clock. A fresh or unparsable blob reports neither.
func (e *Engine) ResetsApplied() (day, week bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dayResetApplied, e.weekResetApplied
}

func freshState(now time.Time) State {
	return State{
		Tasks:    DefaultTasks(),
		History:  map[string]HistoryEntry{},
		LastDate: clock.DayKey(now),
		LastWeek: clock.WeekKey(now),
	}
}

// loadLocked rehydrates persisted state and applies the reset rules:
// a changed day key zeroes daily counts, a changed week key zeroes weekly
// counts. Comparison is equality only, never ordering, so a clock that
// moved backward still just triggers a reset rather than corrupting state.
func (e *Engine) loadLocked() State {
	now := e.clock.Now()
	todayKey := clock.DayKey(now)
	todayWeek := clock.WeekKey(now)

	raw, ok := e.store.Get(StateKey)
	if !ok {
		return freshState(now)
	}
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return freshState(now)
	}
	if st.History == nil {
		st.History = map[string]HistoryEntry{}
	}
	if len(st.Tasks) == 0 {
		st.Tasks = DefaultTasks()
	}

	dayChanged := st.LastDate != todayKey
	// A blob persisted before LastWeek existed has it empty, which can
	// never equal todayWeek: "unknown" forces one weekly reset.
	weekChanged := st.LastWeek != todayWeek
	e.dayResetApplied = dayChanged
	e.weekResetApplied = weekChanged

	for i := range st.Tasks {
		st.Tasks[i].clamp()
		switch st.Tasks[i].Frequency {
		case FrequencyDaily:
			if dayChanged {
				st.Tasks[i].CompletedCount = 0
			}
		case FrequencyWeekly:
			if weekChanged {
				st.Tasks[i].CompletedCount = 0
			}
		}
	}

	st.Tasks = reconcile(st.Tasks, DefaultTasks())
	st.LastDate = todayKey
	st.LastWeek = todayWeek
	return st
}

func (e *Engine) saveLocked() {
	b, err := json.Marshal(e.state)
	if err != nil {
		return
	}
	_ = e.store.Set(StateKey, string(b))
}

// State returns a deep copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copyStateLocked()
}

func (e *Engine) copyStateLocked() State {
	out := e.state
	out.Tasks = append([]Task(nil), e.state.Tasks...)
	out.History = make(map[string]HistoryEntry, len(e.state.History))
	for k, v := range e.state.History {
		out.History[k] = v
	}
	return out
}

func (e *Engine) findLocked(id int) (*Task, bool) {
	for i := range e.state.Tasks {
		if e.state.Tasks[i].ID == id {
			return &e.state.Tasks[i], true
		}
	}
	return nil, false
}

// Toggle flips a task between fully met and not started: at or past the
// target it drops to zero, anywhere below it jumps to the target.
func (e *Engine) Toggle(id int) (Task, error) {
	return e.mutate(id, func(t *Task) {
		if t.CompletedCount >= t.Target {
			t.CompletedCount = 0
		} else {
			t.CompletedCount = t.Target
		}
	})
}

func (e *Engine) Increment(id int) (Task, error) {
	return e.mutate(id, func(t *Task) {
		t.CompletedCount++
	})
}

func (e *Engine) Decrement(id int) (Task, error) {
	return e.mutate(id, func(t *Task) {
		t.CompletedCount--
	})
}

func (e *Engine) mutate(id int, fn func(*Task)) (Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.findLocked(id)
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	fn(t)
	t.clamp()
	e.recomputeTodaySnapshotLocked()
	e.saveLocked()
	return *t, nil
}

// recomputeTodaySnapshotLocked overwrites today's history entry from the
// full task set. Weekly task progress is counted into today's daily
// snapshot on purpose; that conflation matches the product's behavior and
// is deliberately confined to this one function.
func (e *Engine) recomputeTodaySnapshotLocked() {
	todayKey := clock.DayKey(e.clock.Now())

	completed := 0
	for _, t := range e.state.Tasks {
		if t.Done() {
			completed++
		}
	}
	total := len(e.state.Tasks)

	e.state.History[todayKey] = HistoryEntry{
		CompletedCount: completed,
		Total:          total,
		GoalMet:        completed == total && total > 0,
	}
	e.state.LastDate = todayKey
}

// CreateTask appends a user task. IDs continue past the highest ever seen
// in the current task set.
func (e *Engine) CreateTask(t Task) Task {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := 0
	for _, existing := range e.state.Tasks {
		if existing.ID > next {
			next = existing.ID
		}
	}
	t.ID = next + 1
	t.IsDefault = false
	t.CompletedCount = 0
	t.clamp()

	e.state.Tasks = append(e.state.Tasks, t)
	e.saveLocked()
	return t
}

// UpdateTask applies a partial edit. Lowering the target clamps any excess
// completion back into range.
func (e *Engine) UpdateTask(id int, p Patch) (Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.findLocked(id)
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	if p.Label != nil {
		t.Label = *p.Label
	}
	if p.Target != nil {
		t.Target = *p.Target
	}
	if p.Frequency != nil && p.Frequency.Valid() {
		t.Frequency = *p.Frequency
	}
	if p.LinkedView != nil {
		t.LinkedView = *p.LinkedView
	}
	if p.ExternalURL != nil {
		t.ExternalURL = *p.ExternalURL
	}
	t.clamp()
	e.saveLocked()
	return *t, nil
}

func (e *Engine) DeleteTask(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.state.Tasks[:0]
	found := false
	for _, t := range e.state.Tasks {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return ErrTaskNotFound
	}
	e.state.Tasks = out
	e.saveLocked()
	return nil
}

// RestoreDefaults re-adds any missing default task without touching user
// tasks or history.
func (e *Engine) RestoreDefaults() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Tasks = reconcile(e.state.Tasks, DefaultTasks())
	e.saveLocked()
	return e.copyStateLocked()
}

// Reset wipes everything back to a freshly seeded state.
func (e *Engine) Reset() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	_ = e.store.Delete(StateKey)
	e.state = freshState(e.clock.Now())
	e.saveLocked()
	return e.copyStateLocked()
}

// Streak counts consecutive goal-met days walking backward from today.
// The first missing or unmet day stops the walk, so a day the app was
// never opened breaks the streak implicitly.
func (e *Engine) Streak() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	d := e.clock.Now()
	for {
		entry, ok := e.state.History[clock.DayKey(d)]
		if !ok || !entry.GoalMet {
			return n
		}
		n++
		d = d.AddDate(0, 0, -1)
	}
}

// LastSevenDays projects the history ledger onto the last 7 calendar days
// ending today, oldest first. Absent days read as 0 of 0 at 0%.
func (e *Engine) LastSevenDays() []DayStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	out := make([]DayStatus, 0, 7)
	for idx := 6; idx >= 0; idx-- {
		d := now.AddDate(0, 0, -idx)
		key := clock.DayKey(d)
		ds := DayStatus{Key: key}

		if entry, ok := e.state.History[key]; ok {
			if entry.Total > 0 {
				ds.Completed = entry.CompletedCount
				ds.Total = entry.Total
			} else if entry.GoalMet {
				// Legacy entry written before per-task counts existed.
				ds.Completed = 1
				ds.Total = 1
			}
		}
		if ds.Total > 0 {
			ds.Percent = int(math.Round(float64(ds.Completed) / float64(ds.Total) * 100))
		}
		out = append(out, ds)
	}
	return out
}
