// Package schedule implements the daily/weekly task checklist: the task
// records themselves, the calendar-keyed reset logic applied on load, the
// per-day history ledger, and the streak derived from it.
package schedule

import "errors"

var ErrTaskNotFound = errors.New("schedule: task not found")

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	// FrequencyCustom is accepted on input but has no reset boundary of
	// its own; custom tasks keep their counts until edited.
	FrequencyCustom Frequency = "custom"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

type Task struct {
	ID             int       `json:"id"`
	Label          string    `json:"label"`
	Target         int       `json:"target"`
	CompletedCount int       `json:"completedCount"`
	Frequency      Frequency `json:"frequency"`
	IsDefault      bool      `json:"isDefault,omitempty"`
	LinkedView     string    `json:"linkedView,omitempty"`
	ExternalURL    string    `json:"externalUrl,omitempty"`
}

// Done reports whether the task met its target within the current period.
func (t Task) Done() bool { return t.CompletedCount >= t.Target }

// clamp enforces target >= 1 and 0 <= completedCount <= target.
func (t *Task) clamp() {
	if t.Target < 1 {
		t.Target = 1
	}
	if !t.Frequency.Valid() {
		t.Frequency = FrequencyDaily
	}
	if t.CompletedCount < 0 {
		t.CompletedCount = 0
	}
	if t.CompletedCount > t.Target {
		t.CompletedCount = t.Target
	}
}

// HistoryEntry is the completion snapshot for one day key. Entries written
// before per-task counts existed carry only GoalMet; projections treat
// those as 1-of-1 or 0-of-1.
type HistoryEntry struct {
	CompletedCount int  `json:"completedCount"`
	Total          int  `json:"total"`
	GoalMet        bool `json:"goalMet"`
}

// State is the full persisted blob: the ordered task list, the history
// ledger, and the day/week keys of the last reset evaluation. LastWeek was
// added after LastDate; a blob without it forces one weekly reset.
type State struct {
	Tasks    []Task                  `json:"tasks"`
	History  map[string]HistoryEntry `json:"history"`
	LastDate string                  `json:"lastDate"`
	LastWeek string                  `json:"lastWeek,omitempty"`
}

// DayStatus is one cell of the seven-day history projection.
type DayStatus struct {
	Key       string `json:"key"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}
