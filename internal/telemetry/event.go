package telemetry

import "time"

type EventType string

const (
	EventTaskToggled      EventType = "task_toggled"
	EventTaskCreated      EventType = "task_created"
	EventDayReset         EventType = "day_reset"
	EventWeekReset        EventType = "week_reset"
	EventJobCreated       EventType = "job_created"
	EventJobStatusChanged EventType = "job_status_changed"
	EventProblemsDrawn    EventType = "problems_drawn"
	EventResumeAnalyzed   EventType = "resume_analyzed"
	EventLLMGenerate      EventType = "llm_generate"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
