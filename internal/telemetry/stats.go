package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period            string            `json:"period"`
	EventCounts       map[EventType]int `json:"event_counts"`
	TaskToggles       int               `json:"task_toggles"`
	TogglesPerDay     float64           `json:"toggles_per_day"`
	DayResets         int               `json:"day_resets"`
	WeekResets        int               `json:"week_resets"`
	JobsCreated       int               `json:"jobs_created"`
	JobsByStage       map[string]int    `json:"jobs_by_stage"`
	ProblemDraws      int               `json:"problem_draws"`
	DrawsByDifficulty map[string]int    `json:"draws_by_difficulty"`
	ResumeAnalyses    int               `json:"resume_analyses"`
	LLMCallsByModel   map[string]int    `json:"llm_calls_by_model"`
}

// CalculateStats aggregates activity stats from recorded events.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:            since.Format("2006-01-02"),
		EventCounts:       make(map[EventType]int),
		JobsByStage:       make(map[string]int),
		DrawsByDifficulty: make(map[string]int),
		LLMCallsByModel:   make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventTaskToggled:
			stats.TaskToggles++
		case EventDayReset:
			stats.DayResets++
		case EventWeekReset:
			stats.WeekResets++
		case EventJobCreated:
			stats.JobsCreated++
		case EventJobStatusChanged:
			if stage, ok := metadata["status"].(string); ok {
				stats.JobsByStage[stage]++
			}
		case EventProblemsDrawn:
			stats.ProblemDraws++
			if diff, ok := metadata["difficulty"].(string); ok && diff != "" {
				stats.DrawsByDifficulty[diff]++
			}
		case EventResumeAnalyzed:
			stats.ResumeAnalyses++
		case EventLLMGenerate:
			if model, ok := metadata["model"].(string); ok {
				stats.LLMCallsByModel[model]++
			}
		}
	}

	if stats.DayResets > 0 {
		stats.TogglesPerDay = float64(stats.TaskToggles) / float64(stats.DayResets)
	}

	return stats, nil
}
