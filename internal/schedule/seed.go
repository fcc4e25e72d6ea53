package schedule

// DefaultTasks returns the seed checklist offered to new users and
// re-offered by restore-defaults. IDs are stable across releases so that
// reconcile can tell a missing default from a user-added task.
func DefaultTasks() []Task {
	return []Task{
		{
			ID:         1,
			Label:      "Apply to 3 jobs",
			Target:     3,
			Frequency:  FrequencyDaily,
			LinkedView: "apply",
			IsDefault:  true,
		},
		{
			ID:         2,
			Label:      "Solve 1 LeetCode / interview problem",
			Target:     1,
			Frequency:  FrequencyDaily,
			LinkedView: "leetcode",
			IsDefault:  true,
		},
		{
			ID:         3,
			Label:      "Send 2 networking messages on LinkedIn",
			Target:     2,
			Frequency:  FrequencyDaily,
			LinkedView: "apply",
			IsDefault:  true,
		},
		{
			ID:         4,
			Label:      "Spend 15 minutes improving resume/portfolio",
			Target:     1,
			Frequency:  FrequencyWeekly,
			LinkedView: "resume",
			IsDefault:  true,
		},
	}
}

// reconcile merges any default task whose ID is absent from tasks. It is
// additive only: user-added tasks and user edits to defaults survive.
func reconcile(tasks, defaults []Task) []Task {
	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		seen[t.ID] = true
	}
	out := tasks
	for _, d := range defaults {
		if !seen[d.ID] {
			out = append(out, d)
		}
	}
	return out
}
