// Package summary computes per-user task statistics from an
// already-fetched user and task list. It never touches the store.
package summary

import "github.com/ozgurgul/taskdemo/internal/models"

// Report aggregates a user's task counts and completion ratio.
type Report struct {
	User           models.User `json:"user"`
	Total          int         `json:"total_tasks"`
	Completed      int         `json:"completed_tasks"`
	Pending        int         `json:"pending_tasks"`
	CompletionRate float64     `json:"completion_rate"`
}

// Summarize builds a Report from the given user and tasks. The task
// slice is expected to be pre-filtered to the user's tasks. A user with
// zero tasks has a completion rate of exactly 0.
func Summarize(user models.User, tasks []models.Task) Report {
	r := Report{
		User:  user,
		Total: len(tasks),
	}
	for _, t := range tasks {
		if t.Completed {
			r.Completed++
		}
	}
	r.Pending = r.Total - r.Completed
	if r.Total > 0 {
		r.CompletionRate = float64(r.Completed) / float64(r.Total)
	}
	return r
}
