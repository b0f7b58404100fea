package store

import "github.com/ozgurgul/taskdemo/internal/models"

// TaskFilter selects a subset of the task collection. Nil fields mean
// "no constraint"; set fields compose conjunctively.
type TaskFilter struct {
	// Completed, when set, requires an exact boolean match.
	Completed *bool
	// UserID, when set, requires exact string equality. Tasks without an
	// owner never match a non-nil UserID.
	UserID *string
}

// ByUser returns a filter selecting tasks owned by the given user.
func ByUser(userID string) TaskFilter {
	return TaskFilter{UserID: &userID}
}

// ByCompleted returns a filter selecting tasks by completion state.
func ByCompleted(completed bool) TaskFilter {
	return TaskFilter{Completed: &completed}
}

func (f TaskFilter) matches(t models.Task) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.UserID != nil {
		if t.UserID == nil || *t.UserID != *f.UserID {
			return false
		}
	}
	return true
}
