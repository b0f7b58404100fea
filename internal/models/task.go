package models

// Task is a unit of work, optionally owned by a user. A non-nil UserID
// always references an existing user; the store enforces this at write
// time and cascades user deletion onto owned tasks.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	UserID      *string `json:"user_id"`
}
