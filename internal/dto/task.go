package dto

// TaskRequest is the request body for creating or fully replacing a
// task. Completed is ignored on create (tasks always start pending) and
// applied on update.
type TaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	UserID      *string `json:"user_id"`
}

// MessageResponse is the body for delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}
