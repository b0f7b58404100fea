package dto

// UserRequest is the request body for creating or fully replacing a
// user. Age is optional; unknown fields are rejected by binding into
// this explicit shape rather than merged from a raw payload.
type UserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Age   *int   `json:"age"`
}
