package models

// User is a registered user of the demo API. Age is optional and
// serializes as null when unset, matching the wire format consumed by
// the CLI client.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age"`
}
