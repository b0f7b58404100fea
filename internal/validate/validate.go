// Package validate holds the pre-call validation predicates the CLI
// applies before invoking the API. The server does not re-validate
// these fields.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MinAge = 0
	MaxAge = 150
)

var v = validator.New()

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Email reports whether s is a syntactically valid email address.
func Email(s string) bool {
	return v.Var(s, "required,email") == nil
}

// Age reports whether n is within the accepted range.
func Age(n int) bool {
	return n >= MinAge && n <= MaxAge
}

// UserInput checks the fields of a create-user call. Name must be
// non-blank, email syntactically valid and age (when given) in range.
func UserInput(name, email string, age *int) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if !Email(email) {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	if age != nil && !Age(*age) {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)}
	}
	return nil
}
