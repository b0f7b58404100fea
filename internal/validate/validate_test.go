package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"test@example.com",
		"user.name@domain.co.uk",
		"user+tag@example.org",
	}
	for _, e := range valid {
		assert.True(t, Email(e), "expected valid: %s", e)
	}

	invalid := []string{
		"",
		"invalid",
		"@example.com",
		"user@",
		"user name@example.com",
	}
	for _, e := range invalid {
		assert.False(t, Email(e), "expected invalid: %s", e)
	}
}

func TestAge(t *testing.T) {
	assert.True(t, Age(0))
	assert.True(t, Age(25))
	assert.True(t, Age(150))
	assert.False(t, Age(-1))
	assert.False(t, Age(151))
}

func TestUserInput(t *testing.T) {
	age := 30
	assert.NoError(t, UserInput("Alice", "alice@example.com", &age))
	assert.NoError(t, UserInput("Alice", "alice@example.com", nil))

	cases := []struct {
		name, email string
		age         *int
		field       string
	}{
		{"", "alice@example.com", nil, "name"},
		{"   ", "alice@example.com", nil, "name"},
		{"Alice", "bogus", nil, "email"},
		{"Alice", "alice@example.com", intPtr(-1), "age"},
		{"Alice", "alice@example.com", intPtr(151), "age"},
	}
	for _, tc := range cases {
		err := UserInput(tc.name, tc.email, tc.age)
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, tc.field, vErr.Field)
	}
}

func intPtr(n int) *int { return &n }
