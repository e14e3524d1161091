package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "name", "must be provided")
	v.Check(false, "days", "must not be empty")
	v.Check(false, "days", "second message")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"days": "must not be empty"}, v.Errors)
}

func TestHelpers(t *testing.T) {
	assert.True(t, In("exam", "homework", "exam"))
	assert.False(t, In(3, 1, 2))

	assert.True(t, Matches("2024-01-07", DateRX))
	assert.False(t, Matches("2024-1-7", DateRX))
	assert.True(t, Matches("#A1b2C3", ColorRX))
	assert.False(t, Matches("red", ColorRX))

	assert.True(t, Unique([]string{"Monday", "Tuesday"}))
	assert.False(t, Unique([]int{15, 15}))
}
