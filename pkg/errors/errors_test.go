package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrValidation, CodeOf(Validation("first_name required")))
	assert.Equal(t, ErrConflict, CodeOf(Conflict("email already registered", nil)))

	// Code survives wrapping by service layers.
	wrapped := fmt.Errorf("failed to create doctor: %w", Conflict("email already registered", nil))
	assert.Equal(t, ErrConflict, CodeOf(wrapped))

	// Anything outside the taxonomy is internal.
	assert.Equal(t, ErrInternal, CodeOf(fmt.Errorf("connection refused")))
}

func TestMessageOfNeverLeaksInternalCause(t *testing.T) {
	err := Internal(fmt.Errorf("pq: password authentication failed"))
	assert.Equal(t, "internal server error", MessageOf(err))
	assert.Contains(t, err.Error(), "pq:")

	assert.Equal(t, "internal server error", MessageOf(fmt.Errorf("raw failure")))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("duplicate key value")
	err := Conflict("program name already exists", cause)
	assert.ErrorIs(t, err, cause)
}
