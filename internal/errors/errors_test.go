//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrPrecondition)
	assert.NotEqual(t, ErrPrecondition, ErrCancelled)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid package name",
		Location: "my app",
		Context:  map[string]string{"Fragment": "config/router"},
		Hint:     "Use lower-case letters, digits and dashes",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: my app")
	assert.Contains(t, output, "Fragment: config/router")
	assert.Contains(t, output, "invalid package name")
	assert.Contains(t, output, "Hint: Use lower-case letters")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid package name", "My App", "Try my-app")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "My App", detail.Location)
	assert.Equal(t, "Try my-app", detail.Hint)
}

func TestNewPreconditionError_KeepsCauseChain(t *testing.T) {
	err := NewPreconditionError("destination manifest missing", "app/package.json", os.ErrNotExist)

	assert.True(t, errors.Is(err, ErrPrecondition))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bare := NewPreconditionError("unknown dependency", "", nil)
	assert.True(t, errors.Is(bare, ErrPrecondition))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "fragment config/router")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "fragment config/router")
}

func TestExitError(t *testing.T) {
	inner := fmt.Errorf("scaffold: %w", ErrCancelled)
	exitErr := &ExitError{Code: 4, Err: inner}

	assert.Equal(t, inner.Error(), exitErr.Error())
	assert.True(t, errors.Is(exitErr, ErrCancelled))
	assert.Equal(t, "exit code 2", (&ExitError{Code: 2}).Error())
}
